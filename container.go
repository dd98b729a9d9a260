package main

import (
	"fmt"
	"os"

	"go.uber.org/dig"
	"xapi/xapiclient"
)

type Config struct {
	XAPIKey             string
	XAPIBaseURL         string
	ProxyDSN            string
	ListenAddr          string
	ArchiveDatabaseName string
}

func ProvideConfig() (*Config, error) {
	apiKey := os.Getenv(xapiclient.ENV_XAPI_KEY)
	if apiKey == "" {
		return nil, fmt.Errorf("api key should be set .env: %s", xapiclient.ENV_XAPI_KEY)
	}

	baseURL := os.Getenv(xapiclient.ENV_XAPI_BASE_URL)
	if baseURL == "" {
		return nil, fmt.Errorf("base url should be set .env: %s", xapiclient.ENV_XAPI_BASE_URL)
	}

	listenAddr := os.Getenv(ENV_LISTEN_ADDR)
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	dbName := os.Getenv(ENV_ARCHIVE_DATABASE_NAME)
	if dbName == "" {
		dbName = "archive.db"
	}

	return &Config{
		XAPIKey:             apiKey,
		XAPIBaseURL:         baseURL,
		ProxyDSN:            os.Getenv(xapiclient.ENV_PROXY_DSN),
		ListenAddr:          listenAddr,
		ArchiveDatabaseName: dbName,
	}, nil
}

func ProvideTweetService(config *Config) xapiclient.TweetService {
	return xapiclient.NewXAPIService(config.XAPIKey, config.XAPIBaseURL, config.ProxyDSN)
}

func ProvideArchiveService(config *Config) (*ArchiveService, error) {
	return NewArchiveService(config.ArchiveDatabaseName)
}

func ProvideHandlers(tweetService xapiclient.TweetService, archiveService *ArchiveService) *Handlers {
	return NewHandlers(tweetService, archiveService)
}

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(ProvideConfig); err != nil {
		return nil, fmt.Errorf("failed to provide config: %w", err)
	}

	if err := container.Provide(ProvideTweetService); err != nil {
		return nil, fmt.Errorf("failed to provide tweet service: %w", err)
	}

	if err := container.Provide(ProvideArchiveService); err != nil {
		return nil, fmt.Errorf("failed to provide archive service: %w", err)
	}

	if err := container.Provide(ProvideHandlers); err != nil {
		return nil, fmt.Errorf("failed to provide handlers: %w", err)
	}

	if err := container.Provide(NewApplication); err != nil {
		return nil, fmt.Errorf("failed to provide application: %w", err)
	}

	return container, nil
}
