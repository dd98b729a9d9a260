package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Application struct {
	config         *Config
	handlers       *Handlers
	archiveService *ArchiveService
	server         *fiber.App
}

func NewApplication(
	config *Config,
	handlers *Handlers,
	archiveService *ArchiveService,
) (*Application, error) {
	return &Application{
		config:         config,
		handlers:       handlers,
		archiveService: archiveService,
	}, nil
}

func (a *Application) Initialize() error {
	app := fiber.New(fiber.Config{
		AppName:               "xapi",
		DisableStartupMessage: true,
	})
	app.Use(RequestID())
	a.handlers.Register(app)
	a.server = app
	return nil
}

func (a *Application) Run() error {
	log.Printf("listening on %s", a.config.ListenAddr)
	return a.server.Listen(a.config.ListenAddr)
}

func (a *Application) Shutdown() {
	if a.server != nil {
		if err := a.server.Shutdown(); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}
	if a.archiveService != nil {
		if err := a.archiveService.Close(); err != nil {
			log.Printf("archive close error: %v", err)
		}
	}
	log.Println("application stopped")
}
