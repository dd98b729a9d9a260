package main

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"xapi/xapiclient"
)

// ArchiveService keeps a write-through record of every tweet the timeline
// operations returned. It is not consulted before requests.
type ArchiveService struct {
	db *gorm.DB
}

// NewArchiveService creates a new archive service instance
func NewArchiveService(dbPath string) (*ArchiveService, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent to reduce log noise
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	service := &ArchiveService{db: db}

	if err := service.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return service, nil
}

func (s *ArchiveService) runMigrations() error {
	return s.db.AutoMigrate(&ArchivedTweetModel{})
}

// SaveTimeline upserts every tweet of a fetched timeline window. Re-fetching
// the same window refreshes text and fetched_at instead of duplicating rows.
func (s *ArchiveService) SaveTimeline(sourceType string, sourceID string, tweets []xapiclient.Tweet) error {
	now := time.Now()
	for _, tweet := range tweets {
		model := ArchivedTweetModel{
			TweetID:        tweet.Id,
			Text:           tweet.Text,
			CreatedAt:      tweet.CreatedDate,
			TweetType:      tweet.TweetType,
			AuthorID:       tweet.Author.Id,
			AuthorUsername: tweet.Author.Username,
			SourceType:     sourceType,
			SourceID:       sourceID,
			FetchedAt:      now,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tweet_id"}},
			UpdateAll: true,
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save tweet %s: %w", tweet.Id, err)
		}
	}
	return nil
}

// GetTweet retrieves an archived tweet by its tweet id (not auto_id)
func (s *ArchiveService) GetTweet(tweetID string) (*ArchivedTweetModel, error) {
	var tweet ArchivedTweetModel
	err := s.db.Where("tweet_id = ?", tweetID).First(&tweet).Error
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetTweetsBySource retrieves archived tweets for one timeline source,
// newest first
func (s *ArchiveService) GetTweetsBySource(sourceType string, sourceID string) ([]ArchivedTweetModel, error) {
	var tweets []ArchivedTweetModel
	err := s.db.Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, err
}

// CountTweets returns the number of archived tweets
func (s *ArchiveService) CountTweets() (int64, error) {
	var count int64
	err := s.db.Model(&ArchivedTweetModel{}).Count(&count).Error
	return count, err
}

// Close closes the underlying database connection
func (s *ArchiveService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
