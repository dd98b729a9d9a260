package main

import "time"

// Archived tweet row, one per normalized tweet returned by a timeline fetch
type ArchivedTweetModel struct {
	AutoID         uint      `gorm:"primaryKey;autoIncrement;column:auto_id" json:"auto_id"`
	TweetID        string    `gorm:"column:tweet_id;uniqueIndex" json:"tweet_id"`
	Text           string    `gorm:"column:text" json:"text"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	TweetType      string    `gorm:"column:tweet_type;index" json:"tweet_type"` // "Original", "Repost" or a referenced-tweet type
	AuthorID       string    `gorm:"column:author_id;index" json:"author_id"`
	AuthorUsername string    `gorm:"column:author_username;index" json:"author_username"`
	SourceType     string    `gorm:"column:source_type;index" json:"source_type"` // "user_timeline" or "list_timeline"
	SourceID       string    `gorm:"column:source_id;index" json:"source_id"`     // id of the user or list the timeline belongs to
	FetchedAt      time.Time `gorm:"column:fetched_at" json:"fetched_at"`
}

func (ArchivedTweetModel) TableName() string {
	return "archived_tweets"
}
