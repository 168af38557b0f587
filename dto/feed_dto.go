package dto

import (
	"time"

	"profeed/models"
)

// FeedDTO is a Data Transfer Object for one feed entry in API responses.
type FeedDTO struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Datetime time.Time `json:"datetime"`
	Message  string    `json:"message"`
}

func FromFeed(entry models.Feed) FeedDTO {
	return FeedDTO{
		ID:       entry.ID,
		Username: entry.Username,
		Datetime: entry.Datetime,
		Message:  entry.Message,
	}
}
