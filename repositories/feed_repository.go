package repositories

import (
	"context"

	"gorm.io/gorm"

	"profeed/models"
)

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(ctx context.Context, entry *models.Feed) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListAll returns every feed entry in insertion order.
func (r *feedRepository) ListAll(ctx context.Context) ([]models.Feed, error) {
	var entries []models.Feed
	err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error
	return entries, err
}
