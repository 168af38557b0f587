package repositories

import (
	"context"

	"profeed/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateBio(ctx context.Context, username, bio string) error
}

type FeedRepository interface {
	Create(ctx context.Context, entry *models.Feed) error
	ListAll(ctx context.Context) ([]models.Feed, error)
}
