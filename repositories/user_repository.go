package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"profeed/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A duplicate username maps to ErrConflict.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateBio replaces the bio in a single UPDATE. Last write wins under
// concurrent updates.
func (r *userRepository) UpdateBio(ctx context.Context, username, bio string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Update("bio", bio)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
