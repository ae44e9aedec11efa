package repository

import (
	"context"
	"errors"

	"tribune/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username asc").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.Username == "" || user.Name == "" || user.AvatarURL == "" {
		return models.NewMissingInfoError()
	}

	// Detect the collision up front so the caller gets the specific
	// duplicate-username condition instead of a generic constraint error.
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return translateError(err)
	}
	if count > 0 {
		return models.NewDuplicateUsernameError()
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// Lost the race against a concurrent insert of the same username.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewDuplicateUsernameError()
		}
		return translateError(err)
	}
	return nil
}
