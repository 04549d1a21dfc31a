package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	model "task-allocator.com/task-allocator/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the users collection, keyed by normalized email.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.WithStack(err)
	}
	return &user, nil
}

// Save writes the profile document under its email key, overwriting an
// existing document with the same key.
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return errors.WithStack(err)
	}
	return nil
}
