package repository

import (
	"context"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

// UserRepository keeps the session record of each logged in user.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Delete(ctx context.Context, username string) error
}

const userKeyPrefix = "user:"

func userKey(username string) string {
	return userKeyPrefix + username
}
