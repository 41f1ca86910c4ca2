package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

var ErrEmptyUsername = errors.New("username is required")

type UserUseCase interface {
	Login(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, username string) (*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userUseCase struct {
	repo userRepo
}

func NewUserUseCase(repo userRepo) UserUseCase {
	return &userUseCase{
		repo: repo,
	}
}

// Login - resumes the stored session of the user, or stores the record handed over
// by the auth screen when there is none.
func (that *userUseCase) Login(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil || user.Username == "" {
		return nil, ErrEmptyUsername
	}

	existing, err := that.repo.GetByUsername(ctx, user.Username)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user in storage: %w", err)
	}

	user = user.Clone()
	user.Coins = max(user.Coins, 0)

	if err = that.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	return user, nil
}

func (that *userUseCase) Get(ctx context.Context, username string) (*entity.User, error) {
	user, err := that.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (that *userUseCase) Save(ctx context.Context, user *entity.User) error {
	if err := that.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}
