package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

// memoryUsers keeps session records in process memory. They are lost on restart.
type memoryUsers struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUsers{
		users: make(map[string]*entity.User),
	}
}

func (that *memoryUsers) Save(_ context.Context, user *entity.User) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.users[user.Username] = user.Clone()

	return nil
}

func (that *memoryUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	user, ok := that.users[username]
	if !ok {
		return nil, apperror.ErrNotFound
	}

	return user.Clone(), nil
}

func (that *memoryUsers) Delete(_ context.Context, username string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.users, username)

	return nil
}
