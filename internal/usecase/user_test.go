package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockUserRepo struct {
	mock.Mock
}

func (that *mockUserRepo) Save(ctx context.Context, user *entity.User) error {
	return that.Called(ctx, user).Error(0)
}

func (that *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := that.Called(ctx, username)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the handed over record for a new user", func(t *testing.T) {
		// Given: a repository without the user
		repo := new(mockUserRepo)
		repo.On("GetByUsername", ctx, "player").Return(nil, apperror.ErrNotFound).Once()
		repo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

		// When: the user logs in
		user, err := NewUserUseCase(repo).Login(ctx, newUser(100, 0))

		// Then: the record is saved and returned
		require.NoError(t, err)
		assert.Equal(t, 100, user.Coins)
		repo.AssertExpectations(t)
	})

	t.Run("Resumes a stored session", func(t *testing.T) {
		stored := newUser(250, 7)

		repo := new(mockUserRepo)
		repo.On("GetByUsername", ctx, "player").Return(stored, nil).Once()

		user, err := NewUserUseCase(repo).Login(ctx, newUser(100, 0))

		require.NoError(t, err)
		assert.Equal(t, stored, user)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Rejects a record without username", func(t *testing.T) {
		_, err := NewUserUseCase(new(mockUserRepo)).Login(ctx, &entity.User{})

		require.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByUsername", ctx, "player").Return(nil, errRedisDown).Once()

		_, err := NewUserUseCase(repo).Login(ctx, newUser(100, 0))

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestUserUseCase_Get(t *testing.T) {
	ctx := context.Background()

	repo := new(mockUserRepo)
	repo.On("GetByUsername", ctx, "ghost").Return(nil, apperror.ErrNotFound).Once()

	_, err := NewUserUseCase(repo).Get(ctx, "ghost")

	require.ErrorIs(t, err, apperror.ErrNotFound)
}
