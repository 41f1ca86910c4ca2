package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

type redisUsers struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisUserRepository - stores session records as JSON. A zero ttl keeps them forever.
func NewRedisUserRepository(client *redis.Client, ttl time.Duration) UserRepository {
	return &redisUsers{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisUsers) Save(ctx context.Context, user *entity.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	err = that.client.Set(ctx, userKey(user.Username), userJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set user: %w", err)
	}

	return nil
}

func (that *redisUsers) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	response, err := that.client.Get(ctx, userKey(username)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	var user entity.User
	if err = json.Unmarshal([]byte(response), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (that *redisUsers) Delete(ctx context.Context, username string) error {
	if err := that.client.Del(ctx, userKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
