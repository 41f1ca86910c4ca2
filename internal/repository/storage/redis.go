package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - connects to redis and checks the connection with a ping.
func NewRedisStorage(ctx context.Context, addr, password string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: dialTimeout,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
