package suite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/wordwheel-backend/internal/repository/storage/sqlite"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "7-alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New - starts a throwaway redis container for the test. The test is skipped when
// docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx := newContext(t)
	logger := newLogger()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	// hard kill in case cleanup never runs
	_ = resource.Expire(expireDuration)

	pool.MaxWait = maxWaitDuration

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{
			Addr: resource.GetHostPort(redisPort),
		})

		return client.Ping(ctx).Err()
	}); err != nil {
		_ = pool.Purge(resource)

		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()

		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}

// NewSQLite - opens an initialized database in the test's temp dir.
func NewSQLite(t *testing.T) (context.Context, *sqlite.Storage) {
	t.Helper()

	ctx := newContext(t)

	storage, err := sqlite.New(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("could not open sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = storage.Close()
	})

	if err = storage.Init(ctx); err != nil {
		t.Fatalf("could not init sqlite: %v", err)
	}

	return ctx, storage
}

func newContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	return ctx
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
