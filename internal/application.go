package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/wordwheel-backend/internal/config"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/provider"
	"github.com/rocketscienceinc/wordwheel-backend/internal/repository"
	"github.com/rocketscienceinc/wordwheel-backend/internal/repository/storage"
	"github.com/rocketscienceinc/wordwheel-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/wordwheel-backend/internal/usecase"
	"github.com/rocketscienceinc/wordwheel-backend/transport/rest"
	"github.com/rocketscienceinc/wordwheel-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type contentProvider interface {
	GenerateLevel(ctx context.Context, theme entity.Theme, id int) (*entity.Level, error)
	Hint(ctx context.Context, word string) (string, error)
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	userRepo, closeStore, err := initSessionStore(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close session store", "error", err)
		}
	}()

	content, err := initProvider(ctx, logger, conf)
	if err != nil {
		return err
	}

	userUseCase := usecase.NewUserUseCase(userRepo)

	gameConfig := usecase.Config{
		HintCost:        conf.Game.HintCost,
		LevelReward:     conf.Game.LevelReward,
		AdvanceDelay:    conf.Game.AdvanceDelay,
		ProviderTimeout: conf.Game.ProviderTimeout,
	}

	wsServer := websocket.New(logger, userUseCase, func(observer usecase.Observer) websocket.GameController {
		return usecase.NewLevelController(logger, content, content, userUseCase, observer, gameConfig)
	})

	restServer := rest.New(logger, rest.NewHandlers(logger, userUseCase))

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	// a failing server cancels groupCtx and takes the other one down with it
	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func initSessionStore(ctx context.Context, conf *config.Config) (repository.UserRepository, func() error, error) {
	switch conf.SessionStore {
	case config.SessionStoreRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, addr, conf.Redis.Password)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisUserRepository(redisStorage.Connection, conf.SessionTTL), redisStorage.Close, nil
	case config.SessionStoreSQLite:
		sqliteStorage, err := sqlite.New(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()

			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteUserRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return repository.NewMemoryUserRepository(), func() error { return nil }, nil
	}
}

func initProvider(ctx context.Context, logger *slog.Logger, conf *config.Config) (contentProvider, error) {
	if conf.Gemini.APIKey == "" {
		logger.Warn("gemini api key is not set, generated levels and hints are disabled")

		return provider.Disabled{}, nil
	}

	gemini, err := provider.NewGemini(ctx, logger, conf.Gemini.APIKey, conf.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("could not create gemini provider: %w", err)
	}

	return gemini, nil
}
