package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	router *chi.Mux
}

func New(logger *slog.Logger, handlers Handlers) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))
	router.Use(requestLogger(logger))

	router.Get("/ping", handlers.PingHandler)
	router.Get("/health", handlers.HealthHandler)
	router.Get("/catalog", handlers.CatalogHandler)
	router.Get("/sessions/{username}", handlers.SessionHandler)

	return &Server{
		logger: logger.With("component", "rest"),
		router: router,
	}
}

// Router exposes the routes, mostly for tests.
func (that *Server) Router() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
