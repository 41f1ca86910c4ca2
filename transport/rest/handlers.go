package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/catalog"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	HealthHandler(w http.ResponseWriter, _ *http.Request)
	CatalogHandler(w http.ResponseWriter, _ *http.Request)
	SessionHandler(w http.ResponseWriter, r *http.Request)
}

type userUseCase interface {
	Get(ctx context.Context, username string) (*entity.User, error)
}

type handlers struct {
	logger *slog.Logger
	users  userUseCase
}

func NewHandlers(logger *slog.Logger, users userUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		users:  users,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (that *handlers) CatalogHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, catalog.Summaries())
}

func (that *handlers) SessionHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SessionHandler")

	username := chi.URLParam(r, "username")

	user, err := that.users.Get(r.Context(), username)
	if errors.Is(err, apperror.ErrNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	if err != nil {
		log.Error("failed to get session", "username", username, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, http.StatusOK, user)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
