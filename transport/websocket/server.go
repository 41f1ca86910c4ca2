package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/matcher"
	"github.com/rocketscienceinc/wordwheel-backend/internal/usecase"
	"github.com/rocketscienceinc/wordwheel-backend/internal/wheel"
)

const shutdownTimeout = 5 * time.Second

type userUseCase interface {
	Login(ctx context.Context, user *entity.User) (*entity.User, error)
}

// GameController is the game state of one logged in connection.
type GameController interface {
	Start(user *entity.User) error
	Close()
	Snapshot() usecase.Snapshot

	PointerDown(p wheel.Point, viewport wheel.Viewport) error
	PointerMove(p wheel.Point, viewport wheel.Viewport) error
	PointerUp() (matcher.Result, error)
	PointerLeave() (matcher.Result, error)

	Shuffle() error
	Hint() error
}

// ControllerFactory builds the level controller of one logged in connection.
type ControllerFactory func(observer usecase.Observer) GameController

type handlerFunc func(ctx context.Context, conn *connection, msg *Message) error

type Server struct {
	logger        *slog.Logger
	users         userUseCase
	newController ControllerFactory
	upgrader      websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, users userUseCase, newController ControllerFactory) *Server {
	server := &Server{
		logger:        logger.With("component", "websocket"),
		users:         users,
		newController: newController,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  2048,
			WriteBufferSize: 2048,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionLogin] = server.handleLogin
	server.handlers[actionLogout] = server.handleLogout
	server.handlers[actionPointerDown] = server.handlePointerDown
	server.handlers[actionPointerMove] = server.handlePointerMove
	server.handlers[actionPointerUp] = server.handlePointerUp
	server.handlers[actionPointerLeave] = server.handlePointerLeave
	server.handlers[actionShuffle] = server.handleShuffle
	server.handlers[actionHint] = server.handleHint
	server.handlers[actionState] = server.handleState

	return server
}

// Handler - returns the /ws route.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(uuid.NewString(), ws, that.logger)
	log.Info("WebSocket connection established", "connection", conn.id)

	go conn.writeLoop()

	that.handleMessages(ctx, conn)
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages", "connection", conn.id)

	defer func() {
		conn.close()
		log.Info("WebSocket connection closed")
	}()

	for {
		data, err := conn.read()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			conn.sendError("", "malformed message")

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			conn.sendError(message.Action, "unknown action")

			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Debug("error processing message", "action", message.Action, "error", err)
			conn.sendError(message.Action, err.Error())
		}
	}
}
