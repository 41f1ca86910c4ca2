package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/wordwheel-backend/internal/usecase"
)

const (
	sendBuffer     = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

// connection is one websocket client. It implements usecase.Observer so the level
// controller can push events straight to the client.
type connection struct {
	id     string
	ws     *websocket.Conn
	logger *slog.Logger

	send chan []byte
	done chan struct{}
	once sync.Once

	// owned by the reading goroutine
	controller GameController
}

func newConnection(id string, ws *websocket.Conn, logger *slog.Logger) *connection {
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	return &connection{
		id:     id,
		ws:     ws,
		logger: logger.With("connection", id),
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

func (that *connection) read() ([]byte, error) {
	_, data, err := that.ws.ReadMessage()

	return data, err
}

func (that *connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = that.ws.Close()
	}()

	for {
		select {
		case <-that.done:
			_ = that.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

			return
		case data := <-that.send:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Warn("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Notify forwards a controller event to the client without blocking.
func (that *connection) Notify(event usecase.Event) {
	that.sendMessage(string(event.Type), event.Payload)
}

func (that *connection) sendMessage(action string, payload any) {
	data, err := newMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to marshal message", "action", action, "error", err)
		return
	}

	select {
	case <-that.done:
	case that.send <- data:
	default:
		that.logger.Warn("send buffer full, dropping message", "action", action)
	}
}

func (that *connection) sendError(action, message string) {
	that.sendMessage(actionError, ErrorPayload{Action: action, Error: message})
}

// replaceController closes the current controller, if any, and installs the next one.
func (that *connection) replaceController(next GameController) {
	if that.controller != nil {
		that.controller.Close()
	}

	that.controller = next
}

func (that *connection) close() {
	that.once.Do(func() {
		that.replaceController(nil)
		close(that.done)
	})
}
