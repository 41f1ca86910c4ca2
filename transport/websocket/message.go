package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
	"github.com/rocketscienceinc/wordwheel-backend/internal/wheel"
)

// client actions
const (
	actionLogin        = "session:login"
	actionLogout       = "session:logout"
	actionPointerDown  = "wheel:down"
	actionPointerMove  = "wheel:move"
	actionPointerUp    = "wheel:up"
	actionPointerLeave = "wheel:leave"
	actionShuffle      = "level:shuffle"
	actionHint         = "level:hint"
	actionState        = "level:state"

	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type LoginPayload struct {
	User *entity.User `json:"user"`
}

type SessionPayload struct {
	ConnectionID string       `json:"connectionId"`
	User         *entity.User `json:"user,omitempty"`
}

// PointerPayload is a pointer position relative to the rendered wheel and the size
// the wheel is rendered at.
type PointerPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (that PointerPayload) Point() wheel.Point {
	return wheel.Point{X: that.X, Y: that.Y}
}

func (that PointerPayload) Viewport() wheel.Viewport {
	return wheel.Viewport{Width: that.Width, Height: that.Height}
}

type ErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

func newMessage(action string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: data})
}
