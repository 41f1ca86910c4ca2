package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrMissingPayload = errors.New("payload is required")
)

func (that *Server) handleLogin(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleLogin", "connection", conn.id)

	var payload LoginPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.User == nil {
		return fmt.Errorf("user: %w", ErrMissingPayload)
	}

	user, err := that.users.Login(ctx, payload.User)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	// a second login on the same connection replaces the session
	conn.replaceController(that.newController(conn))

	conn.sendMessage(actionLogin, SessionPayload{ConnectionID: conn.id, User: user})

	if err = conn.controller.Start(user); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	log.Info("player logged in", "username", user.Username, "level", user.CurrentLevelIndex)

	return nil
}

func (that *Server) handleLogout(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	conn.replaceController(nil)
	conn.sendMessage(actionLogout, SessionPayload{ConnectionID: conn.id})

	that.logger.Info("player logged out", "connection", conn.id)

	return nil
}

func (that *Server) handlePointerDown(_ context.Context, conn *connection, msg *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	pointer, err := decodePointer(msg)
	if err != nil {
		return err
	}

	return conn.controller.PointerDown(pointer.Point(), pointer.Viewport())
}

func (that *Server) handlePointerMove(_ context.Context, conn *connection, msg *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	pointer, err := decodePointer(msg)
	if err != nil {
		return err
	}

	return conn.controller.PointerMove(pointer.Point(), pointer.Viewport())
}

func (that *Server) handlePointerUp(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	_, err := conn.controller.PointerUp()

	return err
}

func (that *Server) handlePointerLeave(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	_, err := conn.controller.PointerLeave()

	return err
}

func (that *Server) handleShuffle(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	return conn.controller.Shuffle()
}

func (that *Server) handleHint(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	return conn.controller.Hint()
}

func (that *Server) handleState(_ context.Context, conn *connection, _ *Message) error {
	if conn.controller == nil {
		return ErrNotLoggedIn
	}

	conn.sendMessage(actionState, conn.controller.Snapshot())

	return nil
}

func decodePointer(msg *Message) (PointerPayload, error) {
	var pointer PointerPayload

	if len(msg.Payload) == 0 {
		return pointer, fmt.Errorf("pointer: %w", ErrMissingPayload)
	}

	if err := json.Unmarshal(msg.Payload, &pointer); err != nil {
		return pointer, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return pointer, nil
}
