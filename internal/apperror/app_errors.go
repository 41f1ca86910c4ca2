package apperror

import "errors"

var (
	ErrProviderFailure   = errors.New("external provider failed")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInsufficientFunds = errors.New("not enough coins")
	ErrLevelNotActive    = errors.New("level is not active")
	ErrHintPending       = errors.New("hint request already pending")
	ErrSessionClosed     = errors.New("session is closed")
	ErrGestureActive     = errors.New("gesture is in progress")
	ErrNotFound          = errors.New("not found")
)
