package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

var ErrNotConfigured = errors.New("provider is not configured")

// Disabled stands in when no API key is configured. Every call fails, so callers
// take their catalog and placeholder fallbacks.
type Disabled struct{}

func (Disabled) GenerateLevel(context.Context, entity.Theme, int) (*entity.Level, error) {
	return nil, fmt.Errorf("%w: %w", apperror.ErrProviderFailure, ErrNotConfigured)
}

func (Disabled) Hint(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", apperror.ErrProviderFailure, ErrNotConfigured)
}
