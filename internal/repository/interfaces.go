package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/cockpit/internal/domain"
)

var (
	// ErrNotFound is returned when no state has been saved yet.
	ErrNotFound = errors.New("not found")
	// ErrCorrupt is returned when stored state cannot be decoded.
	ErrCorrupt = errors.New("corrupt stored state")
)

// StateStore persists the application state as one snapshot blob plus the
// weekly bonus token, which is kept under its own key.
type StateStore interface {
	Load(ctx context.Context) (*domain.AppState, error)
	Save(ctx context.Context, s *domain.AppState) error
	LoadBonusToken(ctx context.Context) (string, error)
	SaveBonusToken(ctx context.Context, token string) error
	// SaveAll writes the snapshot and the token together.
	SaveAll(ctx context.Context, s *domain.AppState) error
}
