package testutil

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/alexanderramin/cockpit/internal/repository"
)

// ErrInjected is the default failure returned by FailingStateStore.
var ErrInjected = errors.New("injected store failure")

// FailingStateStore wraps a StateStore and fails writes (and optionally
// loads) on demand, counting every attempted save.
type FailingStateStore struct {
	repository.StateStore
	FailSaves bool
	FailLoad  bool
	Err       error
	Saves     atomic.Int32
}

func (s *FailingStateStore) err() error {
	if s.Err != nil {
		return s.Err
	}
	return ErrInjected
}

func (s *FailingStateStore) Load(ctx context.Context) (*domain.AppState, error) {
	if s.FailLoad {
		return nil, s.err()
	}
	return s.StateStore.Load(ctx)
}

func (s *FailingStateStore) Save(ctx context.Context, st *domain.AppState) error {
	s.Saves.Add(1)
	if s.FailSaves {
		return s.err()
	}
	return s.StateStore.Save(ctx, st)
}

func (s *FailingStateStore) SaveAll(ctx context.Context, st *domain.AppState) error {
	s.Saves.Add(1)
	if s.FailSaves {
		return s.err()
	}
	return s.StateStore.SaveAll(ctx, st)
}
