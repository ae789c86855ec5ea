package service

import (
	"context"

	"github.com/alexanderramin/cockpit/internal/app"
)

type statusService struct {
	*cockpitState
}

// GetStatus recomputes the read model from a copy of the state. It never
// writes.
func (s *statusService) GetStatus(_ context.Context) (*app.CockpitStatus, error) {
	st, now := s.snapshot()
	return buildStatus(st, now), nil
}
