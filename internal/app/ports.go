package app

import (
	"context"

	"github.com/alexanderramin/cockpit/internal/domain"
)

// The ports below are what the CLI, TUI and HTTP surfaces depend on; the
// service package provides the implementations.

type StatusUseCase interface {
	GetStatus(ctx context.Context) (*CockpitStatus, error)
}

type FlightUseCase interface {
	Start(ctx context.Context, plan domain.FlightPlan) (*domain.Flight, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Land(ctx context.Context) (*LandingResult, error)
	Abort(ctx context.Context) (*LandingResult, error)
	UpdateNote(ctx context.Context, note string) error
	SaveDraft(ctx context.Context, plan domain.FlightPlan) error
}

type RewardsUseCase interface {
	PurchaseCabin(ctx context.Context, id domain.CabinID) error
	SelectCabin(ctx context.Context, id domain.CabinID) error
	SetWeeklyGoal(ctx context.Context, minutes int) (int, error)
	ClaimWeeklyBonus(ctx context.Context) (*BonusResult, error)
	DeleteLogEntry(ctx context.Context, id string) error
	ListLog(ctx context.Context, limit int) ([]domain.FlightLogEntry, error)
	SetNotes(ctx context.Context, text string) error
	ResetAll(ctx context.Context) error
}
