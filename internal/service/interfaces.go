package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/google/uuid"
)

type FlightService interface {
	Start(ctx context.Context, plan domain.FlightPlan) (*domain.Flight, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Land(ctx context.Context) (*app.LandingResult, error)
	Abort(ctx context.Context) (*app.LandingResult, error)
	UpdateNote(ctx context.Context, note string) error
	SaveDraft(ctx context.Context, plan domain.FlightPlan) error
}

type RewardsService interface {
	PurchaseCabin(ctx context.Context, id domain.CabinID) error
	SelectCabin(ctx context.Context, id domain.CabinID) error
	SetWeeklyGoal(ctx context.Context, minutes int) (int, error)
	ClaimWeeklyBonus(ctx context.Context) (*app.BonusResult, error)
	DeleteLogEntry(ctx context.Context, id string) error
	// ListLog returns log entries newest first. limit <= 0 returns all.
	ListLog(ctx context.Context, limit int) ([]domain.FlightLogEntry, error)
	SetNotes(ctx context.Context, text string) error
	ResetAll(ctx context.Context) error
}

type StatusService interface {
	GetStatus(ctx context.Context) (*app.CockpitStatus, error)
}

var (
	_ app.FlightUseCase  = (*flightService)(nil)
	_ app.RewardsUseCase = (*rewardsService)(nil)
	_ app.StatusUseCase  = (*statusService)(nil)
)

// Clock supplies the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	New() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) New() string { return uuid.New().String() }
