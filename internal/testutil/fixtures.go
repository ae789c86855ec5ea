package testutil

import (
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/google/uuid"
)

// FlightPlan options
type PlanOption func(*domain.FlightPlan)

func WithTitle(title string) PlanOption {
	return func(p *domain.FlightPlan) {
		p.Title = title
	}
}

func WithPlannedMinutes(min int) PlanOption {
	return func(p *domain.FlightPlan) {
		p.PlannedMinutes = min
	}
}

func WithAircraft(id domain.AircraftID) PlanOption {
	return func(p *domain.FlightPlan) {
		p.AircraftID = id
	}
}

func WithCabin(id domain.CabinID) PlanOption {
	return func(p *domain.FlightPlan) {
		p.CabinID = id
	}
}

func WithMission(m domain.MissionType) PlanOption {
	return func(p *domain.FlightPlan) {
		p.MissionType = m
	}
}

func WithPlanNote(note string) PlanOption {
	return func(p *domain.FlightPlan) {
		p.Note = note
	}
}

// NewTestPlan returns a 50-minute B737 economy study plan.
func NewTestPlan(opts ...PlanOption) domain.FlightPlan {
	p := domain.FlightPlan{
		Title:          "Focus block",
		MissionType:    domain.MissionStudy,
		AircraftID:     domain.AircraftB737,
		CabinID:        domain.CabinEconomy,
		PlannedMinutes: 50,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Log entry options
type EntryOption func(*domain.FlightLogEntry)

func WithEndedAt(t time.Time) EntryOption {
	return func(e *domain.FlightLogEntry) {
		e.EndedAt = t
		e.CreatedAt = t.Add(-time.Duration(e.FocusedMs) * time.Millisecond)
	}
}

func WithAborted() EntryOption {
	return func(e *domain.FlightLogEntry) {
		e.Status = domain.StatusAborted
	}
}

func WithEntryID(id string) EntryOption {
	return func(e *domain.FlightLogEntry) {
		e.ID = id
	}
}

func WithMilesEarned(miles int) EntryOption {
	return func(e *domain.FlightLogEntry) {
		e.MilesEarned = miles
	}
}

// NewTestEntry returns a landed log entry of the given focused minutes that
// ended now.
func NewTestEntry(title string, minutes int, opts ...EntryOption) domain.FlightLogEntry {
	now := time.Now().UTC()
	focused := int64(minutes) * 60_000
	e := domain.FlightLogEntry{
		ID:                uuid.New().String(),
		Title:             title,
		MissionType:       domain.MissionStudy,
		AircraftID:        domain.AircraftB737,
		CabinID:           domain.CabinEconomy,
		PlannedDurationMs: focused,
		FocusedMs:         focused,
		CreatedAt:         now.Add(-time.Duration(focused) * time.Millisecond),
		EndedAt:           now,
		Status:            domain.StatusLanded,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
