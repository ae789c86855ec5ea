package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
)

type flightService struct {
	*cockpitState
}

// Start begins a flight from plan and keeps plan as the draft for the next one.
func (s *flightService) Start(ctx context.Context, plan domain.FlightPlan) (*domain.Flight, error) {
	var started domain.Flight
	fields := map[string]any{
		"planned_min": plan.PlannedMinutes,
		"aircraft":    string(plan.AircraftID),
		"cabin":       string(plan.CabinID),
	}
	err := s.mutate(ctx, "start-flight", persistSnapshot, fields, func(st *domain.AppState, now time.Time) error {
		f, err := st.StartFlight(plan, s.ids.New(), now)
		if err != nil {
			return err
		}
		st.SaveDraft(plan)
		started = *f
		fields["flight_id"] = f.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &started, nil
}

func (s *flightService) Pause(ctx context.Context) error {
	return s.mutate(ctx, "pause-flight", persistSnapshot, nil, func(st *domain.AppState, now time.Time) error {
		return st.PauseFlight(now)
	})
}

func (s *flightService) Resume(ctx context.Context) error {
	return s.mutate(ctx, "resume-flight", persistSnapshot, nil, func(st *domain.AppState, now time.Time) error {
		return st.ResumeFlight(now)
	})
}

func (s *flightService) Land(ctx context.Context) (*app.LandingResult, error) {
	return s.finish(ctx, "land-flight", false)
}

func (s *flightService) Abort(ctx context.Context) (*app.LandingResult, error) {
	return s.finish(ctx, "abort-flight", true)
}

// finish finalizes the live flight and credits it in one critical section,
// so no other action can observe the flight gone but the miles missing.
func (s *flightService) finish(ctx context.Context, name string, aborted bool) (*app.LandingResult, error) {
	var result app.LandingResult
	fields := map[string]any{}
	err := s.mutate(ctx, name, persistSnapshot, fields, func(st *domain.AppState, now time.Time) error {
		entry, err := st.FinalizeFlight(aborted, now)
		if err != nil {
			return err
		}
		miles := st.RecordLanding(entry, now)
		result = app.LandingResult{
			Entry:       *entry,
			MilesEarned: miles,
			MileBalance: st.MileBalance,
			Grade:       domain.GradeFor(domain.Rolling7dMinutes(st.LogEntries, now)),
		}
		fields["flight_id"] = entry.ID
		fields["focused_min"] = domain.MinutesFromMs(entry.FocusedMs)
		fields["miles"] = miles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *flightService) UpdateNote(ctx context.Context, note string) error {
	return s.mutate(ctx, "update-flight-note", persistSnapshot, nil, func(st *domain.AppState, _ time.Time) error {
		return st.UpdateFlightNote(note)
	})
}

func (s *flightService) SaveDraft(ctx context.Context, plan domain.FlightPlan) error {
	return s.mutate(ctx, "save-draft", persistSnapshot, nil, func(st *domain.AppState, _ time.Time) error {
		st.SaveDraft(plan)
		return nil
	})
}
