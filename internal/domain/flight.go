package domain

import (
	"strings"
	"time"
)

const taxiCapMs = 60_000

// ComputeElapsed returns the focused time of f at now in milliseconds.
// Paused time never counts; the result is never negative.
func ComputeElapsed(f *Flight, now time.Time) int64 {
	if f == nil {
		return 0
	}
	elapsed := f.AccumulatedMs
	if f.Running {
		elapsed += now.Sub(f.LastResumeAt).Milliseconds()
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// DerivePhase maps elapsed time onto the display phase of a live flight.
// Boundaries are strict: a tie belongs to the later phase. Terminal flights
// report their stored status.
func DerivePhase(f *Flight, elapsedMs int64) FlightStatus {
	if f.Status.IsTerminal() {
		return f.Status
	}
	p := float64(f.PlannedDurationMs)
	e := float64(elapsedMs)

	taxi := 0.10 * p
	if taxi > taxiCapMs {
		taxi = taxiCapMs
	}
	switch {
	case e < taxi:
		return StatusTaxi
	case e < 0.25*p:
		return StatusClimb
	case e < 0.85*p:
		return StatusCruise
	default:
		return StatusDescent
	}
}

// StartFlight opens a new live flight from plan.
func (s *AppState) StartFlight(plan FlightPlan, id string, now time.Time) (*Flight, error) {
	if s.LiveFlight != nil {
		return nil, ErrFlightInProgress
	}
	title := strings.TrimSpace(plan.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if plan.PlannedMinutes < MinPlannedMinutes {
		return nil, ErrDurationTooShort
	}
	f := &Flight{
		ID:                id,
		Title:             title,
		MissionType:       resolveMission(plan.MissionType),
		AircraftID:        resolveAircraft(plan.AircraftID),
		CabinID:           s.resolveCabin(plan.CabinID),
		PlannedDurationMs: int64(clampPlannedMinutes(plan.PlannedMinutes)) * 60_000,
		CreatedAt:         now,
		Running:           true,
		AccumulatedMs:     0,
		LastResumeAt:      now,
		Note:              plan.Note,
		Status:            StatusTaxi,
	}
	s.LiveFlight = f
	return f, nil
}

func clampPlannedMinutes(minutes int) int {
	return min(minutes, MaxPlannedMinutes)
}

func resolveMission(m MissionType) MissionType {
	if !ValidMissionTypes[m] {
		return MissionStudy
	}
	return m
}

// resolveAircraft maps ids outside the fleet to the default aircraft.
func resolveAircraft(id AircraftID) AircraftID {
	if _, ok := LookupAircraft(id); !ok {
		return DefaultAircraftID
	}
	return id
}

// resolveCabin returns id when owned, else the selected cabin.
func (s *AppState) resolveCabin(id CabinID) CabinID {
	if s.OwnsCabin(id) {
		return id
	}
	return s.SelectedCabinID
}

// PauseFlight freezes the elapsed time of the live flight.
func (s *AppState) PauseFlight(now time.Time) error {
	f := s.LiveFlight
	if f == nil {
		return ErrNoLiveFlight
	}
	if !f.Running {
		return ErrAlreadyPaused
	}
	if delta := now.Sub(f.LastResumeAt).Milliseconds(); delta > 0 {
		f.AccumulatedMs += delta
	}
	f.Running = false
	return nil
}

// ResumeFlight restarts accumulation on a paused live flight.
func (s *AppState) ResumeFlight(now time.Time) error {
	f := s.LiveFlight
	if f == nil {
		return ErrNoLiveFlight
	}
	if f.Running {
		return ErrAlreadyRunning
	}
	f.LastResumeAt = now
	f.Running = true
	return nil
}

// UpdateFlightNote replaces the scratchpad of the live flight.
func (s *AppState) UpdateFlightNote(note string) error {
	if s.LiveFlight == nil {
		return ErrNoLiveFlight
	}
	s.LiveFlight.Note = note
	return nil
}

// FinalizeFlight ends the live flight and returns its log entry. The entry
// is not yet recorded; pass it to RecordLanding.
func (s *AppState) FinalizeFlight(aborted bool, now time.Time) (*FlightLogEntry, error) {
	f := s.LiveFlight
	if f == nil {
		return nil, ErrNoLiveFlight
	}

	status := StatusLanded
	if aborted {
		status = StatusAborted
	}
	entry := &FlightLogEntry{
		ID:                f.ID,
		Title:             f.Title,
		MissionType:       f.MissionType,
		AircraftID:        f.AircraftID,
		CabinID:           f.CabinID,
		PlannedDurationMs: f.PlannedDurationMs,
		FocusedMs:         ComputeElapsed(f, now),
		CreatedAt:         f.CreatedAt,
		EndedAt:           now,
		Status:            status,
		Note:              f.Note,
	}
	s.LiveFlight = nil
	return entry, nil
}
