package domain

import "time"

const (
	MinPlannedMinutes = 5
	MaxPlannedMinutes = 480
)

// FlightPlan is the user's intent to start a flight. It doubles as the
// persisted draft that pre-fills the next plan.
type FlightPlan struct {
	Title          string      `json:"title"`
	MissionType    MissionType `json:"missionType"`
	AircraftID     AircraftID  `json:"aircraftId"`
	CabinID        CabinID     `json:"cabinId"`
	PlannedMinutes int         `json:"plannedMinutes"`
	Note           string      `json:"note"`
}

// Flight is the single live focus session. Elapsed time is never stored;
// it is recomputed from AccumulatedMs and LastResumeAt.
type Flight struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	MissionType       MissionType  `json:"missionType"`
	AircraftID        AircraftID   `json:"aircraftId"`
	CabinID           CabinID      `json:"cabinId"`
	PlannedDurationMs int64        `json:"plannedDurationMs"`
	CreatedAt         time.Time    `json:"createdAt"`
	Running           bool         `json:"running"`
	AccumulatedMs     int64        `json:"accumulatedMs"`
	LastResumeAt      time.Time    `json:"lastResumeAt"`
	Note              string       `json:"note"`
	Status            FlightStatus `json:"status"`
}

// FlightLogEntry is the immutable record of a finalized flight.
type FlightLogEntry struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	MissionType       MissionType  `json:"missionType"`
	AircraftID        AircraftID   `json:"aircraftId"`
	CabinID           CabinID      `json:"cabinId"`
	PlannedDurationMs int64        `json:"plannedDurationMs"`
	FocusedMs         int64        `json:"focusedMs"`
	CreatedAt         time.Time    `json:"createdAt"`
	EndedAt           time.Time    `json:"endedAt"`
	Status            FlightStatus `json:"status"`
	Note              string       `json:"note"`
	MilesEarned       int          `json:"milesEarned"`
}

// Aborted reports whether the flight ended in an abort.
func (e *FlightLogEntry) Aborted() bool {
	return e.Status == StatusAborted
}

// CompletedAt returns EndedAt, falling back to CreatedAt for entries
// written without an end time.
func (e *FlightLogEntry) CompletedAt() time.Time {
	if e.EndedAt.IsZero() {
		return e.CreatedAt
	}
	return e.EndedAt
}
