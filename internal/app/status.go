package app

import (
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
)

// FlightView is the live flight plus everything derived from it at a
// given instant. Nothing here is persisted.
type FlightView struct {
	Flight         domain.Flight       `json:"flight"`
	ElapsedMs      int64               `json:"elapsedMs"`
	Phase          domain.FlightStatus `json:"phase"`
	RemainingMs    int64               `json:"remainingMs"`
	OverTargetMs   int64               `json:"overTargetMs"`
	ProgressPct    float64             `json:"progressPct"`
	ProjectedMiles int                 `json:"projectedMiles"`
	MilesIfLanded  int                 `json:"milesIfLanded"`
}

type CabinView struct {
	Cabin      domain.Cabin `json:"cabin"`
	Owned      bool         `json:"owned"`
	Selected   bool         `json:"selected"`
	Affordable bool         `json:"affordable"`
}

type CockpitStatus struct {
	GeneratedAt        time.Time         `json:"generatedAt"`
	LiveFlight         *FlightView       `json:"liveFlight,omitempty"`
	MileBalance        int               `json:"mileBalance"`
	RollingMinutes     int               `json:"rollingMinutes"`
	Grade              domain.Grade      `json:"grade"`
	NextGrade          *domain.Grade     `json:"nextGrade,omitempty"`
	MinutesToNextGrade int               `json:"minutesToNextGrade"`
	WeeklyGoalMinutes  int               `json:"weeklyGoalMinutes"`
	GoalProgressPct    float64           `json:"goalProgressPct"`
	BonusClaimable     bool              `json:"bonusClaimable"`
	BonusClaimed       bool              `json:"bonusClaimed"`
	WeekToken          string            `json:"weekToken"`
	SelectedCabinID    domain.CabinID    `json:"selectedCabinId"`
	Cabins             []CabinView       `json:"cabins"`
	DraftPlan          domain.FlightPlan `json:"draftPlan"`
	DraftMiles         int               `json:"draftMiles"`
	Notes              string            `json:"notes"`
	LogCount           int               `json:"logCount"`
}

// LandingResult is returned when a flight is landed or aborted.
type LandingResult struct {
	Entry       domain.FlightLogEntry `json:"entry"`
	MilesEarned int                   `json:"milesEarned"`
	MileBalance int                   `json:"mileBalance"`
	Grade       domain.Grade          `json:"grade"`
}

type BonusResult struct {
	Miles       int    `json:"miles"`
	WeekToken   string `json:"weekToken"`
	MileBalance int    `json:"mileBalance"`
}
