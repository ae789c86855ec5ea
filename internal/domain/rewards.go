package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	milesPerMinute    = 10
	abortedMilesRatio = 0.5
	bonusMilesPerGoal = 2
)

// Grade is a tier derived from rolling 7-day focused minutes.
type Grade struct {
	Name       GradeName `json:"name"`
	MinMinutes int       `json:"minMinutes"`
	Multiplier float64   `json:"multiplier"`
}

// gradeTable is ordered highest-first; the first match wins.
var gradeTable = []Grade{
	{Name: GradeBlack, MinMinutes: 1500, Multiplier: 1.35},
	{Name: GradePlatinum, MinMinutes: 900, Multiplier: 1.25},
	{Name: GradeGold, MinMinutes: 420, Multiplier: 1.15},
	{Name: GradeSilver, MinMinutes: 180, Multiplier: 1.08},
	{Name: GradeMember, MinMinutes: 0, Multiplier: 1.00},
}

// GradeFor returns the grade earned by the given rolling 7-day minutes.
func GradeFor(rollingMinutes int) Grade {
	for _, g := range gradeTable {
		if rollingMinutes >= g.MinMinutes {
			return g
		}
	}
	return gradeTable[len(gradeTable)-1]
}

// NextGrade returns the tier above the current one and the minutes still
// needed to reach it. ok is false at the top tier.
func NextGrade(rollingMinutes int) (next Grade, minutesNeeded int, ok bool) {
	current := GradeFor(rollingMinutes)
	for i := len(gradeTable) - 1; i >= 0; i-- {
		g := gradeTable[i]
		if g.MinMinutes > current.MinMinutes {
			return g, g.MinMinutes - rollingMinutes, true
		}
	}
	return Grade{}, 0, false
}

// MinutesFromMs converts milliseconds to whole minutes, rounded, floored at 0.
func MinutesFromMs(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / 60_000))
}

// ComputeMiles is the single mileage formula, used for both projected and
// actual miles. Unknown aircraft or cabin ids count as multiplier 1.0.
func ComputeMiles(focusedMs int64, aborted bool, aircraftID AircraftID, cabinID CabinID, gradeMultiplier float64) int {
	base := 1.0
	if a, ok := LookupAircraft(aircraftID); ok {
		base = a.BaseMultiplier
	}
	yield := 1.0
	if c, ok := LookupCabin(cabinID); ok {
		yield = c.YieldMultiplier
	}

	raw := float64(MinutesFromMs(focusedMs)) * milesPerMinute * base * yield * gradeMultiplier
	if aborted {
		raw *= abortedMilesRatio
	}
	miles := int(math.Round(raw))
	if miles < 0 {
		return 0
	}
	return miles
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Rolling7dMinutes sums focused minutes of entries completed between the
// start of the local day six days ago and now, inclusive.
func Rolling7dMinutes(entries []FlightLogEntry, now time.Time) int {
	windowStart := StartOfDay(now).AddDate(0, 0, -6)
	total := 0
	for i := range entries {
		at := entries[i].CompletedAt()
		if at.Before(windowStart) || at.After(now) {
			continue
		}
		total += MinutesFromMs(entries[i].FocusedMs)
	}
	return total
}

// WeekToken identifies the calendar week containing now, e.g. "2026-W42".
// Weeks start on Sunday and week 1 contains January 1st.
func WeekToken(now time.Time) string {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	daysSinceJan1 := now.YearDay() - 1
	n := daysSinceJan1 + int(jan1.Weekday()) + 1
	week := (n + 6) / 7
	return fmt.Sprintf("%d-W%d", now.Year(), week)
}

// ProjectMiles estimates the miles a plan would earn if flown to its planned
// duration at the grade current at now. The plan is resolved the same way
// StartFlight resolves it, so the estimate matches a full-length landing.
func (s *AppState) ProjectMiles(plan FlightPlan, now time.Time) int {
	grade := GradeFor(Rolling7dMinutes(s.LogEntries, now))
	ms := int64(clampPlannedMinutes(plan.PlannedMinutes)) * 60_000
	return ComputeMiles(ms, false, resolveAircraft(plan.AircraftID), s.resolveCabin(plan.CabinID), grade.Multiplier)
}

// RecordLanding credits miles for a finalized entry and adds it to the log.
// The grade is the one in effect before the entry counts towards it.
func (s *AppState) RecordLanding(entry *FlightLogEntry, now time.Time) int {
	grade := GradeFor(Rolling7dMinutes(s.LogEntries, now))
	miles := ComputeMiles(entry.FocusedMs, entry.Aborted(), entry.AircraftID, entry.CabinID, grade.Multiplier)
	entry.MilesEarned = miles
	s.MileBalance += miles

	s.LogEntries = append([]FlightLogEntry{*entry}, s.LogEntries...)
	if len(s.LogEntries) > MaxLogEntries {
		s.LogEntries = s.LogEntries[:MaxLogEntries]
	}
	return miles
}

// PurchaseCabin spends miles to unlock a cabin and selects it.
func (s *AppState) PurchaseCabin(id CabinID) error {
	cabin, ok := LookupCabin(id)
	if !ok {
		return ErrUnknownCabin
	}
	if s.OwnsCabin(id) {
		return ErrCabinAlreadyOwned
	}
	if s.MileBalance < cabin.UnlockCost {
		return ErrInsufficientMiles
	}
	s.MileBalance -= cabin.UnlockCost
	s.OwnedCabinIDs = append(s.OwnedCabinIDs, id)
	s.SelectedCabinID = id
	return nil
}

// SelectCabin makes an owned cabin the default for new plans.
func (s *AppState) SelectCabin(id CabinID) error {
	if !s.OwnsCabin(id) {
		return ErrCabinNotOwned
	}
	s.SelectedCabinID = id
	return nil
}

// SetWeeklyGoal stores the goal clamped to its bounds and returns it.
func (s *AppState) SetWeeklyGoal(minutes int) int {
	s.WeeklyGoalMinutes = clampGoal(minutes)
	return s.WeeklyGoalMinutes
}

// ClaimWeeklyBonus awards twice the weekly goal in miles, at most once per
// week token.
func (s *AppState) ClaimWeeklyBonus(now time.Time) (int, error) {
	token := WeekToken(now)
	if Rolling7dMinutes(s.LogEntries, now) < s.WeeklyGoalMinutes {
		return 0, ErrGoalNotMet
	}
	if token == s.WeeklyBonusClaimedToken {
		return 0, ErrBonusAlreadyClaimed
	}
	bonus := int(math.Round(float64(s.WeeklyGoalMinutes) * bonusMilesPerGoal))
	s.MileBalance += bonus
	s.WeeklyBonusClaimedToken = token
	return bonus, nil
}

// BonusClaimable reports whether ClaimWeeklyBonus would succeed at now.
func (s *AppState) BonusClaimable(now time.Time) bool {
	return Rolling7dMinutes(s.LogEntries, now) >= s.WeeklyGoalMinutes &&
		WeekToken(now) != s.WeeklyBonusClaimedToken
}

// DeleteLogEntry removes an entry. Miles already credited are kept.
func (s *AppState) DeleteLogEntry(id string) error {
	for i := range s.LogEntries {
		if s.LogEntries[i].ID == id {
			s.LogEntries = append(s.LogEntries[:i], s.LogEntries[i+1:]...)
			return nil
		}
	}
	return ErrLogEntryNotFound
}
