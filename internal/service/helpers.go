package service

import (
	"math"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
)

// buildStatus derives the whole cockpit read model at now.
func buildStatus(st *domain.AppState, now time.Time) *app.CockpitStatus {
	rolling := domain.Rolling7dMinutes(st.LogEntries, now)
	grade := domain.GradeFor(rolling)
	week := domain.WeekToken(now)

	status := &app.CockpitStatus{
		GeneratedAt:       now,
		MileBalance:       st.MileBalance,
		RollingMinutes:    rolling,
		Grade:             grade,
		WeeklyGoalMinutes: st.WeeklyGoalMinutes,
		GoalProgressPct:   percentOf(int64(rolling), int64(st.WeeklyGoalMinutes)),
		BonusClaimable:    st.BonusClaimable(now),
		BonusClaimed:      st.WeeklyBonusClaimedToken == week,
		WeekToken:         week,
		SelectedCabinID:   st.SelectedCabinID,
		Cabins:            buildCabinViews(st),
		DraftPlan:         st.DraftPlan,
		DraftMiles:        st.ProjectMiles(st.DraftPlan, now),
		Notes:             st.Notes,
		LogCount:          len(st.LogEntries),
	}
	if next, needed, ok := domain.NextGrade(rolling); ok {
		status.NextGrade = &next
		status.MinutesToNextGrade = needed
	}
	if st.LiveFlight != nil {
		view := buildFlightView(st.LiveFlight, grade, now)
		status.LiveFlight = &view
	}
	return status
}

func buildFlightView(f *domain.Flight, grade domain.Grade, now time.Time) app.FlightView {
	elapsed := domain.ComputeElapsed(f, now)
	view := app.FlightView{
		Flight:         *f,
		ElapsedMs:      elapsed,
		Phase:          domain.DerivePhase(f, elapsed),
		ProgressPct:    percentOf(elapsed, f.PlannedDurationMs),
		ProjectedMiles: domain.ComputeMiles(f.PlannedDurationMs, false, f.AircraftID, f.CabinID, grade.Multiplier),
		MilesIfLanded:  domain.ComputeMiles(elapsed, false, f.AircraftID, f.CabinID, grade.Multiplier),
	}
	if elapsed < f.PlannedDurationMs {
		view.RemainingMs = f.PlannedDurationMs - elapsed
	} else {
		view.OverTargetMs = elapsed - f.PlannedDurationMs
	}
	return view
}

func buildCabinViews(st *domain.AppState) []app.CabinView {
	catalog := domain.CabinCatalog()
	views := make([]app.CabinView, 0, len(catalog))
	for _, c := range catalog {
		owned := st.OwnsCabin(c.ID)
		views = append(views, app.CabinView{
			Cabin:      c,
			Owned:      owned,
			Selected:   c.ID == st.SelectedCabinID,
			Affordable: !owned && st.MileBalance >= c.UnlockCost,
		})
	}
	return views
}

// percentOf returns part/whole as a percentage capped at 100.
func percentOf(part, whole int64) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	return math.Min(float64(part)/float64(whole)*100, 100)
}
