package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
)

const (
	flightBarWidth = 24
	goalBarWidth   = 16
)

// FormatStatus renders the full cockpit: live flight, rewards and goal.
func FormatStatus(s *app.CockpitStatus) string {
	var b strings.Builder
	b.WriteString(FormatFlightPanel(s.LiveFlight))
	b.WriteString("\n\n")
	b.WriteString(FormatRewardsPanel(s))
	return RenderBox("Cockpit", b.String())
}

// FormatFlightPanel renders the live flight block, or a hint when parked.
func FormatFlightPanel(v *app.FlightView) string {
	if v == nil {
		return Dim("No flight in progress. Press n or run `cockpit flight start` to depart.")
	}
	f := v.Flight
	var b strings.Builder

	state := StyleGreen.Render("RUNNING")
	if !f.Running {
		state = StyleYellow.Render("PAUSED")
	}
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(f.Title), MissionBadge(f.MissionType), state)
	fmt.Fprintf(&b, "%s · %s\n", AircraftName(f.AircraftID), CabinName(f.CabinID))
	if f.Note != "" {
		fmt.Fprintf(&b, "%s\n", Dim(f.Note))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s  %s\n", PhaseIndicator(v.Phase), StyleBold.Render(FormatClock(v.ElapsedMs)))
	fmt.Fprintf(&b, "%s\n", RenderProgress(v.ProgressPct/100, flightBarWidth, PhaseStyle(v.Phase).Render))
	if v.OverTargetMs > 0 {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render("+"+FormatClock(v.OverTargetMs)+" over target"))
	} else {
		fmt.Fprintf(&b, "%s\n", Dim(FormatClock(v.RemainingMs)+" to target"))
	}
	fmt.Fprintf(&b, "Miles if landed now %s · at target %s",
		StyleGreen.Render(FormatMiles(v.MilesIfLanded)), FormatMiles(v.ProjectedMiles))
	return b.String()
}

// FormatRewardsPanel renders balance, grade and weekly goal progress.
func FormatRewardsPanel(s *app.CockpitStatus) string {
	var b strings.Builder
	b.WriteString(Header("Rewards") + "\n")
	fmt.Fprintf(&b, "Balance   %s\n", StyleGreen.Render(FormatMiles(s.MileBalance)))
	fmt.Fprintf(&b, "Grade     %s ×%.2f  %s\n", GradeBadge(s.Grade.Name), s.Grade.Multiplier,
		Dim(FormatMinutes(s.RollingMinutes)+" in the last 7 days"))
	if s.NextGrade != nil {
		fmt.Fprintf(&b, "          %s\n", Dim(fmt.Sprintf("%s more to %s", FormatMinutes(s.MinutesToNextGrade), s.NextGrade.Name)))
	}
	fmt.Fprintf(&b, "Cabin     %s\n", CabinName(s.SelectedCabinID))

	goalStyle := StyleYellow.Render
	if s.GoalProgressPct >= 100 {
		goalStyle = StyleGreen.Render
	}
	fmt.Fprintf(&b, "Goal      %s %s\n",
		RenderProgress(s.GoalProgressPct/100, goalBarWidth, goalStyle),
		Dim(fmt.Sprintf("%s / %s", FormatMinutes(s.RollingMinutes), FormatMinutes(s.WeeklyGoalMinutes))))
	switch {
	case s.BonusClaimed:
		fmt.Fprintf(&b, "Bonus     %s", Dim("claimed for "+s.WeekToken))
	case s.BonusClaimable:
		fmt.Fprintf(&b, "Bonus     %s", StyleGreen.Render(fmt.Sprintf("ready: %s", FormatMiles(s.WeeklyGoalMinutes*2))))
	default:
		fmt.Fprintf(&b, "Bonus     %s", Dim("reach the weekly goal to claim"))
	}
	return b.String()
}

// FormatLanding summarizes a finished flight.
func FormatLanding(r *app.LandingResult) string {
	return fmt.Sprintf("%s %s after %s · %s earned · balance %s · grade %s",
		PhaseIndicator(r.Entry.Status),
		Bold(r.Entry.Title),
		FormatMinutes(domain.MinutesFromMs(r.Entry.FocusedMs)),
		StyleGreen.Render("+"+FormatMiles(r.MilesEarned)),
		FormatMiles(r.MileBalance),
		GradeBadge(r.Grade.Name),
	)
}

// FormatBonus summarizes a claimed weekly bonus.
func FormatBonus(r *app.BonusResult) string {
	return fmt.Sprintf("Weekly bonus %s for %s · balance %s",
		StyleGreen.Render("+"+FormatMiles(r.Miles)), r.WeekToken, FormatMiles(r.MileBalance))
}
