package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
)

// FormatLogTable renders flight log entries, newest first.
func FormatLogTable(entries []domain.FlightLogEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Logbook is empty.")
	}
	headers := []string{"ID", "WHEN", "TITLE", "MISSION", "AIRCRAFT", "CABIN", "FOCUS", "RESULT", "MILES"}
	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestamp(e.CompletedAt(), now),
			Bold(e.Title),
			MissionBadge(e.MissionType),
			AircraftName(e.AircraftID),
			CabinName(e.CabinID),
			FormatMinutes(domain.MinutesFromMs(e.FocusedMs)),
			PhaseIndicator(e.Status),
			StyleGreen.Render(FormatMiles(e.MilesEarned)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCabinTable renders the cabin shop with ownership and prices.
func FormatCabinTable(cabins []app.CabinView, balance int) string {
	headers := []string{"CABIN", "YIELD", "PRICE", "STATUS"}
	rows := make([][]string, 0, len(cabins))
	for _, c := range cabins {
		var state string
		switch {
		case c.Selected:
			state = StyleGreen.Render("● selected")
		case c.Owned:
			state = StyleFg.Render("○ owned")
		case c.Affordable:
			state = StyleYellow.Render("$ can buy")
		default:
			state = Dim(fmt.Sprintf("needs %s more", FormatMiles(c.Cabin.UnlockCost-balance)))
		}
		price := Dim("included")
		if c.Cabin.UnlockCost > 0 {
			price = FormatMiles(c.Cabin.UnlockCost)
		}
		rows = append(rows, []string{
			Bold(c.Cabin.DisplayName) + Dim(" ("+string(c.Cabin.ID)+")"),
			fmt.Sprintf("×%.2f", c.Cabin.YieldMultiplier),
			price,
			state,
		})
	}
	return RenderTable(headers, rows) + "\n" + fmt.Sprintf("Balance %s", StyleGreen.Render(FormatMiles(balance)))
}

// FormatFleetTable renders the aircraft catalog.
func FormatFleetTable(fleet []domain.Aircraft) string {
	headers := []string{"ID", "AIRCRAFT", "MULTIPLIER"}
	rows := make([][]string, 0, len(fleet))
	for _, a := range fleet {
		name := Bold(a.DisplayName)
		if a.ID == domain.DefaultAircraftID {
			name += Dim(" (default)")
		}
		rows = append(rows, []string{string(a.ID), name, fmt.Sprintf("×%.2f", a.BaseMultiplier)})
	}
	return RenderTable(headers, rows)
}
