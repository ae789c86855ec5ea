package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var milesPrinter = message.NewPrinter(language.English)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatMiles renders a mile amount with thousands separators, e.g. "4,200 mi".
func FormatMiles(miles int) string {
	return milesPrinter.Sprintf("%d mi", miles)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatClock renders milliseconds as a flight clock, "HH:MM:SS".
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// HumanDate returns "Today", "Yesterday" or an absolute date relative to now.
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDate(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t, now)
	}
}

// MissionBadge renders a mission type label.
func MissionBadge(m domain.MissionType) string {
	switch m {
	case domain.MissionWork:
		return StyleBlue.Render("Work")
	case domain.MissionStudy:
		return StylePurple.Render("Study")
	default:
		return StyleDim.Render("--")
	}
}

// AircraftName returns the display name for id, or the raw id if unknown.
func AircraftName(id domain.AircraftID) string {
	if a, ok := domain.LookupAircraft(id); ok {
		return a.DisplayName
	}
	return string(id)
}

// CabinName returns the display name for id, or the raw id if unknown.
func CabinName(id domain.CabinID) string {
	if c, ok := domain.LookupCabin(id); ok {
		return c.DisplayName
	}
	return string(id)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
