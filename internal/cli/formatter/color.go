package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the style for a flight phase or terminal status.
func PhaseStyle(phase domain.FlightStatus) lipgloss.Style {
	switch phase {
	case domain.StatusClimb:
		return StyleBlue
	case domain.StatusCruise, domain.StatusLanded:
		return StyleGreen
	case domain.StatusDescent:
		return StyleYellow
	case domain.StatusAborted:
		return StyleRed
	default:
		return StyleDim
	}
}

// PhaseIndicator renders a phase such as "▲ CLIMB".
func PhaseIndicator(phase domain.FlightStatus) string {
	glyph := "●"
	switch phase {
	case domain.StatusTaxi:
		glyph = "○"
	case domain.StatusClimb:
		glyph = "▲"
	case domain.StatusCruise:
		glyph = "▶"
	case domain.StatusDescent:
		glyph = "▼"
	case domain.StatusLanded:
		glyph = "✔"
	case domain.StatusAborted:
		glyph = "✖"
	}
	return PhaseStyle(phase).Render(glyph + " " + string(phase))
}

// GradeBadge renders a grade name in its tier color.
func GradeBadge(name domain.GradeName) string {
	switch name {
	case domain.GradeBlack:
		return StylePurple.Bold(true).Render(string(name))
	case domain.GradePlatinum:
		return StyleBlue.Render(string(name))
	case domain.GradeGold:
		return StyleYellow.Render(string(name))
	case domain.GradeSilver:
		return StyleFg.Render(string(name))
	default:
		return StyleDim.Render(string(name))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Notice renders a rejected action, e.g. "· not enough miles".
func Notice(text string) string {
	return StyleDim.Render("· " + text)
}
