package cli

import (
	"time"

	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/config"
	"github.com/alexanderramin/cockpit/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Header summary, refreshed whenever the dashboard reloads.
	MileBalance int
	Grade       domain.GradeName
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// TickInterval is how often the dashboard re-reads the live flight.
func (s *SharedState) TickInterval() time.Duration {
	if d := s.App.Config.TickInterval(); d > 0 {
		return d
	}
	return config.DefaultTickMs * time.Millisecond
}

// flashText renders the outcome of an action for the status bar.
// Rejections are shown as a quiet notice.
func flashText(text string, err error) string {
	switch {
	case err == nil:
		return formatter.StyleGreen.Render("✔ ") + text
	case domain.IsRejection(err):
		return formatter.Notice(err.Error())
	default:
		return formatter.StyleRed.Render("Error: " + err.Error())
	}
}
