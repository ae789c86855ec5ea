package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that a fresh status snapshot is available.
type dashboardLoadedMsg struct {
	status *app.CockpitStatus
	err    error
}

// tickMsg drives the live clock. Each tick re-reads status; elapsed time is
// always derived from the stored flight, never counted here.
type tickMsg time.Time

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen of the TUI: the live flight on the left,
// rewards and the weekly goal on the right.
type dashboardView struct {
	state   *SharedState
	status  *app.CockpitStatus
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	if v.status != nil && v.status.LiveFlight != nil {
		pauseDesc := "pause"
		if !v.status.LiveFlight.Flight.Running {
			pauseDesc = "resume"
		}
		return []key.Binding{
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", pauseDesc)),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "land")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "abort")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "note")),
			key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logbook")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new flight")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cabins")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logbook")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bonus")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goal")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "notes")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), v.scheduleTick())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	a := v.state.App
	return func() tea.Msg {
		status, err := a.Status.GetStatus(context.Background())
		return dashboardLoadedMsg{status: status, err: err}
	}
}

func (v *dashboardView) scheduleTick() tea.Cmd {
	return tea.Tick(v.state.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.status = msg.status
		v.state.MileBalance = msg.status.MileBalance
		v.state.Grade = msg.status.Grade.Name
		return v, nil

	case tickMsg:
		return v, tea.Batch(v.loadData(), v.scheduleTick())

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}

	return v, nil
}

func (v *dashboardView) handleKey(k string) tea.Cmd {
	a := v.state.App
	ctx := context.Background()
	live := v.status != nil && v.status.LiveFlight != nil

	switch k {
	case "n":
		if live {
			return flash(flashText("", domain.ErrFlightInProgress))
		}
		return startFlightWizard(v.state, v.status)
	case "p", " ":
		if !live {
			return flash(flashText("", domain.ErrNoLiveFlight))
		}
		if v.status.LiveFlight.Flight.Running {
			return actionCmd(func() (string, error) {
				return "Holding. Timer paused.", a.Flights.Pause(ctx)
			})
		}
		return actionCmd(func() (string, error) {
			return "Resumed.", a.Flights.Resume(ctx)
		})
	case "l":
		return actionCmd(func() (string, error) {
			result, err := a.Flights.Land(ctx)
			if err != nil {
				return "", err
			}
			return formatter.FormatLanding(result), nil
		})
	case "a":
		if !live {
			return flash(flashText("", domain.ErrNoLiveFlight))
		}
		return confirmWizard(v.state, "Abort flight",
			"Abort "+v.status.LiveFlight.Flight.Title+"? Aborted flights earn half miles.",
			func() (string, error) {
				result, err := a.Flights.Abort(ctx)
				if err != nil {
					return "", err
				}
				return formatter.FormatLanding(result), nil
			})
	case "e":
		if !live {
			return flash(flashText("", domain.ErrNoLiveFlight))
		}
		return flightNoteWizard(v.state, v.status.LiveFlight.Flight.Note)
	case "b":
		return actionCmd(func() (string, error) {
			result, err := a.Rewards.ClaimWeeklyBonus(ctx)
			if err != nil {
				return "", err
			}
			return formatter.FormatBonus(result), nil
		})
	case "g":
		if v.status == nil {
			return nil
		}
		return weeklyGoalWizard(v.state, v.status.WeeklyGoalMinutes)
	case "w":
		if v.status == nil {
			return nil
		}
		return notesWizard(v.state, v.status.Notes)
	case "c":
		return pushView(newCabinsView(v.state))
	case "o":
		return pushView(newLogView(v.state))
	case "r":
		return v.loadData()
	}
	return nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 46

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.status == nil {
		return ""
	}

	leftPane := v.renderFlightPane()
	rightPane := formatter.FormatRewardsPanel(v.status)

	var b strings.Builder
	b.WriteString("\n")
	if v.state.Width < 90 {
		b.WriteString(leftPane + "\n\n" + rightPane)
	} else {
		leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(leftPane)
		divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
		rightCol := lipgloss.NewStyle().Width(v.state.Width - dashLeftPaneWidth - 3).Render(rightPane)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol))
	}

	if v.status.Notes != "" {
		b.WriteString("\n\n" + formatter.Header("Notes") + "\n" + v.status.Notes)
	}
	return b.String()
}

func (v *dashboardView) renderFlightPane() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Flight") + "\n")
	if v.status.LiveFlight != nil {
		b.WriteString(formatter.FormatFlightPanel(v.status.LiveFlight))
		return b.String()
	}

	d := v.status.DraftPlan
	b.WriteString(formatter.Dim("Parked at the gate.") + "\n\n")
	title := d.Title
	if title == "" {
		title = "untitled"
	}
	fmt.Fprintf(&b, "Next   %s  %s\n", formatter.Bold(title), formatter.MissionBadge(d.MissionType))
	fmt.Fprintf(&b, "       %s · %s · %s\n",
		formatter.AircraftName(d.AircraftID), formatter.CabinName(d.CabinID), formatter.FormatMinutes(d.PlannedMinutes))
	fmt.Fprintf(&b, "       %s", formatter.Dim("est. "+formatter.FormatMiles(v.status.DraftMiles)))
	return b.String()
}
