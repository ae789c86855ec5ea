package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cockpitHuhTheme returns a huh theme using the Gruvbox palette.
func cockpitHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(cockpitHuhTheme()).WithShowHelp(false)
}

// ── flight plan ──────────────────────────────────────────────────────────────

// flightPlanInput holds the form-bound values of a flight plan. Minutes is
// a string because huh inputs are text.
type flightPlanInput struct {
	Title    string
	Mission  domain.MissionType
	Aircraft domain.AircraftID
	Cabin    domain.CabinID
	Minutes  string
	Note     string
}

func planInputFrom(p domain.FlightPlan) *flightPlanInput {
	return &flightPlanInput{
		Title:    p.Title,
		Mission:  p.MissionType,
		Aircraft: p.AircraftID,
		Cabin:    p.CabinID,
		Minutes:  strconv.Itoa(p.PlannedMinutes),
		Note:     p.Note,
	}
}

func (in *flightPlanInput) plan() domain.FlightPlan {
	minutes, _ := strconv.Atoi(strings.TrimSpace(in.Minutes))
	return domain.FlightPlan{
		Title:          strings.TrimSpace(in.Title),
		MissionType:    in.Mission,
		AircraftID:     in.Aircraft,
		CabinID:        in.Cabin,
		PlannedMinutes: minutes,
		Note:           in.Note,
	}
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a title is required")
	}
	return nil
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number of minutes")
	}
	if n < domain.MinPlannedMinutes {
		return fmt.Errorf("at least %d minutes", domain.MinPlannedMinutes)
	}
	return nil
}

func newFlightPlanForm(in *flightPlanInput, cabins []app.CabinView) *huh.Form {
	missions := []huh.Option[domain.MissionType]{
		huh.NewOption("Study", domain.MissionStudy),
		huh.NewOption("Work", domain.MissionWork),
	}

	fleet := domain.AircraftCatalog()
	aircraft := make([]huh.Option[domain.AircraftID], 0, len(fleet))
	for _, a := range fleet {
		aircraft = append(aircraft, huh.NewOption(fmt.Sprintf("%s ×%.2f", a.DisplayName, a.BaseMultiplier), a.ID))
	}

	var owned []huh.Option[domain.CabinID]
	for _, c := range cabins {
		if c.Owned {
			owned = append(owned, huh.NewOption(fmt.Sprintf("%s ×%.2f", c.Cabin.DisplayName, c.Cabin.YieldMultiplier), c.Cabin.ID))
		}
	}
	if len(owned) == 0 {
		owned = append(owned, huh.NewOption(formatter.CabinName(domain.BaselineCabinID), domain.BaselineCabinID))
	}

	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Flight title").Placeholder("What are you focusing on?").
				Value(&in.Title).Validate(validateTitle),
			huh.NewSelect[domain.MissionType]().Title("Mission").Options(missions...).Value(&in.Mission),
			huh.NewInput().Title("Planned minutes").
				Description(fmt.Sprintf("%d to %d", domain.MinPlannedMinutes, domain.MaxPlannedMinutes)).
				Value(&in.Minutes).Validate(validateMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[domain.AircraftID]().Title("Aircraft").Options(aircraft...).Value(&in.Aircraft),
			huh.NewSelect[domain.CabinID]().Title("Cabin").Options(owned...).Value(&in.Cabin),
			huh.NewInput().Title("Note").Placeholder("optional").Value(&in.Note),
		),
	)
}

// departFlight saves the plan as the next draft and starts it.
func departFlight(a *App, plan domain.FlightPlan) (string, error) {
	ctx := context.Background()
	if err := a.Flights.SaveDraft(ctx, plan); err != nil {
		return "", err
	}
	f, err := a.Flights.Start(ctx, plan)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Cleared for takeoff: %s, %s planned.",
		formatter.Bold(f.Title), formatter.FormatMinutes(plan.PlannedMinutes)), nil
}

// newFlightWizard builds the flight plan form pre-filled from the draft.
// The returned input is bound to the form fields.
func newFlightWizard(state *SharedState, status *app.CockpitStatus) (*wizardView, *flightPlanInput) {
	draft := domain.DefaultFlightPlan()
	var cabins []app.CabinView
	if status != nil {
		draft = status.DraftPlan
		cabins = status.Cabins
	}
	in := planInputFrom(draft)
	form := newFlightPlanForm(in, cabins)
	w := newWizardView(state, "New flight", form, func() tea.Cmd {
		return actionCmd(func() (string, error) {
			return departFlight(state.App, in.plan())
		})
	})
	return w, in
}

func startFlightWizard(state *SharedState, status *app.CockpitStatus) tea.Cmd {
	w, _ := newFlightWizard(state, status)
	return pushView(w)
}

// ── small forms ──────────────────────────────────────────────────────────────

func confirmWizard(state *SharedState, title, question string, fn func() (string, error)) tea.Cmd {
	var ok bool
	form := newForm(huh.NewGroup(
		huh.NewConfirm().Title(question).Affirmative("Yes").Negative("No").Value(&ok),
	))
	return startWizardCmd(state, title, form, func() tea.Cmd {
		if !ok {
			return flash(formatter.Dim("Cancelled."))
		}
		return actionCmd(fn)
	})
}

func flightNoteWizard(state *SharedState, current string) tea.Cmd {
	note := current
	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Flight note").Value(&note),
	))
	return startWizardCmd(state, "Note", form, func() tea.Cmd {
		return actionCmd(func() (string, error) {
			return "Note updated.", state.App.Flights.UpdateNote(context.Background(), note)
		})
	})
}

func weeklyGoalWizard(state *SharedState, current int) tea.Cmd {
	raw := strconv.Itoa(current)
	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Weekly goal (minutes)").
			Description(fmt.Sprintf("%d to %d", domain.MinWeeklyGoalMinutes, domain.MaxWeeklyGoalMinutes)).
			Value(&raw).
			Validate(func(s string) error {
				if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
					return errors.New("enter a whole number of minutes")
				}
				return nil
			}),
	))
	return startWizardCmd(state, "Weekly goal", form, func() tea.Cmd {
		return actionCmd(func() (string, error) {
			minutes, _ := strconv.Atoi(strings.TrimSpace(raw))
			stored, err := state.App.Rewards.SetWeeklyGoal(context.Background(), minutes)
			if err != nil {
				return "", err
			}
			return "Weekly goal set to " + formatter.FormatMinutes(stored) + ".", nil
		})
	})
}

func notesWizard(state *SharedState, current string) tea.Cmd {
	notes := current
	form := newForm(huh.NewGroup(
		huh.NewText().Title("Notes").Value(&notes),
	))
	return startWizardCmd(state, "Notes", form, func() tea.Cmd {
		return actionCmd(func() (string, error) {
			return "Notes saved.", state.App.Rewards.SetNotes(context.Background(), notes)
		})
	})
}
