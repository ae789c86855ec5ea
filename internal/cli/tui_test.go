package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/alexanderramin/cockpit/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestFlight(t *testing.T, app *App, opts ...testutil.PlanOption) {
	t.Helper()
	_, err := app.Flights.Start(context.Background(), testutil.NewTestPlan(opts...))
	require.NoError(t, err)
}

func TestTUI_DashboardLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	require.NotNil(t, d.Dashboard().status)
	view := d.View()
	assert.Contains(t, view, "cockpit")
	assert.Contains(t, view, "Parked at the gate")
	assert.Contains(t, view, "REWARDS")
	assert.Contains(t, view, "n: new flight")
	assert.Equal(t, domain.GradeMember, d.State().Grade)
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("ctrl+c")
	assert.True(t, d.IsQuitting())
}

func TestTUI_TickRefreshesLiveClock(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app, testutil.WithTitle("Deep work"))
	d := NewTestDriver(t, env.app)
	assert.Contains(t, d.View(), "00:00:00")

	env.clock.Advance(20 * time.Minute)
	d.Send(tickMsg(env.clock.Now()))

	view := d.View()
	assert.Contains(t, view, "Deep work")
	assert.Contains(t, view, "00:20:00")
	assert.Contains(t, view, "CRUISE")
	assert.Contains(t, view, "p: pause")
}

func TestTUI_NewFlightOpensForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('n')

	assert.Equal(t, []ViewID{ViewDashboard, ViewForm}, d.ViewStackIDs())
	assert.Contains(t, d.View(), "New flight")

	d.PressEsc()
	assert.Equal(t, []ViewID{ViewDashboard}, d.ViewStackIDs())
	assert.Contains(t, d.Flash(), "Cancelled.")
}

func TestTUI_NewFlightWhileLiveIsANotice(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app)
	d := NewTestDriver(t, env.app)

	d.PressKey('n')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.Flash(), domain.ErrFlightInProgress.Error())
}

func TestTUI_FlightWizardDepartsFromDraft(t *testing.T) {
	env := newTestEnv(t)
	draft := testutil.NewTestPlan(
		testutil.WithTitle("Organic chemistry"),
		testutil.WithPlannedMinutes(90),
		testutil.WithAircraft(domain.AircraftB747),
		testutil.WithPlanNote("chapter 7"),
	)
	require.NoError(t, env.app.Flights.SaveDraft(context.Background(), draft))
	d := NewTestDriver(t, env.app)

	// The form is pre-filled from the saved draft; submitting it departs.
	w, in := newFlightWizard(d.State(), d.Dashboard().status)
	assert.Equal(t, "Organic chemistry", in.Title)
	assert.Equal(t, "90", in.Minutes)
	d.Send(pushViewMsg{view: w})
	assert.Contains(t, d.View(), "Organic chemistry")
	d.Send(wizardCompleteMsg{nextCmd: w.done()})

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.Flash(), "Cleared for takeoff")

	status := d.Dashboard().status
	require.NotNil(t, status.LiveFlight)
	assert.Equal(t, "Organic chemistry", status.LiveFlight.Flight.Title)
	assert.Equal(t, int64(90*60_000), status.LiveFlight.Flight.PlannedDurationMs)
	assert.Equal(t, domain.AircraftB747, status.LiveFlight.Flight.AircraftID)
	assert.Equal(t, "chapter 7", status.LiveFlight.Flight.Note)
	assert.Equal(t, "Organic chemistry", status.DraftPlan.Title)
	assert.Equal(t, domain.AircraftB747, status.DraftPlan.AircraftID)
}

func TestTUI_PauseResumeLand(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app)
	d := NewTestDriver(t, env.app)

	env.clock.Advance(30 * time.Minute)
	d.PressKey('p')
	assert.Contains(t, d.Flash(), "paused")
	assert.False(t, d.Dashboard().status.LiveFlight.Flight.Running)
	assert.Contains(t, d.View(), "p: resume")

	env.clock.Advance(time.Hour)
	d.PressKey('p')
	assert.True(t, d.Dashboard().status.LiveFlight.Flight.Running)

	env.clock.Advance(20 * time.Minute)
	d.PressKey('l')
	assert.Contains(t, d.Flash(), "+525 mi")
	assert.Nil(t, d.Dashboard().status.LiveFlight)
	assert.Equal(t, 525, d.State().MileBalance)
}

func TestTUI_LandWithoutFlightIsANotice(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('l')
	assert.Contains(t, d.Flash(), domain.ErrNoLiveFlight.Error())
}

func TestTUI_AbortAsksForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app, testutil.WithTitle("Slides"))
	d := NewTestDriver(t, env.app)

	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.View(), "Abort flight")

	d.PressEsc()
	assert.NotNil(t, d.Dashboard().status.LiveFlight)
}

func TestTUI_BonusNotMetIsANotice(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('b')
	assert.Contains(t, d.Flash(), domain.ErrGoalNotMet.Error())
}

func TestTUI_CabinsBuyWithEnter(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app, testutil.WithPlannedMinutes(240))
	env.clock.Advance(240 * time.Minute)
	_, err := env.app.Flights.Land(context.Background())
	require.NoError(t, err)

	d := NewTestDriver(t, env.app)
	d.PressKey('c')
	require.Equal(t, ViewCabins, d.ActiveViewID())
	assert.Contains(t, d.View(), "Premium Economy")

	d.Press("down")
	d.PressEnter()
	assert.Contains(t, d.Flash(), "Unlocked Premium Economy")
	assert.Equal(t, 1020, d.State().MileBalance)

	// Business is out of reach.
	d.Press("down")
	d.PressEnter()
	assert.Contains(t, d.Flash(), domain.ErrInsufficientMiles.Error())

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_LogViewListsAndConfirmsDelete(t *testing.T) {
	env := newTestEnv(t)
	startTestFlight(t, env.app, testutil.WithTitle("Logged"))
	env.clock.Advance(30 * time.Minute)
	_, err := env.app.Flights.Land(context.Background())
	require.NoError(t, err)

	d := NewTestDriver(t, env.app)
	d.PressKey('o')
	require.Equal(t, ViewLog, d.ActiveViewID())
	assert.Contains(t, d.View(), "LOGBOOK (1)")
	assert.Contains(t, d.View(), "Logged")

	d.PressKey('d')
	assert.Equal(t, []ViewID{ViewDashboard, ViewLog, ViewForm}, d.ViewStackIDs())
	d.PressEsc()
	assert.Equal(t, []ViewID{ViewDashboard, ViewLog}, d.ViewStackIDs())
}

func TestTUI_WindowResizeSwitchesLayout(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, 60, d.State().Width)
	assert.Contains(t, d.View(), "Parked at the gate")
}
