package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/alexanderramin/cockpit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlight_StartAndLand(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	f, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan())
	require.NoError(t, err)
	assert.Equal(t, "id-1", f.ID)

	h.clock.Advance(50 * time.Minute)
	result, err := h.cockpit.Flights.Land(ctx)
	require.NoError(t, err)

	assert.Equal(t, 525, result.MilesEarned)
	assert.Equal(t, 525, result.MileBalance)
	assert.Equal(t, domain.StatusLanded, result.Entry.Status)
	assert.Equal(t, int64(50*60_000), result.Entry.FocusedMs)
	assert.Equal(t, domain.GradeMember, result.Grade.Name)

	status, err := h.cockpit.Status.GetStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LiveFlight)
	assert.Equal(t, 525, status.MileBalance)
	assert.Equal(t, 50, status.RollingMinutes)
	assert.Equal(t, 1, status.LogCount)
}

func TestFlight_AbortEarnsHalf(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	_, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan())
	require.NoError(t, err)
	h.clock.Advance(50 * time.Minute)

	result, err := h.cockpit.Flights.Abort(ctx)
	require.NoError(t, err)
	assert.Equal(t, 263, result.MilesEarned)
	assert.Equal(t, domain.StatusAborted, result.Entry.Status)
}

func TestFlight_PausedTimeNotCounted(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	_, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan())
	require.NoError(t, err)
	h.clock.Advance(10 * time.Minute)
	require.NoError(t, h.cockpit.Flights.Pause(ctx))
	h.clock.Advance(2 * time.Hour)
	require.NoError(t, h.cockpit.Flights.Resume(ctx))
	h.clock.Advance(5 * time.Minute)

	result, err := h.cockpit.Flights.Land(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15*60_000), result.Entry.FocusedMs)
}

func TestFlight_LiveFlightSurvivesRestart(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	_, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan(testutil.WithTitle("Thesis")))
	require.NoError(t, err)
	h.clock.Advance(20 * time.Minute)

	h.reload(t)
	h.clock.Advance(10 * time.Minute)

	status, err := h.cockpit.Status.GetStatus(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LiveFlight)
	assert.Equal(t, "Thesis", status.LiveFlight.Flight.Title)
	assert.Equal(t, int64(30*60_000), status.LiveFlight.ElapsedMs)
}

func TestFlight_StartSavesDraft(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan(testutil.WithTitle("Chemistry"), testutil.WithPlannedMinutes(25))
	_, err := h.cockpit.Flights.Start(ctx, plan)
	require.NoError(t, err)

	status, err := h.cockpit.Status.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", status.DraftPlan.Title)
	assert.Equal(t, 25, status.DraftPlan.PlannedMinutes)
}

func TestFlight_RejectionsDoNotPersist(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := &testutil.FailingStateStore{StateStore: newSQLiteStore(database)}
	h := newHarness(t, store)
	ctx := context.Background()

	assert.ErrorIs(t, h.cockpit.Flights.Pause(ctx), domain.ErrNoLiveFlight)
	_, err := h.cockpit.Flights.Land(ctx)
	assert.ErrorIs(t, err, domain.ErrNoLiveFlight)
	_, err = h.cockpit.Flights.Start(ctx, testutil.NewTestPlan(testutil.WithTitle("  ")))
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.ErrorIs(t, h.cockpit.Flights.UpdateNote(ctx, "x"), domain.ErrNoLiveFlight)

	assert.Equal(t, int32(0), store.Saves.Load())
	events := h.observer.named("pause-flight")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestFlight_SaveFailureIsSwallowed(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := &testutil.FailingStateStore{StateStore: newSQLiteStore(database), FailSaves: true}
	h := newHarness(t, store)
	ctx := context.Background()

	_, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan())
	require.NoError(t, err)

	status, err := h.cockpit.Status.GetStatus(ctx)
	require.NoError(t, err)
	assert.NotNil(t, status.LiveFlight, "in-memory state stays authoritative")

	saves := h.observer.named("save-state")
	require.Len(t, saves, 1)
	assert.ErrorIs(t, saves[0].Err, testutil.ErrInjected)
	assert.Equal(t, "start-flight", saves[0].Fields["after"])
}

func TestFlight_UpdateNote(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	_, err := h.cockpit.Flights.Start(ctx, testutil.NewTestPlan())
	require.NoError(t, err)
	require.NoError(t, h.cockpit.Flights.UpdateNote(ctx, "skip section 2"))
	h.clock.Advance(time.Minute)

	result, err := h.cockpit.Flights.Land(ctx)
	require.NoError(t, err)
	assert.Equal(t, "skip section 2", result.Entry.Note)
}
