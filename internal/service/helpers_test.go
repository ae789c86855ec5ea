package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cockpit/internal/repository"
	"github.com/alexanderramin/cockpit/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) named(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type harness struct {
	cockpit  *Cockpit
	store    repository.StateStore
	clock    *testutil.FakeClock
	observer *recordingObserver
}

func newHarness(t *testing.T, store repository.StateStore) *harness {
	t.Helper()
	h := &harness{
		store:    store,
		clock:    testutil.NewFakeClock(testStart),
		observer: &recordingObserver{},
	}
	h.reload(t)
	return h
}

// reload builds a fresh cockpit on the same store, as a restart would.
func (h *harness) reload(t *testing.T) {
	t.Helper()
	c, err := NewCockpit(context.Background(), h.store,
		WithClock(h.clock),
		WithIDGenerator(&testutil.SequenceIDs{}),
		WithObserver(h.observer),
	)
	require.NoError(t, err)
	h.cockpit = c
}

func newSQLiteHarness(t *testing.T) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newHarness(t, repository.NewSQLiteStateStore(database, testutil.NewTestUoW(database)))
}

func newSQLiteStore(database *sql.DB) *repository.SQLiteStateStore {
	return repository.NewSQLiteStateStore(database, testutil.NewTestUoW(database))
}
