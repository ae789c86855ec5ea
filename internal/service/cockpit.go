package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/alexanderramin/cockpit/internal/repository"
	"github.com/mohae/deepcopy"
)

// Cockpit bundles the services that share one in-memory state. All of
// them serialize through the same lock.
type Cockpit struct {
	Flights FlightService
	Rewards RewardsService
	Status  StatusService
}

type Option func(*cockpitState)

func WithClock(c Clock) Option {
	return func(s *cockpitState) { s.clock = c }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *cockpitState) { s.ids = g }
}

func WithObserver(o UseCaseObserver) Option {
	return func(s *cockpitState) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{o}) }
}

type cockpitState struct {
	mu       sync.Mutex
	state    *domain.AppState
	store    repository.StateStore
	clock    Clock
	ids      IDGenerator
	observer UseCaseObserver
}

// NewCockpit loads the persisted state from store and wires the services.
// A missing or unreadable snapshot starts from a fresh state; any other
// storage failure is returned.
func NewCockpit(ctx context.Context, store repository.StateStore, opts ...Option) (*Cockpit, error) {
	cs := &cockpitState{
		store:    store,
		clock:    systemClock{},
		ids:      uuidGenerator{},
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(cs)
	}
	if err := cs.load(ctx); err != nil {
		return nil, err
	}
	return &Cockpit{
		Flights: &flightService{cs},
		Rewards: &rewardsService{cs},
		Status:  &statusService{cs},
	}, nil
}

func (c *cockpitState) load(ctx context.Context) error {
	startedAt := time.Now()
	fields := map[string]any{}

	s, err := c.store.Load(ctx)
	switch {
	case err == nil:
		fields["source"] = "store"
	case errors.Is(err, repository.ErrNotFound):
		fields["source"] = "defaults"
		s = domain.NewAppState()
	case errors.Is(err, repository.ErrCorrupt):
		fields["source"] = "defaults"
		observe(ctx, c.observer, "load-state", startedAt, fields, err)
		s = domain.NewAppState()
	default:
		return fmt.Errorf("loading state: %w", err)
	}

	token, err := c.store.LoadBonusToken(ctx)
	if err != nil {
		return fmt.Errorf("loading weekly bonus token: %w", err)
	}
	s.WeeklyBonusClaimedToken = token
	s.Normalize()
	c.state = s

	fields["log_entries"] = len(s.LogEntries)
	observe(ctx, c.observer, "load-state", startedAt, fields, nil)
	return nil
}

type persistMode int

const (
	persistSnapshot persistMode = iota
	// persistAll also writes the weekly bonus token.
	persistAll
)

// mutate runs fn under the lock with the current time and persists the
// state when fn succeeds. Rejections from fn are returned unchanged and
// nothing is written.
func (c *cockpitState) mutate(ctx context.Context, name string, mode persistMode, fields map[string]any, fn func(s *domain.AppState, now time.Time) error) (err error) {
	startedAt := time.Now()
	if fields == nil {
		fields = map[string]any{}
	}
	defer func() {
		observe(ctx, c.observer, name, startedAt, fields, err)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = fn(c.state, c.clock.Now()); err != nil {
		return err
	}
	c.persist(ctx, name, mode)
	return nil
}

// persist saves the snapshot. Failures are reported and swallowed; the
// in-memory state stays authoritative until the next successful save.
func (c *cockpitState) persist(ctx context.Context, name string, mode persistMode) {
	startedAt := time.Now()
	var err error
	if mode == persistAll {
		err = c.store.SaveAll(ctx, c.state)
	} else {
		err = c.store.Save(ctx, c.state)
	}
	if err != nil {
		observe(ctx, c.observer, "save-state", startedAt, map[string]any{"after": name}, err)
	}
}

// snapshot returns a deep copy of the state and the time it was taken.
func (c *cockpitState) snapshot() (*domain.AppState, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := deepcopy.Copy(*c.state).(domain.AppState)
	return &cp, c.clock.Now()
}
