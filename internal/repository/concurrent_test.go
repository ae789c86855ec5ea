package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/cockpit/internal/db"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/alexanderramin/cockpit/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// Readers must only ever observe whole snapshots while a writer keeps
// replacing the blob, and balances must never go backwards.
func TestConcurrentAccess_LoadDuringSave(t *testing.T) {
	database := newConcurrentTestDB(t)
	store := repository.NewSQLiteStateStore(database, db.NewSQLiteUnitOfWork(database))
	ctx := context.Background()

	initial := domain.NewAppState()
	require.NoError(t, store.Save(ctx, initial))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s := domain.NewAppState()
		for i := 1; i <= 20; i++ {
			s.MileBalance = i * 100
			s.WeeklyBonusClaimedToken = "2025-W25"
			if err := store.SaveAll(ctx, s); err != nil {
				t.Errorf("writer: save %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			last := -1
			for i := 0; i < 10; i++ {
				s, err := store.Load(ctx)
				if err != nil {
					t.Errorf("reader %d: load: %v", reader, err)
					return
				}
				if s.MileBalance < last {
					t.Errorf("reader %d: balance went backwards: %d after %d", reader, s.MileBalance, last)
				}
				last = s.MileBalance
			}
		}(r)
	}

	wg.Wait()

	final, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000, final.MileBalance)
	token, err := store.LoadBonusToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-W25", token)
}
