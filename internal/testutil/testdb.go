package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/cockpit/internal/db"
	"github.com/alexanderramin/cockpit/internal/repository"
)

// NewTestDB opens a private in-memory database with the kv_store table
// migrated. It is closed on test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestStore is the state store most tests want: snapshot and bonus
// token in a fresh in-memory kv_store, with transactional SaveAll.
func NewTestStore(t *testing.T) *repository.SQLiteStateStore {
	t.Helper()
	database := NewTestDB(t)
	return repository.NewSQLiteStateStore(database, NewTestUoW(database))
}
