package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/cockpit/internal/db"
)

// FailKeyWriteUoW runs transactions against DB but fails any write whose
// arguments name FailKey, e.g. the weekly bonus token row. Reads and
// writes to other keys pass through, so a SaveAll that writes the snapshot
// first and the token second fails halfway and must roll back.
type FailKeyWriteUoW struct {
	DB      *sql.DB
	FailKey string
	Err     error
}

func (u *FailKeyWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failKeyWrite{DBTX: tx, key: u.FailKey, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failKeyWrite struct {
	db.DBTX
	key string
	err error
}

func (f *failKeyWrite) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	for _, a := range args {
		if s, ok := a.(string); ok && s == f.key {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
