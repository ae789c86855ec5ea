package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cockpit/internal/db"
	"github.com/alexanderramin/cockpit/internal/domain"
)

// SQLiteStateStore implements StateStore on the kv_store table.
type SQLiteStateStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteStateStore creates a store on conn. uow may be nil, in which
// case SaveAll writes without a transaction.
func NewSQLiteStateStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteStateStore {
	return &SQLiteStateStore{db: conn, uow: uow}
}

func (r *SQLiteStateStore) Load(ctx context.Context) (*domain.AppState, error) {
	payload, err := r.get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	return decodeState([]byte(payload))
}

func (r *SQLiteStateStore) Save(ctx context.Context, s *domain.AppState) error {
	payload, err := encodeState(s)
	if err != nil {
		return err
	}
	return r.put(ctx, stateKey, string(payload))
}

func (r *SQLiteStateStore) LoadBonusToken(ctx context.Context) (string, error) {
	token, err := r.get(ctx, bonusTokenKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (r *SQLiteStateStore) SaveBonusToken(ctx context.Context, token string) error {
	if token == "" {
		return r.delete(ctx, bonusTokenKey)
	}
	return r.put(ctx, bonusTokenKey, token)
}

func (r *SQLiteStateStore) SaveAll(ctx context.Context, s *domain.AppState) error {
	if r.uow == nil {
		return saveAll(ctx, r, s)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return saveAll(ctx, NewSQLiteStateStore(tx, nil), s)
	})
}

func saveAll(ctx context.Context, store StateStore, s *domain.AppState) error {
	if err := store.Save(ctx, s); err != nil {
		return err
	}
	return store.SaveBonusToken(ctx, s.WeeklyBonusClaimedToken)
}

func (r *SQLiteStateStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateStore) put(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteStateStore) delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
