package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/cockpit/internal/domain"
)

const (
	stateFileName      = "state.json"
	bonusTokenFileName = "weekly-bonus-token"
)

// FileStateStore implements StateStore with one JSON file for the snapshot
// and a plain-text file for the bonus token.
type FileStateStore struct {
	dir string
}

func NewFileStateStore(dir string) *FileStateStore {
	return &FileStateStore{dir: dir}
}

func (s *FileStateStore) Load(_ context.Context) (*domain.AppState, error) {
	payload, err := os.ReadFile(filepath.Join(s.dir, stateFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("state file: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	return decodeState(payload)
}

func (s *FileStateStore) Save(_ context.Context, state *domain.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	return s.writeAtomic(stateFileName, payload)
}

func (s *FileStateStore) LoadBonusToken(_ context.Context) (string, error) {
	payload, err := os.ReadFile(filepath.Join(s.dir, bonusTokenFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading bonus token: %w", err)
	}
	return strings.TrimSpace(string(payload)), nil
}

func (s *FileStateStore) SaveBonusToken(_ context.Context, token string) error {
	if token == "" {
		err := os.Remove(filepath.Join(s.dir, bonusTokenFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("clearing bonus token: %w", err)
		}
		return nil
	}
	return s.writeAtomic(bonusTokenFileName, []byte(token+"\n"))
}

func (s *FileStateStore) SaveAll(ctx context.Context, state *domain.AppState) error {
	return saveAll(ctx, s, state)
}

// writeAtomic writes through a temp file and a rename so a crash never
// leaves a half-written file behind.
func (s *FileStateStore) writeAtomic(name string, payload []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
