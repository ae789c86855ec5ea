package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
)

const (
	stateKey      = "cockpit.state.v1"
	bonusTokenKey = "cockpit.weekly_bonus_token"
)

// encodeState serializes the snapshot blob. The bonus token is excluded by
// the struct tags.
func encodeState(s *domain.AppState) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return payload, nil
}

// decodeState parses a snapshot blob. An empty or malformed payload is
// reported as ErrCorrupt.
func decodeState(payload []byte) (*domain.AppState, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("decoding state: %w: empty payload", ErrCorrupt)
	}
	var s domain.AppState
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decoding state: %w: %v", ErrCorrupt, err)
	}
	return &s, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
