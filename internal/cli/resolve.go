package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/domain"
)

// resolveLogEntryID expands a unique ID prefix, as shown by `log list`,
// to the full entry ID.
func resolveLogEntryID(ctx context.Context, app *App, prefix string) (string, error) {
	entries, err := app.Rewards.ListLog(ctx, 0)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, e := range entries {
		if e.ID == prefix {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", domain.ErrLogEntryNotFound
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous log entry prefix %q matches %d entries", prefix, len(matches))
	}
}
