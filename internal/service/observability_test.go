package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	ctx := context.Background()

	observe(ctx, obs, "flight.start", time.Now(), map[string]any{"flight_id": "f1"}, nil)
	observe(ctx, obs, "flight.pause", time.Now(), nil, domain.ErrAlreadyPaused)
	observe(ctx, obs, "save-state", time.Now(), nil, errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=flight.start")
	assert.Contains(t, out, "flight_id=f1")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "rejected=")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="disk full"`)
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
