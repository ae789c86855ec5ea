package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/mohae/deepcopy"
)

type rewardsService struct {
	*cockpitState
}

func (s *rewardsService) PurchaseCabin(ctx context.Context, id domain.CabinID) error {
	fields := map[string]any{"cabin": string(id)}
	return s.mutate(ctx, "purchase-cabin", persistSnapshot, fields, func(st *domain.AppState, _ time.Time) error {
		if err := st.PurchaseCabin(id); err != nil {
			return err
		}
		fields["balance"] = st.MileBalance
		return nil
	})
}

func (s *rewardsService) SelectCabin(ctx context.Context, id domain.CabinID) error {
	fields := map[string]any{"cabin": string(id)}
	return s.mutate(ctx, "select-cabin", persistSnapshot, fields, func(st *domain.AppState, _ time.Time) error {
		return st.SelectCabin(id)
	})
}

func (s *rewardsService) SetWeeklyGoal(ctx context.Context, minutes int) (int, error) {
	var stored int
	fields := map[string]any{"requested_min": minutes}
	err := s.mutate(ctx, "set-weekly-goal", persistSnapshot, fields, func(st *domain.AppState, _ time.Time) error {
		stored = st.SetWeeklyGoal(minutes)
		fields["goal_min"] = stored
		return nil
	})
	return stored, err
}

func (s *rewardsService) ClaimWeeklyBonus(ctx context.Context) (*app.BonusResult, error) {
	var result app.BonusResult
	fields := map[string]any{}
	err := s.mutate(ctx, "claim-weekly-bonus", persistAll, fields, func(st *domain.AppState, now time.Time) error {
		miles, err := st.ClaimWeeklyBonus(now)
		if err != nil {
			return err
		}
		result = app.BonusResult{
			Miles:       miles,
			WeekToken:   st.WeeklyBonusClaimedToken,
			MileBalance: st.MileBalance,
		}
		fields["week"] = result.WeekToken
		fields["miles"] = miles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *rewardsService) DeleteLogEntry(ctx context.Context, id string) error {
	fields := map[string]any{"entry_id": id}
	return s.mutate(ctx, "delete-log-entry", persistSnapshot, fields, func(st *domain.AppState, _ time.Time) error {
		return st.DeleteLogEntry(id)
	})
}

func (s *rewardsService) ListLog(_ context.Context, limit int) ([]domain.FlightLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.state.LogEntries
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		return []domain.FlightLogEntry{}, nil
	}
	return deepcopy.Copy(entries).([]domain.FlightLogEntry), nil
}

func (s *rewardsService) SetNotes(ctx context.Context, text string) error {
	return s.mutate(ctx, "set-notes", persistSnapshot, nil, func(st *domain.AppState, _ time.Time) error {
		st.SetNotes(text)
		return nil
	})
}

// ResetAll wipes everything, including a live flight and the claimed
// bonus week, and writes both back in one go.
func (s *rewardsService) ResetAll(ctx context.Context) error {
	return s.mutate(ctx, "reset-all", persistAll, nil, func(st *domain.AppState, _ time.Time) error {
		st.ResetAll()
		return nil
	})
}
