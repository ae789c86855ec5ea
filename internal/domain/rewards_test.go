package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(id string, minutes int, endedAt time.Time) FlightLogEntry {
	return FlightLogEntry{
		ID:          id,
		Title:       "entry " + id,
		MissionType: MissionStudy,
		AircraftID:  AircraftB737,
		CabinID:     CabinEconomy,
		FocusedMs:   int64(minutes) * 60_000,
		CreatedAt:   endedAt.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:     endedAt,
		Status:      StatusLanded,
	}
}

func TestComputeMiles_Example(t *testing.T) {
	miles := ComputeMiles(50*60_000, false, AircraftB737, CabinEconomy, 1.0)
	assert.Equal(t, 525, miles)
}

func TestComputeMiles_MatchesFormula(t *testing.T) {
	grades := []float64{1.00, 1.08, 1.15, 1.25, 1.35}
	durations := []int64{0, 29_999, 30_000, 60_000, 25 * 60_000, 50*60_000 + 31_000, 8 * 60 * 60_000}
	for _, a := range AircraftCatalog() {
		for _, c := range CabinCatalog() {
			for _, g := range grades {
				for _, d := range durations {
					want := int(math.Round(float64(MinutesFromMs(d)) * 10 * a.BaseMultiplier * c.YieldMultiplier * g))
					got := ComputeMiles(d, false, a.ID, c.ID, g)
					assert.Equal(t, want, got, "a=%s c=%s g=%.2f d=%d", a.ID, c.ID, g, d)
					assert.GreaterOrEqual(t, got, 0)
				}
			}
		}
	}
}

func TestComputeMiles_AbortedIsHalf(t *testing.T) {
	for _, d := range []int64{60_000, 7 * 60_000, 33 * 60_000, 50 * 60_000, 125 * 60_000} {
		full := ComputeMiles(d, false, AircraftA350, CabinBusiness, 1.15)
		half := ComputeMiles(d, true, AircraftA350, CabinBusiness, 1.15)
		expected := int(math.Round(float64(full) * 0.5))
		assert.InDelta(t, expected, half, 1, "d=%d", d)
	}
	assert.Equal(t, 263, ComputeMiles(50*60_000, true, AircraftB737, CabinEconomy, 1.0))
}

func TestComputeMiles_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, ComputeMiles(-5*60_000, false, AircraftB747, CabinFirst, 1.35))
	assert.Equal(t, 0, ComputeMiles(10*60_000, false, AircraftB747, CabinFirst, -1))
}

func TestComputeMiles_UnknownIDsUseUnitMultiplier(t *testing.T) {
	assert.Equal(t, 100, ComputeMiles(10*60_000, false, "glider", "cargo", 1.0))
}

func TestMinutesFromMs(t *testing.T) {
	assert.Equal(t, 0, MinutesFromMs(-1))
	assert.Equal(t, 0, MinutesFromMs(29_999))
	assert.Equal(t, 1, MinutesFromMs(30_000))
	assert.Equal(t, 50, MinutesFromMs(3_000_000))
}

func TestGradeFor_Boundaries(t *testing.T) {
	cases := []struct {
		minutes int
		want    GradeName
		mult    float64
	}{
		{0, GradeMember, 1.00},
		{179, GradeMember, 1.00},
		{180, GradeSilver, 1.08},
		{419, GradeSilver, 1.08},
		{420, GradeGold, 1.15},
		{899, GradeGold, 1.15},
		{900, GradePlatinum, 1.25},
		{1499, GradePlatinum, 1.25},
		{1500, GradeBlack, 1.35},
		{100000, GradeBlack, 1.35},
	}
	for _, tc := range cases {
		g := GradeFor(tc.minutes)
		assert.Equal(t, tc.want, g.Name, "minutes=%d", tc.minutes)
		assert.Equal(t, tc.mult, g.Multiplier, "minutes=%d", tc.minutes)
	}
}

func TestGradeFor_Monotonic(t *testing.T) {
	prev := GradeFor(0).Multiplier
	for m := 1; m <= 2000; m++ {
		cur := GradeFor(m).Multiplier
		require.GreaterOrEqual(t, cur, prev, "minutes=%d", m)
		prev = cur
	}
}

func TestNextGrade(t *testing.T) {
	next, need, ok := NextGrade(100)
	require.True(t, ok)
	assert.Equal(t, GradeSilver, next.Name)
	assert.Equal(t, 80, need)

	next, need, ok = NextGrade(420)
	require.True(t, ok)
	assert.Equal(t, GradePlatinum, next.Name)
	assert.Equal(t, 480, need)

	_, _, ok = NextGrade(1500)
	assert.False(t, ok)
}

func TestRolling7dMinutes_Window(t *testing.T) {
	startOfToday := StartOfDay(testNow)
	windowStart := startOfToday.AddDate(0, 0, -6)

	entries := []FlightLogEntry{
		entryAt("today", 30, testNow.Add(-time.Hour)),
		entryAt("edge", 20, windowStart),
		entryAt("before-edge", 40, windowStart.Add(-time.Second)),
		entryAt("future", 50, testNow.Add(time.Hour)),
	}
	assert.Equal(t, 50, Rolling7dMinutes(entries, testNow))
}

func TestRolling7dMinutes_FallsBackToCreatedAt(t *testing.T) {
	e := entryAt("no-end", 25, time.Time{})
	e.CreatedAt = testNow.Add(-48 * time.Hour)
	assert.Equal(t, 25, Rolling7dMinutes([]FlightLogEntry{e}, testNow))
}

func TestWeekToken(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), "2025-W1"},
		{time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC), "2025-W1"},
		{time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), "2025-W2"},
		{testNow, "2025-W25"},
		{time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), "2025-W53"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeekToken(tc.at), "at=%s", tc.at)
	}
}

func TestRecordLanding_UsesGradeBeforeEntry(t *testing.T) {
	s := NewAppState()
	// 180 minutes already in the window: Silver.
	s.LogEntries = []FlightLogEntry{entryAt("old", 180, testNow.Add(-24*time.Hour))}

	entry := entryAt("new", 50, testNow)
	miles := s.RecordLanding(&entry, testNow)

	assert.Equal(t, 567, miles)
	assert.Equal(t, 567, s.MileBalance)
	require.Len(t, s.LogEntries, 2)
	assert.Equal(t, "new", s.LogEntries[0].ID)
	assert.Equal(t, 567, s.LogEntries[0].MilesEarned)
}

func TestRecordLanding_Aborted(t *testing.T) {
	s := NewAppState()
	entry := entryAt("ab", 50, testNow)
	entry.Status = StatusAborted
	assert.Equal(t, 263, s.RecordLanding(&entry, testNow))
}

func TestRecordLanding_RetainsNewest200(t *testing.T) {
	s := NewAppState()
	for i := 0; i < 201; i++ {
		_, err := s.StartFlight(testPlan(), fmt.Sprintf("f%03d", i), testNow)
		require.NoError(t, err)
		entry, err := s.FinalizeFlight(false, testNow.Add(time.Minute))
		require.NoError(t, err)
		s.RecordLanding(entry, testNow.Add(time.Minute))
	}

	require.Len(t, s.LogEntries, MaxLogEntries)
	assert.Equal(t, "f200", s.LogEntries[0].ID)
	assert.Equal(t, "f001", s.LogEntries[MaxLogEntries-1].ID)
	for _, e := range s.LogEntries {
		assert.NotEqual(t, "f000", e.ID)
	}
}

func TestPurchaseCabin(t *testing.T) {
	s := NewAppState()
	s.MileBalance = 1499

	err := s.PurchaseCabin(CabinPremium)
	assert.ErrorIs(t, err, ErrInsufficientMiles)
	assert.Equal(t, 1499, s.MileBalance)
	assert.False(t, s.OwnsCabin(CabinPremium))
	assert.Equal(t, CabinEconomy, s.SelectedCabinID)

	s.MileBalance = 1500
	require.NoError(t, s.PurchaseCabin(CabinPremium))
	assert.Equal(t, 0, s.MileBalance)
	assert.True(t, s.OwnsCabin(CabinPremium))
	assert.Equal(t, CabinPremium, s.SelectedCabinID)
}

func TestPurchaseCabin_Rejections(t *testing.T) {
	s := NewAppState()
	s.MileBalance = 100000

	assert.ErrorIs(t, s.PurchaseCabin("cargo"), ErrUnknownCabin)
	assert.ErrorIs(t, s.PurchaseCabin(CabinEconomy), ErrCabinAlreadyOwned)
	assert.Equal(t, 100000, s.MileBalance)
	assert.Len(t, s.OwnedCabinIDs, 1)
}

func TestSelectCabin(t *testing.T) {
	s := NewAppState()
	assert.ErrorIs(t, s.SelectCabin(CabinFirst), ErrCabinNotOwned)
	assert.Equal(t, CabinEconomy, s.SelectedCabinID)

	s.OwnedCabinIDs = append(s.OwnedCabinIDs, CabinFirst)
	require.NoError(t, s.SelectCabin(CabinFirst))
	assert.Equal(t, CabinFirst, s.SelectedCabinID)
}

func TestSetWeeklyGoal_Clamps(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, 60, s.SetWeeklyGoal(10))
	assert.Equal(t, 3000, s.SetWeeklyGoal(9999))
	assert.Equal(t, 450, s.SetWeeklyGoal(450))
	assert.Equal(t, 450, s.WeeklyGoalMinutes)
}

func TestClaimWeeklyBonus_OncePerWeek(t *testing.T) {
	s := NewAppState()
	s.SetWeeklyGoal(120)
	s.LogEntries = []FlightLogEntry{entryAt("a", 150, testNow.Add(-time.Hour))}

	bonus, err := s.ClaimWeeklyBonus(testNow)
	require.NoError(t, err)
	assert.Equal(t, 240, bonus)
	assert.Equal(t, 240, s.MileBalance)
	assert.Equal(t, "2025-W25", s.WeeklyBonusClaimedToken)

	// More minutes in the same week do not unlock a second claim.
	s.LogEntries = append(s.LogEntries, entryAt("b", 300, testNow.Add(30*time.Minute)))
	_, err = s.ClaimWeeklyBonus(testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrBonusAlreadyClaimed)
	assert.Equal(t, 240, s.MileBalance)
	assert.False(t, s.BonusClaimable(testNow.Add(time.Hour)))

	nextWeek := testNow.AddDate(0, 0, 7)
	s.LogEntries = append(s.LogEntries, entryAt("c", 200, nextWeek.Add(-time.Hour)))
	assert.True(t, s.BonusClaimable(nextWeek))
	_, err = s.ClaimWeeklyBonus(nextWeek)
	require.NoError(t, err)
	assert.Equal(t, 480, s.MileBalance)
}

func TestClaimWeeklyBonus_GoalNotMet(t *testing.T) {
	s := NewAppState()
	s.LogEntries = []FlightLogEntry{entryAt("a", 299, testNow.Add(-time.Hour))}

	_, err := s.ClaimWeeklyBonus(testNow)
	assert.ErrorIs(t, err, ErrGoalNotMet)
	assert.Equal(t, 0, s.MileBalance)
	assert.Empty(t, s.WeeklyBonusClaimedToken)
}

func TestDeleteLogEntry_KeepsMiles(t *testing.T) {
	s := NewAppState()
	entry := entryAt("x", 50, testNow)
	s.RecordLanding(&entry, testNow)
	require.Equal(t, 525, s.MileBalance)

	require.NoError(t, s.DeleteLogEntry("x"))
	assert.Empty(t, s.LogEntries)
	assert.Equal(t, 525, s.MileBalance)

	assert.ErrorIs(t, s.DeleteLogEntry("x"), ErrLogEntryNotFound)
}

func TestProjectMiles(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, 525, s.ProjectMiles(testPlan(), testNow))

	plan := testPlan()
	plan.CabinID = CabinFirst // not owned: selected cabin is used
	assert.Equal(t, 525, s.ProjectMiles(plan, testNow))
}

func TestProjectMiles_MatchesFullLengthLanding(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FlightPlan)
		want   int
	}{
		{"as planned", func(*FlightPlan) {}, 525},
		{"unknown aircraft", func(p *FlightPlan) { p.AircraftID = "bogus" }, 525},
		{"over the maximum", func(p *FlightPlan) { p.PlannedMinutes = 1000 }, 5040},
		{"unowned cabin", func(p *FlightPlan) { p.CabinID = CabinFirst }, 525},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewAppState()
			plan := testPlan()
			tc.mutate(&plan)

			projected := s.ProjectMiles(plan, testNow)

			f, err := s.StartFlight(plan, "f1", testNow)
			require.NoError(t, err)
			end := testNow.Add(time.Duration(f.PlannedDurationMs) * time.Millisecond)
			entry, err := s.FinalizeFlight(false, end)
			require.NoError(t, err)
			actual := s.RecordLanding(entry, end)

			assert.Equal(t, tc.want, projected)
			assert.Equal(t, actual, projected)
		})
	}
}
