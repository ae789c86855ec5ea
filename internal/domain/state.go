package domain

const (
	StateVersion = 1

	MaxLogEntries = 200

	DefaultWeeklyGoalMinutes = 300
	MinWeeklyGoalMinutes     = 60
	MaxWeeklyGoalMinutes     = 3000

	DefaultPlannedMinutes = 50
)

// AppState is the whole persisted application state: the rewards ledger,
// the flight log, the live flight slot and the UI scratch fields.
//
// WeeklyBonusClaimedToken is persisted separately from the main blob.
type AppState struct {
	Version                 int              `json:"version"`
	MileBalance             int              `json:"mileBalance"`
	OwnedCabinIDs           []CabinID        `json:"ownedCabinIds"`
	SelectedCabinID         CabinID          `json:"selectedCabinId"`
	LogEntries              []FlightLogEntry `json:"logEntries"`
	DraftPlan               FlightPlan       `json:"draftPlan"`
	Notes                   string           `json:"notes"`
	LiveFlight              *Flight          `json:"liveSession"`
	WeeklyGoalMinutes       int              `json:"weeklyGoalMinutes"`
	WeeklyBonusClaimedToken string           `json:"-"`
}

// NewAppState returns the state of a fresh install.
func NewAppState() *AppState {
	return &AppState{
		Version:           StateVersion,
		MileBalance:       0,
		OwnedCabinIDs:     []CabinID{BaselineCabinID},
		SelectedCabinID:   BaselineCabinID,
		LogEntries:        []FlightLogEntry{},
		DraftPlan:         DefaultFlightPlan(),
		WeeklyGoalMinutes: DefaultWeeklyGoalMinutes,
	}
}

func DefaultFlightPlan() FlightPlan {
	return FlightPlan{
		MissionType:    MissionStudy,
		AircraftID:     DefaultAircraftID,
		CabinID:        BaselineCabinID,
		PlannedMinutes: DefaultPlannedMinutes,
	}
}

// OwnsCabin reports whether id is in the owned set.
func (s *AppState) OwnsCabin(id CabinID) bool {
	for _, owned := range s.OwnedCabinIDs {
		if owned == id {
			return true
		}
	}
	return false
}

// Normalize repairs a loaded state so the invariants hold: the baseline
// cabin is owned, only known cabins are owned, the selection is owned, the
// goal is within bounds and the log is capped.
func (s *AppState) Normalize() {
	s.Version = StateVersion
	if s.MileBalance < 0 {
		s.MileBalance = 0
	}

	owned := []CabinID{BaselineCabinID}
	seen := map[CabinID]bool{BaselineCabinID: true}
	for _, id := range s.OwnedCabinIDs {
		if _, ok := LookupCabin(id); !ok || seen[id] {
			continue
		}
		seen[id] = true
		owned = append(owned, id)
	}
	s.OwnedCabinIDs = owned
	if !seen[s.SelectedCabinID] {
		s.SelectedCabinID = BaselineCabinID
	}

	if s.WeeklyGoalMinutes <= 0 {
		s.WeeklyGoalMinutes = DefaultWeeklyGoalMinutes
	}
	s.WeeklyGoalMinutes = clampGoal(s.WeeklyGoalMinutes)

	if s.LogEntries == nil {
		s.LogEntries = []FlightLogEntry{}
	}
	if len(s.LogEntries) > MaxLogEntries {
		s.LogEntries = s.LogEntries[:MaxLogEntries]
	}

	if s.DraftPlan.MissionType == "" {
		s.DraftPlan.MissionType = MissionStudy
	}
	if s.DraftPlan.AircraftID == "" {
		s.DraftPlan.AircraftID = DefaultAircraftID
	}
	if s.DraftPlan.CabinID == "" {
		s.DraftPlan.CabinID = s.SelectedCabinID
	}
	if s.DraftPlan.PlannedMinutes <= 0 {
		s.DraftPlan.PlannedMinutes = DefaultPlannedMinutes
	}
}

// ResetAll returns every field to its fresh-install value, including the
// weekly bonus token and the live flight.
func (s *AppState) ResetAll() {
	*s = *NewAppState()
}

// SaveDraft stores plan as the pre-fill for the next flight.
func (s *AppState) SaveDraft(plan FlightPlan) {
	s.DraftPlan = plan
}

func (s *AppState) SetNotes(text string) {
	s.Notes = text
}

func clampGoal(minutes int) int {
	if minutes < MinWeeklyGoalMinutes {
		return MinWeeklyGoalMinutes
	}
	if minutes > MaxWeeklyGoalMinutes {
		return MaxWeeklyGoalMinutes
	}
	return minutes
}
