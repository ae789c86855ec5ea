package domain

type MissionType string

const (
	MissionStudy MissionType = "STUDY"
	MissionWork  MissionType = "WORK"
)

// ValidMissionTypes is the canonical set of accepted mission type strings.
var ValidMissionTypes = map[MissionType]bool{
	MissionStudy: true,
	MissionWork:  true,
}

// FlightStatus covers both the derived display phases of a live flight and
// the terminal statuses recorded at finalization.
type FlightStatus string

const (
	StatusTaxi    FlightStatus = "TAXI"
	StatusClimb   FlightStatus = "CLIMB"
	StatusCruise  FlightStatus = "CRUISE"
	StatusDescent FlightStatus = "DESCENT"
	StatusLanded  FlightStatus = "LANDED"
	StatusAborted FlightStatus = "ABORTED"
)

// IsTerminal reports whether the status is LANDED or ABORTED.
func (s FlightStatus) IsTerminal() bool {
	return s == StatusLanded || s == StatusAborted
}

type AircraftID string

const (
	AircraftC172 AircraftID = "c172"
	AircraftA220 AircraftID = "a220"
	AircraftB737 AircraftID = "b737"
	AircraftA350 AircraftID = "a350"
	AircraftB747 AircraftID = "b747"
)

type CabinID string

const (
	CabinEconomy  CabinID = "economy"
	CabinPremium  CabinID = "premium"
	CabinBusiness CabinID = "business"
	CabinFirst    CabinID = "first"
)

type GradeName string

const (
	GradeMember   GradeName = "Member"
	GradeSilver   GradeName = "Silver"
	GradeGold     GradeName = "Gold"
	GradePlatinum GradeName = "Platinum"
	GradeBlack    GradeName = "Black"
)
