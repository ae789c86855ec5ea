package domain

import "errors"

// Rejections. Operations returning one of these leave the state untouched.
var (
	ErrFlightInProgress    = errors.New("a flight is already in progress")
	ErrNoLiveFlight        = errors.New("no flight in progress")
	ErrEmptyTitle          = errors.New("flight title is required")
	ErrDurationTooShort    = errors.New("planned duration is below the minimum")
	ErrAlreadyPaused       = errors.New("flight is already paused")
	ErrAlreadyRunning      = errors.New("flight is already running")
	ErrUnknownCabin        = errors.New("unknown cabin class")
	ErrCabinAlreadyOwned   = errors.New("cabin class already owned")
	ErrCabinNotOwned       = errors.New("cabin class not owned")
	ErrInsufficientMiles   = errors.New("not enough miles")
	ErrGoalNotMet          = errors.New("weekly goal not met")
	ErrBonusAlreadyClaimed = errors.New("weekly bonus already claimed this week")
	ErrLogEntryNotFound    = errors.New("log entry not found")
)

// IsRejection reports whether err is one of the domain rejections above,
// as opposed to an infrastructure failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrFlightInProgress, ErrNoLiveFlight, ErrEmptyTitle, ErrDurationTooShort,
	ErrAlreadyPaused, ErrAlreadyRunning, ErrUnknownCabin, ErrCabinAlreadyOwned,
	ErrCabinNotOwned, ErrInsufficientMiles, ErrGoalNotMet, ErrBonusAlreadyClaimed,
	ErrLogEntryNotFound,
}
