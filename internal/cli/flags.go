package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/spf13/pflag"
)

// missionValue is a --mission flag restricted to known mission types.
type missionValue struct {
	v *domain.MissionType
}

var _ pflag.Value = missionValue{}

func (m missionValue) String() string {
	if m.v == nil {
		return ""
	}
	return strings.ToLower(string(*m.v))
}

func (m missionValue) Set(s string) error {
	switch mt := domain.MissionType(strings.ToUpper(strings.TrimSpace(s))); mt {
	case domain.MissionStudy, domain.MissionWork:
		*m.v = mt
		return nil
	}
	return fmt.Errorf("unknown mission %q (want study or work)", s)
}

func (missionValue) Type() string { return "mission" }

// aircraftValue is an --aircraft flag restricted to the fleet.
type aircraftValue struct {
	v *domain.AircraftID
}

var _ pflag.Value = aircraftValue{}

func (a aircraftValue) String() string {
	if a.v == nil {
		return ""
	}
	return string(*a.v)
}

func (a aircraftValue) Set(s string) error {
	id := domain.AircraftID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := domain.LookupAircraft(id); !ok {
		var ids []string
		for _, known := range domain.AircraftCatalog() {
			ids = append(ids, string(known.ID))
		}
		return fmt.Errorf("unknown aircraft %q (want one of %s)", s, strings.Join(ids, ", "))
	}
	*a.v = id
	return nil
}

func (aircraftValue) Type() string { return "aircraft" }

// cabinValue is a --cabin flag restricted to the cabin catalog. Ownership
// is checked by the flight engine, not here.
type cabinValue struct {
	v *domain.CabinID
}

var _ pflag.Value = cabinValue{}

func (c cabinValue) String() string {
	if c.v == nil {
		return ""
	}
	return string(*c.v)
}

func (c cabinValue) Set(s string) error {
	id := domain.CabinID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := domain.LookupCabin(id); !ok {
		return fmt.Errorf("unknown cabin %q", s)
	}
	*c.v = id
	return nil
}

func (cabinValue) Type() string { return "cabin" }
