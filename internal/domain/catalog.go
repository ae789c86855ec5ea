package domain

type Aircraft struct {
	ID             AircraftID `json:"id"`
	DisplayName    string     `json:"displayName"`
	BaseMultiplier float64    `json:"baseMultiplier"`
}

type Cabin struct {
	ID              CabinID `json:"id"`
	DisplayName     string  `json:"displayName"`
	YieldMultiplier float64 `json:"yieldMultiplier"`
	UnlockCost      int     `json:"unlockCost"`
}

const (
	DefaultAircraftID = AircraftB737
	BaselineCabinID   = CabinEconomy
)

var aircraftCatalog = []Aircraft{
	{ID: AircraftC172, DisplayName: "Cessna 172", BaseMultiplier: 1.00},
	{ID: AircraftA220, DisplayName: "Airbus A220", BaseMultiplier: 1.02},
	{ID: AircraftB737, DisplayName: "Boeing 737", BaseMultiplier: 1.05},
	{ID: AircraftA350, DisplayName: "Airbus A350", BaseMultiplier: 1.10},
	{ID: AircraftB747, DisplayName: "Boeing 747", BaseMultiplier: 1.15},
}

var cabinCatalog = []Cabin{
	{ID: CabinEconomy, DisplayName: "Economy", YieldMultiplier: 1.00, UnlockCost: 0},
	{ID: CabinPremium, DisplayName: "Premium Economy", YieldMultiplier: 1.10, UnlockCost: 1500},
	{ID: CabinBusiness, DisplayName: "Business", YieldMultiplier: 1.25, UnlockCost: 4000},
	{ID: CabinFirst, DisplayName: "First", YieldMultiplier: 1.50, UnlockCost: 9000},
}

// AircraftCatalog returns the fleet in display order.
func AircraftCatalog() []Aircraft {
	out := make([]Aircraft, len(aircraftCatalog))
	copy(out, aircraftCatalog)
	return out
}

// CabinCatalog returns the cabin classes in ascending cost order.
func CabinCatalog() []Cabin {
	out := make([]Cabin, len(cabinCatalog))
	copy(out, cabinCatalog)
	return out
}

func LookupAircraft(id AircraftID) (Aircraft, bool) {
	for _, a := range aircraftCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Aircraft{}, false
}

func LookupCabin(id CabinID) (Cabin, bool) {
	for _, c := range cabinCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return Cabin{}, false
}
