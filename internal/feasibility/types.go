package feasibility

import "time"

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightBoarding  FlightStatus = "boarding"
	FlightInFlight  FlightStatus = "in_flight"
	FlightLanded    FlightStatus = "landed"
	FlightCancelled FlightStatus = "cancelled"
)

type FlightCategory string

const (
	CategoryRegular FlightCategory = "regular"
	CategoryPrivate FlightCategory = "private"
)

type AircraftStatus string

const (
	AircraftAvailable   AircraftStatus = "available"
	AircraftInFlight    AircraftStatus = "in_flight"
	AircraftMaintenance AircraftStatus = "maintenance"
)

// Flight is an immutable snapshot of one scheduled leg. Departure and
// Arrival may be zero when the upstream document is incomplete; detectors
// skip such records rather than guessing.
type Flight struct {
	ID          string         `json:"id"`
	AircraftID  string         `json:"aircraft_id"`
	PilotID     string         `json:"pilot_id"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Departure   time.Time      `json:"departure"`
	Arrival     time.Time      `json:"arrival"`
	Status      FlightStatus   `json:"status"`
	Category    FlightCategory `json:"category"`
	Passengers  int            `json:"passengers"`
}

type Aircraft struct {
	Registration string         `json:"registration"`
	Type         string         `json:"type"`
	Status       AircraftStatus `json:"status"`
}

// PlanningRules is the mutable configuration document. It is threaded as an
// explicit parameter into every detector so callers can evaluate several
// rule-sets side by side.
type PlanningRules struct {
	MinTurnaroundMinutes int `json:"min_turnaround_minutes"`
	BufferMinutes        int `json:"buffer_minutes"`
	MaxDailyCycles       int `json:"max_daily_cycles"`
	MaxCrewDutyMinutes   int `json:"max_crew_duty_minutes"`
}

// DefaultRules returns the baseline configuration used when the rules
// document has no override for a field.
func DefaultRules() PlanningRules {
	return PlanningRules{
		MinTurnaroundMinutes: 30,
		BufferMinutes:        10,
		MaxDailyCycles:       8,
		MaxCrewDutyMinutes:   780,
	}
}

type ConflictKind string

const (
	KindOverlap     ConflictKind = "overlap"
	KindTurnaround  ConflictKind = "turnaround"
	KindUnavailable ConflictKind = "unavailable"
	KindFTL         ConflictKind = "ftl"
	KindOverload    ConflictKind = "overload"
)

// Severity is a ranked scale, not a string: comparisons go through the rank
// so adding a level never silently misorders existing ones.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"critical"`:
		*s = SeverityCritical
	default:
		*s = SeverityWarning
	}
	return nil
}

type SuggestionAction string

const (
	ActionSwapAircraft SuggestionAction = "swap_aircraft"
	ActionDelayFlight  SuggestionAction = "delay_flight"
	ActionCancelFlight SuggestionAction = "cancel_flight"
)

// Suggestion describes a remediation the caller may apply; the engine never
// writes it back.
type Suggestion struct {
	Action         SuggestionAction `json:"action"`
	Label          string           `json:"label"`
	TargetAircraft string           `json:"target_aircraft,omitempty"`
	DelayMinutes   int              `json:"delay_minutes,omitempty"`
}

type Conflict struct {
	FlightID    string       `json:"flight_id"`
	Kind        ConflictKind `json:"kind"`
	Severity    Severity     `json:"severity"`
	Message     string       `json:"message"`
	RelatedIDs  []string     `json:"related_ids,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// FtlLog is one entry of the historical duty/flight ledger. Date is the
// calendar-day label ("2026-08-31") the rolling windows are keyed on.
type FtlLog struct {
	CrewID        string    `json:"crew_id"`
	Date          string    `json:"date"`
	DutyStart     time.Time `json:"duty_start"`
	DutyEnd       time.Time `json:"duty_end"`
	FlightMinutes int       `json:"flight_minutes"`
}

type Qualification struct {
	CrewID                 string    `json:"crew_id"`
	MedicalExpiry          time.Time `json:"medical_expiry"`
	LicenseExpiry          time.Time `json:"license_expiry"`
	LastSimCheck           time.Time `json:"last_sim_check"`
	InstrumentRatingExpiry time.Time `json:"instrument_rating_expiry"`
	TypeRatings            []string  `json:"type_ratings"`
}

type CrewMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
	Base   string `json:"base"`
}
