package feasibility

import (
	"fmt"
	"time"
)

type ExpiryStatus string

const (
	StatusValid    ExpiryStatus = "valid"
	StatusExpiring ExpiryStatus = "expiring"
	StatusExpired  ExpiryStatus = "expired"
)

// Document expiry thresholds, in calendar days.
const (
	expiryWarningDays = 30

	simCheckValidDays  = 150
	simCheckExpiryDays = 180
)

// GetExpiryStatus classifies a document expiry date against a reference
// date at calendar-day granularity. A document expiring on the reference
// day itself is still usable, so it reports expiring rather than expired.
func GetExpiryStatus(expiry, reference time.Time) ExpiryStatus {
	days := daysBetween(reference, expiry)
	switch {
	case days < 0:
		return StatusExpired
	case days <= expiryWarningDays:
		return StatusExpiring
	default:
		return StatusValid
	}
}

// GetSimCheckStatus classifies the age of the last simulator check: valid
// under 150 days old, expiring between 150 and 180, expired beyond that.
func GetSimCheckStatus(lastCheck, reference time.Time) ExpiryStatus {
	age := daysBetween(lastCheck, reference)
	switch {
	case age < simCheckValidDays:
		return StatusValid
	case age <= simCheckExpiryDays:
		return StatusExpiring
	default:
		return StatusExpired
	}
}

// CrewValidation is the dispatch verdict for one crew-flight pairing.
// Blockers stay a list so the UI can enumerate every cause; warnings never
// block assignment but must be surfaced.
type CrewValidation struct {
	Valid    bool     `json:"valid"`
	Blockers []string `json:"blockers"`
	Warnings []string `json:"warnings"`
}

// Estimated duty window around the scheduled block times, used when
// projecting FTL for a candidate assignment.
const (
	preFlightDuty  = time.Hour
	postFlightDuty = 30 * time.Minute
)

// ValidateCrewForFlight combines FTL exposure with qualification checks.
// Absence of data is fail-closed: a missing qualification record is a
// blocker, never an implicit pass. aircraft may be nil when the fleet record
// is missing; the type-rating check is then a blocker too, for the same
// reason.
func ValidateCrewForFlight(member CrewMember, qual *Qualification, logs []FtlLog, flight Flight, aircraft *Aircraft) CrewValidation {
	v := CrewValidation{Blockers: []string{}, Warnings: []string{}}

	if !member.Active {
		v.Blockers = append(v.Blockers, fmt.Sprintf("crew member %s is inactive", member.ID))
	}

	if qual == nil {
		v.Blockers = append(v.Blockers, fmt.Sprintf("no qualification record on file for %s", member.ID))
	} else {
		checkDocument(&v, "medical certificate", GetExpiryStatus(qual.MedicalExpiry, flight.Departure))
		checkDocument(&v, "license", GetExpiryStatus(qual.LicenseExpiry, flight.Departure))
		checkDocument(&v, "simulator check", GetSimCheckStatus(qual.LastSimCheck, flight.Departure))

		switch GetExpiryStatus(qual.InstrumentRatingExpiry, flight.Departure) {
		case StatusExpired:
			v.Warnings = append(v.Warnings, "instrument rating expired")
		case StatusExpiring:
			v.Warnings = append(v.Warnings, "instrument rating expiring soon")
		}

		checkTypeRating(&v, qual, flight, aircraft)
	}

	if flight.Departure.IsZero() || flight.Arrival.IsZero() {
		v.Blockers = append(v.Blockers, fmt.Sprintf("flight %s has no scheduled times; FTL cannot be assessed", flight.ID))
	} else {
		dutyStart := flight.Departure.Add(-preFlightDuty)
		dutyEnd := flight.Arrival.Add(postFlightDuty)
		flightMinutes := int(flight.Arrival.Sub(flight.Departure) / time.Minute)

		ftl := CalculateFTL(logs, DayKey(flight.Departure), flightMinutes, &dutyStart, &dutyEnd)
		if !ftl.Compliant {
			v.Blockers = append(v.Blockers, "FTL non-compliant: "+ftl.Reason)
		} else if ftl.RiskLevel >= RiskWarning {
			v.Warnings = append(v.Warnings, fmt.Sprintf("FTL exposure at %s level", ftl.RiskLevel))
		}
	}

	v.Valid = len(v.Blockers) == 0
	return v
}

func checkDocument(v *CrewValidation, name string, status ExpiryStatus) {
	switch status {
	case StatusExpired:
		v.Blockers = append(v.Blockers, name+" expired")
	case StatusExpiring:
		v.Warnings = append(v.Warnings, name+" expiring soon")
	}
}

func checkTypeRating(v *CrewValidation, qual *Qualification, flight Flight, aircraft *Aircraft) {
	if flight.AircraftID == "" {
		return
	}
	if aircraft == nil {
		v.Blockers = append(v.Blockers, fmt.Sprintf("no fleet record for aircraft %s", flight.AircraftID))
		return
	}
	if aircraft.Type == "" {
		return
	}
	for _, rating := range qual.TypeRatings {
		if rating == aircraft.Type {
			return
		}
	}
	v.Blockers = append(v.Blockers, fmt.Sprintf("missing type rating for %s", aircraft.Type))
}
