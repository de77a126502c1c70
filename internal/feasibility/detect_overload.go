package feasibility

import "fmt"

// DetectOverloads warns when an aircraft flies more cycles in one calendar
// day than rules.MaxDailyCycles allows. One warning per aircraft-day,
// attached to the last flight and referencing the earlier ones.
func DetectOverloads(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	if rules.MaxDailyCycles <= 0 {
		return nil
	}

	var conflicts []Conflict
	for reg, group := range groupByAircraft(flights) {
		for _, day := range splitByDay(group) {
			if len(day) <= rules.MaxDailyCycles {
				continue
			}
			last := day[len(day)-1]
			conflicts = append(conflicts, Conflict{
				FlightID:   last.ID,
				Kind:       KindOverload,
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("aircraft %s has %d cycles on %s, above the %d cycle limit", reg, len(day), DayKey(last.Departure), rules.MaxDailyCycles),
				RelatedIDs: flightIDs(day[:len(day)-1]),
			})
		}
	}
	return conflicts
}
