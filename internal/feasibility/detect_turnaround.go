package feasibility

import "fmt"

// DetectTurnarounds checks the ground time between consecutive flights on
// the same aircraft. A gap below turnaround+buffer is a warning; below the
// bare turnaround it is critical. Negative gaps are overlap territory and
// skipped here. Each conflict carries a delay suggestion that closes the
// gap exactly.
func DetectTurnarounds(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	required := rules.MinTurnaroundMinutes + rules.BufferMinutes

	var conflicts []Conflict
	for reg, group := range groupByAircraft(flights) {
		for i := 1; i < len(group); i++ {
			prev, next := group[i-1], group[i]
			gap := GapMinutes(prev.Arrival, next.Departure)
			if gap < 0 || gap >= required {
				continue
			}

			severity := SeverityWarning
			if gap < rules.MinTurnaroundMinutes {
				severity = SeverityCritical
			}
			delay := required - gap
			conflicts = append(conflicts, Conflict{
				FlightID:   next.ID,
				Kind:       KindTurnaround,
				Severity:   severity,
				Message:    fmt.Sprintf("only %d min turnaround on %s before flight %s (need %d)", gap, reg, next.ID, required),
				RelatedIDs: []string{prev.ID},
				Suggestions: []Suggestion{{
					Action:       ActionDelayFlight,
					Label:        fmt.Sprintf("Delay flight %s by %d min", next.ID, delay),
					DelayMinutes: delay,
				}},
			})
		}
	}
	return conflicts
}
