package feasibility

import "fmt"

// DetectOverlaps flags any two consecutive flights on the same aircraft
// whose [departure, arrival) intervals intersect. The conflict lands on the
// later flight and references the earlier one. Remediation is left to the
// enrichment pass.
func DetectOverlaps(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	var conflicts []Conflict
	for reg, group := range groupByAircraft(flights) {
		for i := 1; i < len(group); i++ {
			prev, next := group[i-1], group[i]
			if next.Departure.Before(prev.Arrival) {
				conflicts = append(conflicts, Conflict{
					FlightID:   next.ID,
					Kind:       KindOverlap,
					Severity:   SeverityCritical,
					Message:    fmt.Sprintf("flight %s overlaps flight %s on aircraft %s", next.ID, prev.ID, reg),
					RelatedIDs: []string{prev.ID},
				})
			}
		}
	}
	return conflicts
}
