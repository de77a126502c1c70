package feasibility

import "fmt"

// maxSwapSuggestions caps how many alternative aircraft are attached per
// conflict.
const maxSwapSuggestions = 2

// EnrichSuggestions is the best-effort second pass over detector output: for
// unavailable and turnaround conflicts it searches the fleet for aircraft
// that could absorb the affected flight and prepends swap suggestions ahead
// of whatever the detector already attached. It may legitimately find
// nothing; conflicts pass through unchanged in that case.
func EnrichSuggestions(conflicts []Conflict, flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	byID := make(map[string]Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	byAircraft := groupByAircraft(flights)

	enriched := make([]Conflict, len(conflicts))
	copy(enriched, conflicts)

	for i, c := range enriched {
		if c.Kind != KindUnavailable && c.Kind != KindTurnaround {
			continue
		}
		flight, ok := byID[c.FlightID]
		if !ok || !checkable(flight) {
			continue
		}

		swaps := findSwapCandidates(flight, fleet, byAircraft, rules)
		if len(swaps) == 0 {
			continue
		}
		enriched[i].Suggestions = append(swaps, c.Suggestions...)
	}
	return enriched
}

// findSwapCandidates scans the fleet for aircraft whose existing schedule
// leaves at least MinTurnaroundMinutes clear on both sides of the flight's
// window. Maintenance aircraft and the currently assigned one are excluded.
func findSwapCandidates(flight Flight, fleet []Aircraft, byAircraft map[string][]Flight, rules PlanningRules) []Suggestion {
	var swaps []Suggestion
	for _, candidate := range fleet {
		if candidate.Status == AircraftMaintenance || candidate.Registration == flight.AircraftID {
			continue
		}
		if !windowClear(flight, byAircraft[candidate.Registration], rules.MinTurnaroundMinutes) {
			continue
		}
		swaps = append(swaps, Suggestion{
			Action:         ActionSwapAircraft,
			Label:          fmt.Sprintf("Swap flight %s to %s", flight.ID, candidate.Registration),
			TargetAircraft: candidate.Registration,
		})
		if len(swaps) == maxSwapSuggestions {
			break
		}
	}
	return swaps
}

func windowClear(flight Flight, existing []Flight, minTurnaround int) bool {
	for _, g := range existing {
		if g.ID == flight.ID {
			continue
		}
		endsBefore := GapMinutes(g.Arrival, flight.Departure) >= minTurnaround
		startsAfter := GapMinutes(flight.Arrival, g.Departure) >= minTurnaround
		if !endsBefore && !startsAfter {
			return false
		}
	}
	return true
}
