package feasibility

import "sort"

// Detector is a pure function over one schedule snapshot. Detectors never
// mutate their inputs and are composed by AnalyzeAllConflicts; adding a
// constraint means adding a Detector, not touching the existing ones.
type Detector func(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict

// checkable reports whether a flight participates in conflict checks at all.
// Cancelled legs are out by definition; records without both instants are
// skipped defensively rather than raised as errors.
func checkable(f Flight) bool {
	return f.Status != FlightCancelled && !f.Departure.IsZero() && !f.Arrival.IsZero()
}

// groupByAircraft buckets checkable flights per assigned aircraft, each
// bucket sorted by departure time. Flights without an assignment are
// dropped: there is no resource to conflict over.
func groupByAircraft(flights []Flight) map[string][]Flight {
	groups := make(map[string][]Flight)
	for _, f := range flights {
		if !checkable(f) || f.AircraftID == "" {
			continue
		}
		groups[f.AircraftID] = append(groups[f.AircraftID], f)
	}
	for _, group := range groups {
		sortByDeparture(group)
	}
	return groups
}

func groupByPilot(flights []Flight) map[string][]Flight {
	groups := make(map[string][]Flight)
	for _, f := range flights {
		if !checkable(f) || f.PilotID == "" {
			continue
		}
		groups[f.PilotID] = append(groups[f.PilotID], f)
	}
	for _, group := range groups {
		sortByDeparture(group)
	}
	return groups
}

// Stable so equal departure times keep snapshot order and results stay
// deterministic across runs.
func sortByDeparture(flights []Flight) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Departure.Before(flights[j].Departure)
	})
}

func fleetByRegistration(fleet []Aircraft) map[string]Aircraft {
	byReg := make(map[string]Aircraft, len(fleet))
	for _, a := range fleet {
		byReg[a.Registration] = a
	}
	return byReg
}

func flightIDs(flights []Flight) []string {
	ids := make([]string, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return ids
}
