package feasibility

import "fmt"

// DetectUnavailable flags every non-cancelled flight assigned to an aircraft
// that is down for maintenance. One conflict per flight, independent of any
// spacing checks on the same aircraft.
func DetectUnavailable(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	byReg := fleetByRegistration(fleet)

	var conflicts []Conflict
	for _, f := range flights {
		if f.Status == FlightCancelled || f.AircraftID == "" {
			continue
		}
		aircraft, ok := byReg[f.AircraftID]
		if !ok || aircraft.Status != AircraftMaintenance {
			continue
		}
		conflicts = append(conflicts, Conflict{
			FlightID: f.ID,
			Kind:     KindUnavailable,
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("aircraft %s is in maintenance and cannot operate flight %s", f.AircraftID, f.ID),
		})
	}
	return conflicts
}
