package feasibility

import "fmt"

// dutyWarningRatio is the fraction of the duty limit at which a warning is
// raised before the hard ceiling is hit.
const dutyWarningRatio = 0.9

// DetectDutySpans is the schedule-level FTL proxy: per pilot and calendar
// day, the elapsed span from first departure to last arrival must stay
// within rules.MaxCrewDutyMinutes. The conflict attaches to the last flight
// of the day and references the earlier ones.
func DetectDutySpans(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	if rules.MaxCrewDutyMinutes <= 0 {
		return nil
	}
	warnAt := int(float64(rules.MaxCrewDutyMinutes) * dutyWarningRatio)

	var conflicts []Conflict
	for pilot, group := range groupByPilot(flights) {
		for _, day := range splitByDay(group) {
			last := day[len(day)-1]
			span := GapMinutes(day[0].Departure, last.Arrival)
			if span <= warnAt {
				continue
			}

			severity := SeverityWarning
			if span > rules.MaxCrewDutyMinutes {
				severity = SeverityCritical
			}
			conflicts = append(conflicts, Conflict{
				FlightID:   last.ID,
				Kind:       KindFTL,
				Severity:   severity,
				Message:    fmt.Sprintf("pilot %s duty span of %d min exceeds %d min limit threshold", pilot, span, rules.MaxCrewDutyMinutes),
				RelatedIDs: flightIDs(day[:len(day)-1]),
			})
		}
	}
	return conflicts
}

// splitByDay partitions an already departure-sorted group into per-calendar-
// day runs, preserving order.
func splitByDay(sorted []Flight) [][]Flight {
	var days [][]Flight
	byDay := make(map[string]int)
	for _, f := range sorted {
		key := DayKey(f.Departure)
		if idx, ok := byDay[key]; ok {
			days[idx] = append(days[idx], f)
			continue
		}
		byDay[key] = len(days)
		days = append(days, []Flight{f})
	}
	return days
}
