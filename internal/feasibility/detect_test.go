package feasibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func testRules() PlanningRules {
	return PlanningRules{
		MinTurnaroundMinutes: 20,
		BufferMinutes:        5,
		MaxDailyCycles:       8,
		MaxCrewDutyMinutes:   900,
	}
}

func TestDetectOverlaps(t *testing.T) {
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	conflicts := DetectOverlaps(flights, nil, testRules())

	require.Len(t, conflicts, 1)
	assert.Equal(t, "AF-2", conflicts[0].FlightID)
	assert.Equal(t, KindOverlap, conflicts[0].Kind)
	assert.Equal(t, SeverityCritical, conflicts[0].Severity)
	assert.Equal(t, []string{"AF-1"}, conflicts[0].RelatedIDs)
	assert.Empty(t, conflicts[0].Suggestions)
}

func TestDetectOverlaps_CancelledExcluded(t *testing.T) {
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightCancelled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	assert.Empty(t, DetectOverlaps(flights, nil, testRules()))
}

func TestDetectOverlaps_DifferentAircraft(t *testing.T) {
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OKAP", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	assert.Empty(t, DetectOverlaps(flights, nil, testRules()))
}

func TestDetectOverlaps_MissingTimestampsSkipped(t *testing.T) {
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	assert.Empty(t, DetectOverlaps(flights, nil, testRules()))
}

func TestDetectTurnarounds_ShortGapIsCritical(t *testing.T) {
	// 06:30-06:55 then 07:00-07:25: a 5 minute gap against a 20 minute
	// turnaround plus 5 minute buffer.
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(6, 55), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(7, 0), Arrival: at(7, 25), Status: FlightScheduled},
	}

	conflicts := DetectTurnarounds(flights, nil, testRules())

	require.Len(t, conflicts, 1)
	assert.Equal(t, "AF-2", conflicts[0].FlightID)
	assert.Equal(t, KindTurnaround, conflicts[0].Kind)
	assert.Equal(t, SeverityCritical, conflicts[0].Severity)
	require.Len(t, conflicts[0].Suggestions, 1)
	assert.Equal(t, ActionDelayFlight, conflicts[0].Suggestions[0].Action)
	assert.Equal(t, 20, conflicts[0].Suggestions[0].DelayMinutes)
}

func TestDetectTurnarounds_Boundaries(t *testing.T) {
	makeFlights := func(gapMinutes int) []Flight {
		return []Flight{
			{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
			{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(7, gapMinutes), Arrival: at(8, 0), Status: FlightScheduled},
		}
	}

	// Exactly turnaround+buffer is fine.
	assert.Empty(t, DetectTurnarounds(makeFlights(25), nil, testRules()))

	// One minute short raises a warning: above the bare turnaround but
	// inside the buffer.
	conflicts := DetectTurnarounds(makeFlights(24), nil, testRules())
	require.Len(t, conflicts, 1)
	assert.Equal(t, SeverityWarning, conflicts[0].Severity)
	assert.Equal(t, 1, conflicts[0].Suggestions[0].DelayMinutes)

	// Below the bare turnaround it is critical.
	conflicts = DetectTurnarounds(makeFlights(19), nil, testRules())
	require.Len(t, conflicts, 1)
	assert.Equal(t, SeverityCritical, conflicts[0].Severity)
}

func TestDetectTurnarounds_OverlapSkipped(t *testing.T) {
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	assert.Empty(t, DetectTurnarounds(flights, nil, testRules()))
}

func TestDetectUnavailable(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftMaintenance},
		{Registration: "F-OKAP", Status: AircraftAvailable},
	}
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OKAP", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-3", AircraftID: "F-OSBC", Departure: at(9, 0), Arrival: at(10, 0), Status: FlightCancelled},
	}

	conflicts := DetectUnavailable(flights, fleet, testRules())

	require.Len(t, conflicts, 1)
	assert.Equal(t, "AF-1", conflicts[0].FlightID)
	assert.Equal(t, KindUnavailable, conflicts[0].Kind)
	assert.Equal(t, SeverityCritical, conflicts[0].Severity)
}

func TestDetectDutySpans(t *testing.T) {
	// Four legs from 06:30 to 14:55: an 8h25 span.
	legs := []Flight{
		{ID: "AF-1", PilotID: "P-1", Departure: at(6, 30), Arrival: at(8, 0), Status: FlightScheduled},
		{ID: "AF-2", PilotID: "P-1", Departure: at(8, 45), Arrival: at(10, 15), Status: FlightScheduled},
		{ID: "AF-3", PilotID: "P-1", Departure: at(11, 0), Arrival: at(12, 30), Status: FlightScheduled},
		{ID: "AF-4", PilotID: "P-1", Departure: at(13, 15), Arrival: at(14, 55), Status: FlightScheduled},
	}

	// 15h limit: nothing to report.
	rules := testRules()
	rules.MaxCrewDutyMinutes = 900
	assert.Empty(t, DetectDutySpans(legs, nil, rules))

	// 8h limit: 505 minutes is over the ceiling.
	rules.MaxCrewDutyMinutes = 480
	conflicts := DetectDutySpans(legs, nil, rules)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "AF-4", conflicts[0].FlightID)
	assert.Equal(t, KindFTL, conflicts[0].Kind)
	assert.Equal(t, SeverityCritical, conflicts[0].Severity)
	assert.Equal(t, []string{"AF-1", "AF-2", "AF-3"}, conflicts[0].RelatedIDs)
}

func TestDetectDutySpans_WarningBand(t *testing.T) {
	// 460 minute span against a 480 minute limit: above 90%, under 100%.
	legs := []Flight{
		{ID: "AF-1", PilotID: "P-1", Departure: at(6, 0), Arrival: at(8, 0), Status: FlightScheduled},
		{ID: "AF-2", PilotID: "P-1", Departure: at(12, 0), Arrival: at(13, 40), Status: FlightScheduled},
	}
	rules := testRules()
	rules.MaxCrewDutyMinutes = 480

	conflicts := DetectDutySpans(legs, nil, rules)

	require.Len(t, conflicts, 1)
	assert.Equal(t, SeverityWarning, conflicts[0].Severity)
}

func TestDetectDutySpans_SeparateDays(t *testing.T) {
	legs := []Flight{
		{ID: "AF-1", PilotID: "P-1", Departure: at(6, 0), Arrival: at(14, 0), Status: FlightScheduled},
		{ID: "AF-2", PilotID: "P-1", Departure: at(6, 0).AddDate(0, 0, 1), Arrival: at(14, 0).AddDate(0, 0, 1), Status: FlightScheduled},
	}
	rules := testRules()
	rules.MaxCrewDutyMinutes = 600

	// Each day is an 8h span on its own; no conflict.
	assert.Empty(t, DetectDutySpans(legs, nil, rules))
}

func TestDetectOverloads(t *testing.T) {
	rules := testRules()
	rules.MaxDailyCycles = 2

	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(8, 0), Arrival: at(9, 0), Status: FlightScheduled},
		{ID: "AF-3", AircraftID: "F-OSBC", Departure: at(10, 0), Arrival: at(11, 0), Status: FlightScheduled},
	}

	conflicts := DetectOverloads(flights, nil, rules)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "AF-3", conflicts[0].FlightID)
	assert.Equal(t, KindOverload, conflicts[0].Kind)
	assert.Equal(t, SeverityWarning, conflicts[0].Severity)
	assert.Equal(t, []string{"AF-1", "AF-2"}, conflicts[0].RelatedIDs)
}

func TestDetectOverloads_AtLimit(t *testing.T) {
	rules := testRules()
	rules.MaxDailyCycles = 2

	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(8, 0), Arrival: at(9, 0), Status: FlightScheduled},
	}

	assert.Empty(t, DetectOverloads(flights, nil, rules))
}
