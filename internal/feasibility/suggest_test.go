package feasibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichSuggestions_SwapForUnavailable(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftMaintenance},
		{Registration: "F-OKAP", Status: AircraftAvailable},
		{Registration: "F-OHQL", Status: AircraftAvailable},
		{Registration: "F-OIQN", Status: AircraftAvailable},
	}
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
	}
	conflicts := DetectUnavailable(flights, fleet, testRules())
	require.Len(t, conflicts, 1)

	enriched := EnrichSuggestions(conflicts, flights, fleet, testRules())

	require.Len(t, enriched, 1)
	// Capped at two candidates even though three aircraft are free.
	require.Len(t, enriched[0].Suggestions, 2)
	assert.Equal(t, ActionSwapAircraft, enriched[0].Suggestions[0].Action)
	assert.Equal(t, "F-OKAP", enriched[0].Suggestions[0].TargetAircraft)
	assert.Equal(t, "F-OHQL", enriched[0].Suggestions[1].TargetAircraft)
}

func TestEnrichSuggestions_SwapPrependedBeforeDelay(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftAvailable},
		{Registration: "F-OKAP", Status: AircraftAvailable},
	}
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(6, 55), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(7, 0), Arrival: at(7, 25), Status: FlightScheduled},
	}
	conflicts := DetectTurnarounds(flights, fleet, testRules())
	require.Len(t, conflicts, 1)

	enriched := EnrichSuggestions(conflicts, flights, fleet, testRules())

	require.Len(t, enriched, 1)
	require.Len(t, enriched[0].Suggestions, 2)
	assert.Equal(t, ActionSwapAircraft, enriched[0].Suggestions[0].Action)
	assert.Equal(t, ActionDelayFlight, enriched[0].Suggestions[1].Action)
}

func TestEnrichSuggestions_BusyCandidateExcluded(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftMaintenance},
		{Registration: "F-OKAP", Status: AircraftAvailable},
	}
	// F-OKAP lands ten minutes before the affected window opens: below the
	// 20 minute clearance on that side.
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(8, 0), Arrival: at(9, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OKAP", Departure: at(6, 0), Arrival: at(7, 50), Status: FlightScheduled},
	}
	conflicts := DetectUnavailable(flights, fleet, testRules())
	require.Len(t, conflicts, 1)

	enriched := EnrichSuggestions(conflicts, flights, fleet, testRules())

	assert.Empty(t, enriched[0].Suggestions)
}

func TestEnrichSuggestions_ClearCandidateAccepted(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftMaintenance},
		{Registration: "F-OKAP", Status: AircraftAvailable},
	}
	// F-OKAP lands exactly 20 minutes before the window: at the clearance.
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(8, 0), Arrival: at(9, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OKAP", Departure: at(6, 0), Arrival: at(7, 40), Status: FlightScheduled},
	}
	conflicts := DetectUnavailable(flights, fleet, testRules())

	enriched := EnrichSuggestions(conflicts, flights, fleet, testRules())

	require.Len(t, enriched[0].Suggestions, 1)
	assert.Equal(t, "F-OKAP", enriched[0].Suggestions[0].TargetAircraft)
}

func TestEnrichSuggestions_OtherKindsUntouched(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftAvailable},
		{Registration: "F-OKAP", Status: AircraftAvailable},
	}
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(7, 0), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}
	conflicts := DetectOverlaps(flights, fleet, testRules())

	enriched := EnrichSuggestions(conflicts, flights, fleet, testRules())

	require.Len(t, enriched, 1)
	assert.Empty(t, enriched[0].Suggestions)
}
