package feasibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAllConflicts(t *testing.T) {
	fleet := []Aircraft{
		{Registration: "F-OSBC", Status: AircraftAvailable},
		{Registration: "F-OKAP", Status: AircraftMaintenance},
		{Registration: "F-OHQL", Status: AircraftAvailable},
	}
	flights := []Flight{
		// Tight turnaround pair on F-OSBC.
		{ID: "AF-1", AircraftID: "F-OSBC", PilotID: "P-1", Departure: at(6, 30), Arrival: at(6, 55), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", PilotID: "P-1", Departure: at(7, 0), Arrival: at(7, 25), Status: FlightScheduled},
		// Flight on a maintenance aircraft.
		{ID: "AF-3", AircraftID: "F-OKAP", PilotID: "P-2", Departure: at(9, 0), Arrival: at(10, 0), Status: FlightScheduled},
	}

	conflicts := AnalyzeAllConflicts(flights, fleet, testRules())

	kinds := make(map[ConflictKind]int)
	for _, c := range conflicts {
		kinds[c.Kind]++
	}
	assert.Equal(t, 1, kinds[KindTurnaround])
	assert.Equal(t, 1, kinds[KindUnavailable])
	assert.Equal(t, 0, kinds[KindOverlap])

	// Enrichment ran over the union: the unavailable conflict picked up
	// swap candidates from the rest of the fleet.
	for _, c := range conflicts {
		if c.Kind == KindUnavailable {
			require.NotEmpty(t, c.Suggestions)
			assert.Equal(t, ActionSwapAircraft, c.Suggestions[0].Action)
		}
	}
}

func TestBuildConflictIndex(t *testing.T) {
	conflicts := []Conflict{
		{FlightID: "AF-1", Kind: KindOverlap},
		{FlightID: "AF-1", Kind: KindTurnaround},
		{FlightID: "AF-2", Kind: KindUnavailable},
	}

	index := BuildConflictIndex(conflicts)

	assert.Len(t, index, 2)
	assert.Len(t, index["AF-1"], 2)
	assert.Len(t, index["AF-2"], 1)
	assert.Empty(t, index["AF-3"])
}

func TestHasCritical(t *testing.T) {
	assert.False(t, HasCritical(nil))
	assert.False(t, HasCritical([]Conflict{{Severity: SeverityWarning}}))
	assert.True(t, HasCritical([]Conflict{{Severity: SeverityWarning}, {Severity: SeverityCritical}}))
}

func TestUtilizationHeatmap(t *testing.T) {
	fleet := []Aircraft{{Registration: "F-OSBC", Status: AircraftAvailable}}
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 30), Arrival: at(7, 30), Status: FlightScheduled},
	}

	heatmap := UtilizationHeatmap(flights, fleet, "2026-09-01")

	require.Contains(t, heatmap, "F-OSBC")
	buckets := heatmap["F-OSBC"]
	assert.InDelta(t, 0.5, buckets[6], 0.001)
	assert.InDelta(t, 0.5, buckets[7], 0.001)
	assert.Zero(t, buckets[5])
	assert.Zero(t, buckets[8])
}

func TestUtilizationHeatmap_ClippedToFull(t *testing.T) {
	fleet := []Aircraft{{Registration: "F-OSBC", Status: AircraftAvailable}}
	// Two flights crammed into the same hour still report at most 1.0.
	flights := []Flight{
		{ID: "AF-1", AircraftID: "F-OSBC", Departure: at(6, 0), Arrival: at(6, 40), Status: FlightScheduled},
		{ID: "AF-2", AircraftID: "F-OSBC", Departure: at(6, 20), Arrival: at(7, 0), Status: FlightScheduled},
	}

	heatmap := UtilizationHeatmap(flights, fleet, "2026-09-01")

	assert.InDelta(t, 1.0, heatmap["F-OSBC"][6], 0.001)
}

func TestUtilizationHeatmap_BadDay(t *testing.T) {
	assert.Nil(t, UtilizationHeatmap(nil, nil, "yesterday"))
}
