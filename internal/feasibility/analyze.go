package feasibility

import "time"

// detectors is the pipeline AnalyzeAllConflicts runs, in a fixed order so
// output ordering is deterministic for a given snapshot.
var detectors = []Detector{
	DetectOverlaps,
	DetectTurnarounds,
	DetectUnavailable,
	DetectDutySpans,
	DetectOverloads,
}

// AnalyzeAllConflicts runs every detector over the snapshot, concatenates
// the results, and applies suggestion enrichment once over the union.
func AnalyzeAllConflicts(flights []Flight, fleet []Aircraft, rules PlanningRules) []Conflict {
	var conflicts []Conflict
	for _, detect := range detectors {
		conflicts = append(conflicts, detect(flights, fleet, rules)...)
	}
	return EnrichSuggestions(conflicts, flights, fleet, rules)
}

// BuildConflictIndex maps flight ID to its conflicts for O(1) lookup by
// visualizations and the lock-gating workflow.
func BuildConflictIndex(conflicts []Conflict) map[string][]Conflict {
	index := make(map[string][]Conflict)
	for _, c := range conflicts {
		index[c.FlightID] = append(index[c.FlightID], c)
	}
	return index
}

// HasCritical reports whether any conflict in the set blocks schedule
// validation.
func HasCritical(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity >= SeverityCritical {
			return true
		}
	}
	return false
}

const heatmapBuckets = 24

// UtilizationHeatmap slices each aircraft's given day into hourly buckets of
// occupied-minutes/60, clipped to [0,1]. A derived load metric only, not a
// conflict signal.
func UtilizationHeatmap(flights []Flight, fleet []Aircraft, day string) map[string][heatmapBuckets]float64 {
	dayStart, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil
	}

	heatmap := make(map[string][heatmapBuckets]float64, len(fleet))
	for _, a := range fleet {
		heatmap[a.Registration] = [heatmapBuckets]float64{}
	}

	for _, f := range flights {
		if !checkable(f) || f.AircraftID == "" {
			continue
		}
		buckets, ok := heatmap[f.AircraftID]
		if !ok {
			continue
		}
		for hour := 0; hour < heatmapBuckets; hour++ {
			bucketStart := dayStart.Add(time.Duration(hour) * time.Hour)
			occupied := overlapMinutes(f.Departure, f.Arrival, bucketStart, bucketStart.Add(time.Hour))
			if occupied <= 0 {
				continue
			}
			load := buckets[hour] + float64(occupied)/60.0
			if load > 1 {
				load = 1
			}
			buckets[hour] = load
		}
		heatmap[f.AircraftID] = buckets
	}
	return heatmap
}

func overlapMinutes(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
