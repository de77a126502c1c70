package dispatch

import "airops/internal/feasibility"

// AnalyzeRequest selects the schedule slice to evaluate. Rules may override
// individual fields of the stored configuration for what-if runs; zero
// fields fall back to the stored document.
type AnalyzeRequest struct {
	Day   string                     `json:"day,omitempty"`
	Rules *feasibility.PlanningRules `json:"rules,omitempty"`
}

type AnalyzeMetadata struct {
	EvaluationID  string `json:"evaluation_id"`
	FlightsTotal  int    `json:"flights_total"`
	WarningCount  int    `json:"warning_count"`
	CriticalCount int    `json:"critical_count"`
	DurationMs    int64  `json:"duration_ms"`
	CacheHit      bool   `json:"cache_hit"`
	CacheKey      string `json:"cache_key,omitempty"`
}

type AnalyzeResponse struct {
	Metadata  AnalyzeMetadata                   `json:"metadata"`
	Rules     feasibility.PlanningRules         `json:"rules"`
	Conflicts []feasibility.Conflict            `json:"conflicts"`
	Index     map[string][]feasibility.Conflict `json:"index"`
}

type FtlRequest struct {
	CrewID        string `json:"crew_id"`
	FlightDate    string `json:"flight_date"`
	FlightMinutes int    `json:"flight_minutes"`
	DutyStart     string `json:"duty_start,omitempty"`
	DutyEnd       string `json:"duty_end,omitempty"`
}

type ValidateCrewRequest struct {
	CrewID   string `json:"crew_id"`
	FlightID string `json:"flight_id"`
	Day      string `json:"day,omitempty"`
}

type HeatmapResponse struct {
	Day     string                 `json:"day"`
	Buckets map[string][24]float64 `json:"buckets"`
}
