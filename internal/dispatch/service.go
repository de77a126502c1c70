package dispatch

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"airops/internal/feasibility"
	"airops/internal/store"
	"airops/pkg/cache"
	"airops/pkg/idgen"
	"airops/pkg/logger"
)

// Service runs the feasibility engine over snapshots pulled from the
// external stores. Every evaluation is a full, pure recomputation; Redis
// only memoizes results keyed on a digest of the snapshot, so a cache
// outage degrades to recomputing.
type Service struct {
	stores store.Stores
	cache  cache.Cache
	ids    idgen.Generator
	ttl    time.Duration
	logger logger.Client
}

func NewService(stores store.Stores, cache cache.Cache, ids idgen.Generator, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		stores: stores,
		cache:  cache,
		ids:    ids,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: logger,
	}
}

// snapshot is the hashed unit of work: same snapshot, same result.
type snapshot struct {
	Flights []feasibility.Flight      `json:"flights"`
	Fleet   []feasibility.Aircraft    `json:"fleet"`
	Rules   feasibility.PlanningRules `json:"rules"`
}

func (s *Service) AnalyzeSchedule(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	snap, err := s.loadSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	cacheKey := analyzeCacheKey(snap)
	if cached := s.cachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	startTime := time.Now()
	conflicts := feasibility.AnalyzeAllConflicts(snap.Flights, snap.Fleet, snap.Rules)

	warnings, criticals := 0, 0
	for _, c := range conflicts {
		if c.Severity >= feasibility.SeverityCritical {
			criticals++
		} else {
			warnings++
		}
	}

	response := &AnalyzeResponse{
		Metadata: AnalyzeMetadata{
			EvaluationID:  fmt.Sprintf("%d", s.ids.GenerateID()),
			FlightsTotal:  len(snap.Flights),
			WarningCount:  warnings,
			CriticalCount: criticals,
			DurationMs:    time.Since(startTime).Milliseconds(),
			CacheKey:      cacheKey,
		},
		Rules:     snap.Rules,
		Conflicts: conflicts,
		Index:     feasibility.BuildConflictIndex(conflicts),
	}

	s.storeResponse(ctx, cacheKey, response)
	return response, nil
}

// CriticalCount reports how many blocking conflicts the given day carries.
// Used by the planning lock workflow to gate validation.
func (s *Service) CriticalCount(ctx context.Context, day string) (int, error) {
	response, err := s.AnalyzeSchedule(ctx, AnalyzeRequest{Day: day})
	if err != nil {
		return 0, err
	}
	return response.Metadata.CriticalCount, nil
}

func (s *Service) EvaluateFTL(ctx context.Context, req FtlRequest) (*feasibility.FtlResult, error) {
	if req.CrewID == "" || req.FlightDate == "" {
		return nil, feasibility.NewValidationError("crew_id and flight_date are required")
	}

	logs, err := s.stores.FtlLogs.ListFtlLogs(ctx, req.CrewID)
	if err != nil {
		return nil, fmt.Errorf("load ftl logs: %w", err)
	}

	var dutyStart, dutyEnd *time.Time
	if req.DutyStart != "" {
		t := feasibility.ParseInstant(req.DutyStart)
		if t.IsZero() {
			return nil, feasibility.NewValidationError("duty_start is not a valid timestamp")
		}
		dutyStart = &t
	}
	if req.DutyEnd != "" {
		t := feasibility.ParseInstant(req.DutyEnd)
		if t.IsZero() {
			return nil, feasibility.NewValidationError("duty_end is not a valid timestamp")
		}
		dutyEnd = &t
	}

	result := feasibility.CalculateFTL(logs, req.FlightDate, req.FlightMinutes, dutyStart, dutyEnd)
	return &result, nil
}

func (s *Service) ValidateCrew(ctx context.Context, req ValidateCrewRequest) (*feasibility.CrewValidation, error) {
	if req.CrewID == "" || req.FlightID == "" {
		return nil, feasibility.NewValidationError("crew_id and flight_id are required")
	}

	member, err := s.stores.Crew.GetCrewMember(ctx, req.CrewID)
	if err != nil {
		return nil, fmt.Errorf("load crew member: %w", err)
	}
	if member == nil {
		return nil, feasibility.NewNotFoundError("crew member " + req.CrewID + " not found")
	}

	flights, err := s.stores.Flights.ListFlights(ctx, req.Day)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	var flight *feasibility.Flight
	for i := range flights {
		if flights[i].ID == req.FlightID {
			flight = &flights[i]
			break
		}
	}
	if flight == nil {
		return nil, feasibility.NewNotFoundError("flight " + req.FlightID + " not found")
	}

	qual, err := s.stores.Qualifications.GetQualification(ctx, req.CrewID)
	if err != nil {
		return nil, fmt.Errorf("load qualification: %w", err)
	}
	logs, err := s.stores.FtlLogs.ListFtlLogs(ctx, req.CrewID)
	if err != nil {
		return nil, fmt.Errorf("load ftl logs: %w", err)
	}

	var aircraft *feasibility.Aircraft
	if flight.AircraftID != "" {
		fleet, err := s.stores.Fleet.ListFleet(ctx)
		if err != nil {
			return nil, fmt.Errorf("load fleet: %w", err)
		}
		for i := range fleet {
			if fleet[i].Registration == flight.AircraftID {
				aircraft = &fleet[i]
				break
			}
		}
	}

	verdict := feasibility.ValidateCrewForFlight(*member, qual, logs, *flight, aircraft)
	return &verdict, nil
}

func (s *Service) Heatmap(ctx context.Context, day string) (*HeatmapResponse, error) {
	if day == "" {
		return nil, feasibility.NewValidationError("day is required")
	}

	flights, err := s.stores.Flights.ListFlights(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	fleet, err := s.stores.Fleet.ListFleet(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}

	buckets := feasibility.UtilizationHeatmap(flights, fleet, day)
	if buckets == nil {
		return nil, feasibility.NewValidationError("day must be formatted as 2006-01-02")
	}
	return &HeatmapResponse{Day: day, Buckets: buckets}, nil
}

func (s *Service) loadSnapshot(ctx context.Context, req AnalyzeRequest) (*snapshot, error) {
	flights, err := s.stores.Flights.ListFlights(ctx, req.Day)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	fleet, err := s.stores.Fleet.ListFleet(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}
	rules, err := s.stores.Rules.GetRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if req.Rules != nil {
		rules = mergeRules(rules, *req.Rules)
	}
	return &snapshot{Flights: flights, Fleet: fleet, Rules: rules}, nil
}

// mergeRules overlays non-zero override fields onto the stored document.
func mergeRules(base, override feasibility.PlanningRules) feasibility.PlanningRules {
	if override.MinTurnaroundMinutes > 0 {
		base.MinTurnaroundMinutes = override.MinTurnaroundMinutes
	}
	if override.BufferMinutes > 0 {
		base.BufferMinutes = override.BufferMinutes
	}
	if override.MaxDailyCycles > 0 {
		base.MaxDailyCycles = override.MaxDailyCycles
	}
	if override.MaxCrewDutyMinutes > 0 {
		base.MaxCrewDutyMinutes = override.MaxCrewDutyMinutes
	}
	return base
}

// analyzeCacheKey derives a deterministic key from the snapshot content.
func analyzeCacheKey(snap *snapshot) string {
	payload, err := json.Marshal(snap)
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(payload)
	return fmt.Sprintf("feasibility:analyze:%x", hash[:16])
}

func (s *Service) cachedResponse(ctx context.Context, cacheKey string) *AnalyzeResponse {
	if s.cache == nil || cacheKey == "" {
		return nil
	}
	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.logger.Error("Failed to read cached analysis", logger.Field{Key: "err", Value: err}, logger.Field{Key: "cache_key", Value: cacheKey})
		return nil
	}
	if cached == "" {
		return nil
	}

	var response AnalyzeResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		s.logger.Error("Failed to unmarshal cached analysis", logger.Field{Key: "err", Value: err})
		return nil
	}
	response.Metadata.CacheHit = true
	return &response
}

func (s *Service) storeResponse(ctx context.Context, cacheKey string, response *AnalyzeResponse) {
	if s.cache == nil || cacheKey == "" {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal analysis for cache", logger.Field{Key: "err", Value: err})
		return
	}
	if err := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); err != nil {
		s.logger.Error("Failed to cache analysis", logger.Field{Key: "err", Value: err}, logger.Field{Key: "cache_key", Value: cacheKey})
	}
}
