package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"airops/internal/feasibility"
)

// scheduleFile is the exported snapshot format. Timestamps come in whatever
// shape the exporting tool used (RFC3339 strings or epoch millis), so they
// are decoded as raw values and normalized through ParseInstant.
type scheduleFile struct {
	Flights []flightRecord             `json:"flights"`
	Fleet   []feasibility.Aircraft     `json:"fleet"`
	Rules   *feasibility.PlanningRules `json:"rules,omitempty"`
}

type flightRecord struct {
	ID          string `json:"id"`
	AircraftID  string `json:"aircraft_id"`
	PilotID     string `json:"pilot_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   any    `json:"departure"`
	Arrival     any    `json:"arrival"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Passengers  int    `json:"passengers"`
}

func loadSchedule(path string) (*scheduleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	var file scheduleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	return &file, nil
}

func (f *scheduleFile) toFlights() []feasibility.Flight {
	flights := make([]feasibility.Flight, 0, len(f.Flights))
	for _, r := range f.Flights {
		status := feasibility.FlightStatus(r.Status)
		if status == "" {
			status = feasibility.FlightScheduled
		}
		flights = append(flights, feasibility.Flight{
			ID:          r.ID,
			AircraftID:  r.AircraftID,
			PilotID:     r.PilotID,
			Origin:      r.Origin,
			Destination: r.Destination,
			Departure:   feasibility.ParseInstant(r.Departure),
			Arrival:     feasibility.ParseInstant(r.Arrival),
			Status:      status,
			Category:    feasibility.FlightCategory(r.Category),
			Passengers:  r.Passengers,
		})
	}
	return flights
}

// rulesFile is the YAML override format for planning rules.
type rulesFile struct {
	MinTurnaroundMinutes int `yaml:"min_turnaround_minutes"`
	BufferMinutes        int `yaml:"buffer_minutes"`
	MaxDailyCycles       int `yaml:"max_daily_cycles"`
	MaxCrewDutyMinutes   int `yaml:"max_crew_duty_minutes"`
}

// loadRules resolves the effective rules: defaults, then any rules embedded
// in the schedule file, then the YAML override file when given.
func loadRules(schedule *scheduleFile, path string) (feasibility.PlanningRules, error) {
	rules := feasibility.DefaultRules()
	if schedule.Rules != nil {
		rules = *schedule.Rules
	}
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules: %w", err)
	}
	var overrides rulesFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return rules, fmt.Errorf("failed to parse rules: %w", err)
	}

	if overrides.MinTurnaroundMinutes > 0 {
		rules.MinTurnaroundMinutes = overrides.MinTurnaroundMinutes
	}
	if overrides.BufferMinutes > 0 {
		rules.BufferMinutes = overrides.BufferMinutes
	}
	if overrides.MaxDailyCycles > 0 {
		rules.MaxDailyCycles = overrides.MaxDailyCycles
	}
	if overrides.MaxCrewDutyMinutes > 0 {
		rules.MaxCrewDutyMinutes = overrides.MaxCrewDutyMinutes
	}
	return rules, nil
}
