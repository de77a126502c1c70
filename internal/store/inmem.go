package store

import (
	"context"
	"sync"

	"airops/internal/feasibility"
)

// InMemory holds whole snapshots behind a RWMutex. It backs local runs and
// tests; the production deployment points the interfaces at the real
// document store instead.
type InMemory struct {
	mu             sync.RWMutex
	flights        []feasibility.Flight
	fleet          []feasibility.Aircraft
	rules          feasibility.PlanningRules
	crew           map[string]feasibility.CrewMember
	ftlLogs        map[string][]feasibility.FtlLog
	qualifications map[string]feasibility.Qualification
}

func NewInMemory(rules feasibility.PlanningRules) *InMemory {
	return &InMemory{
		rules:          rules,
		crew:           make(map[string]feasibility.CrewMember),
		ftlLogs:        make(map[string][]feasibility.FtlLog),
		qualifications: make(map[string]feasibility.Qualification),
	}
}

// Stores exposes the in-memory instance through the interface bundle.
func (m *InMemory) Stores() Stores {
	return Stores{
		Flights:        m,
		Fleet:          m,
		Rules:          m,
		Crew:           m,
		FtlLogs:        m,
		Qualifications: m,
	}
}

// ReplaceSchedule swaps the flight and fleet snapshots in one step, the way
// an upstream sync would.
func (m *InMemory) ReplaceSchedule(flights []feasibility.Flight, fleet []feasibility.Aircraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights = append([]feasibility.Flight(nil), flights...)
	m.fleet = append([]feasibility.Aircraft(nil), fleet...)
}

func (m *InMemory) SetRules(rules feasibility.PlanningRules) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = rules
}

func (m *InMemory) PutCrewMember(member feasibility.CrewMember) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crew[member.ID] = member
}

func (m *InMemory) PutFtlLogs(crewID string, logs []feasibility.FtlLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ftlLogs[crewID] = append([]feasibility.FtlLog(nil), logs...)
}

func (m *InMemory) PutQualification(qual feasibility.Qualification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qualifications[qual.CrewID] = qual
}

func (m *InMemory) ListFlights(ctx context.Context, day string) ([]feasibility.Flight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if day == "" {
		return append([]feasibility.Flight(nil), m.flights...), nil
	}
	var filtered []feasibility.Flight
	for _, f := range m.flights {
		if feasibility.DayKey(f.Departure) == day {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

func (m *InMemory) ListFleet(ctx context.Context) ([]feasibility.Aircraft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]feasibility.Aircraft(nil), m.fleet...), nil
}

func (m *InMemory) GetRules(ctx context.Context) (feasibility.PlanningRules, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rules, nil
}

func (m *InMemory) GetCrewMember(ctx context.Context, id string) (*feasibility.CrewMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if member, ok := m.crew[id]; ok {
		return &member, nil
	}
	return nil, nil
}

func (m *InMemory) ListFtlLogs(ctx context.Context, crewID string) ([]feasibility.FtlLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]feasibility.FtlLog(nil), m.ftlLogs[crewID]...), nil
}

func (m *InMemory) GetQualification(ctx context.Context, crewID string) (*feasibility.Qualification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if qual, ok := m.qualifications[crewID]; ok {
		return &qual, nil
	}
	return nil, nil
}
