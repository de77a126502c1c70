// Package planning implements the schedule lock workflow: a day's plan
// moves editable → locked → validated, and validation is refused while the
// feasibility engine still reports critical conflicts for that day.
package planning

import (
	"context"
	"fmt"
	"sync"

	"airops/pkg/logger"
)

type State string

const (
	StateEditable  State = "editable"
	StateLocked    State = "locked"
	StateValidated State = "validated"
)

// ConflictSource is the slice of the feasibility service the workflow
// needs: how many blocking conflicts a day currently has.
type ConflictSource interface {
	CriticalCount(ctx context.Context, day string) (int, error)
}

type TransitionError struct {
	Day  string
	From State
	To   State
	Why  string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move %s from %s to %s: %s", e.Day, e.From, e.To, e.Why)
}

// Manager tracks the per-day workflow state in memory. The authoritative
// workflow document lives in the external store; this mirrors its state
// machine for gating.
type Manager struct {
	mu        sync.Mutex
	states    map[string]State
	conflicts ConflictSource
	logger    logger.Client
}

func NewManager(conflicts ConflictSource, logger logger.Client) *Manager {
	return &Manager{
		states:    make(map[string]State),
		conflicts: conflicts,
		logger:    logger,
	}
}

func (m *Manager) StateFor(day string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked(day)
}

func (m *Manager) stateLocked(day string) State {
	if state, ok := m.states[day]; ok {
		return state
	}
	return StateEditable
}

// Lock freezes a day's plan for review. Only editable plans can be locked.
func (m *Manager) Lock(day string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.stateLocked(day)
	if current != StateEditable {
		return &TransitionError{Day: day, From: current, To: StateLocked, Why: "only an editable plan can be locked"}
	}
	m.states[day] = StateLocked
	m.logger.Info("Plan locked", logger.Field{Key: "day", Value: day})
	return nil
}

// Validate promotes a locked plan to validated, provided the engine reports
// no unresolved critical conflicts for that day.
func (m *Manager) Validate(ctx context.Context, day string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.stateLocked(day)
	if current != StateLocked {
		return &TransitionError{Day: day, From: current, To: StateValidated, Why: "plan must be locked first"}
	}

	criticals, err := m.conflicts.CriticalCount(ctx, day)
	if err != nil {
		return fmt.Errorf("check conflicts for %s: %w", day, err)
	}
	if criticals > 0 {
		return &TransitionError{
			Day:  day,
			From: current,
			To:   StateValidated,
			Why:  fmt.Sprintf("%d critical conflicts unresolved", criticals),
		}
	}

	m.states[day] = StateValidated
	m.logger.Info("Plan validated", logger.Field{Key: "day", Value: day})
	return nil
}

// Unlock returns a plan to editable from any state.
func (m *Manager) Unlock(day string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, day)
	m.logger.Info("Plan unlocked", logger.Field{Key: "day", Value: day})
}
