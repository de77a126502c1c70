// Package store defines the read-only interfaces over the external
// real-time document store. The engine only ever sees immutable snapshots
// pulled through these; subscriptions and persistence live outside this
// repository.
package store

import (
	"context"

	"airops/internal/feasibility"
)

type FlightStore interface {
	// ListFlights returns the full schedule snapshot. day filters to one
	// calendar day ("2006-01-02") when non-empty.
	ListFlights(ctx context.Context, day string) ([]feasibility.Flight, error)
}

type FleetStore interface {
	ListFleet(ctx context.Context) ([]feasibility.Aircraft, error)
}

type RulesStore interface {
	GetRules(ctx context.Context) (feasibility.PlanningRules, error)
}

type CrewStore interface {
	GetCrewMember(ctx context.Context, id string) (*feasibility.CrewMember, error)
}

type FtlStore interface {
	// ListFtlLogs returns the ledger for one crew member, covering at least
	// the 28-day lookback the calculator needs.
	ListFtlLogs(ctx context.Context, crewID string) ([]feasibility.FtlLog, error)
}

type QualificationStore interface {
	// GetQualification returns nil without error when no record exists;
	// crew validation treats that as a blocker.
	GetQualification(ctx context.Context, crewID string) (*feasibility.Qualification, error)
}

// Stores bundles every snapshot source the feasibility service reads.
type Stores struct {
	Flights        FlightStore
	Fleet          FleetStore
	Rules          RulesStore
	Crew           CrewStore
	FtlLogs        FtlStore
	Qualifications QualificationStore
}
