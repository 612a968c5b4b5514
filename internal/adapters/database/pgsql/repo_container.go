package pgsql

import (
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ResidenceRepo: newPgxResidenceRepository(dbPool),
		TransitionLog: newPgxTransitionLogRepository(dbPool),
		RemarksLog:    newPgxRemarksRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
	}
}
