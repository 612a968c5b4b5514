package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransitionLogRepository struct {
	BaseRepository
}

func newPgxTransitionLogRepository(pool *pgxpool.Pool) portsrepo.TransitionLog {
	return &PgxTransitionLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransitionLog = (*PgxTransitionLogRepository)(nil)

// AppendTransition records one cursor move.
func (r *PgxTransitionLogRepository) AppendTransition(ctx context.Context, entry domain.TransitionEntry) error {
	query := `
		INSERT INTO residence_transitions (application_id, from_step, to_step, reason, actor, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ApplicationID,
		entry.From,
		entry.To,
		string(entry.Reason),
		entry.Actor,
		entry.OccurredAt,
	)
	if err != nil {
		return internalError("failed to append transition for residence "+strconv.FormatInt(entry.ApplicationID, 10), err)
	}
	return nil
}

// ListTransitions returns the moves of a residence case, oldest first.
func (r *PgxTransitionLogRepository) ListTransitions(ctx context.Context, applicationID int64) ([]domain.TransitionEntry, error) {
	query := `
		SELECT id, application_id, from_step, to_step, reason, actor, occurred_at
		FROM residence_transitions
		WHERE application_id = $1
		ORDER BY occurred_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, internalError("failed to query transitions", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransitionEntry, error) {
		var e domain.TransitionEntry
		var reason string
		err := row.Scan(&e.ID, &e.ApplicationID, &e.From, &e.To, &reason, &e.Actor, &e.OccurredAt)
		e.Reason = domain.TransitionReason(reason)
		return e, err
	})
	if err != nil {
		return nil, internalError("failed to collect transition rows", err)
	}
	return entries, nil
}
