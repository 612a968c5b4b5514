package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// referenceQueries maps each reference kind to its existence query.
var referenceQueries = map[domain.ReferenceKind]string{
	domain.RefCurrency: `SELECT EXISTS (SELECT 1 FROM currencies WHERE id = $1 AND is_active)`,
	domain.RefAccount:  `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1 AND is_active)`,
	domain.RefSupplier: `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1 AND is_active)`,
}

type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceLookup {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceLookup = (*PgxReferenceRepository)(nil)

// Exists reports whether an active row with id exists for kind.
func (r *PgxReferenceRepository) Exists(ctx context.Context, kind domain.ReferenceKind, id int64) (bool, error) {
	query, ok := referenceQueries[kind]
	if !ok {
		return false, fmt.Errorf("%w: unknown reference kind %q", apperrors.ErrValidation, kind)
	}
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, internalError(fmt.Sprintf("failed to look up %s %d", kind, id), err)
	}
	return exists, nil
}
