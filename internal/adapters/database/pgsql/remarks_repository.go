package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRemarksRepository struct {
	BaseRepository
}

func newPgxRemarksRepository(pool *pgxpool.Pool) portsrepo.RemarksLog {
	return &PgxRemarksRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RemarksLog = (*PgxRemarksRepository)(nil)

// AppendRemark adds a line to the remarks history.
func (r *PgxRemarksRepository) AppendRemark(ctx context.Context, entry domain.RemarkEntry) error {
	query := `
		INSERT INTO residence_remarks (application_id, remarks, actor, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, entry.ApplicationID, entry.Remarks, entry.Actor, entry.CreatedAt)
	if err != nil {
		return internalError("failed to append remark for residence "+strconv.FormatInt(entry.ApplicationID, 10), err)
	}
	return nil
}
