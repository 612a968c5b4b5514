package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxResidenceRepository struct {
	BaseRepository
}

// newPgxResidenceRepository creates a new repository for residence cases and their ledgers.
func newPgxResidenceRepository(pool *pgxpool.Pool) portsrepo.ResidenceRepositoryWithTx {
	return &PgxResidenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxResidenceRepository implements portsrepo.ResidenceRepositoryWithTx
var _ portsrepo.ResidenceRepositoryWithTx = (*PgxResidenceRepository)(nil)

const residenceSelectQuery = `
SELECT
	id, kind, parent_id, current_step, completed_step, sale_price, paid_amount, hold, remarks,
	created_at, created_by, last_updated_at, last_updated_by, version
FROM residence_applications
`

const ledgerSelectQuery = `
SELECT
	application_id, step_code, cost, currency_id, charge_target_type, charge_target_id,
	document_ref, details, recorded_at, recorded_by
FROM residence_ledger_entries
`

// FindApplicationByID retrieves a residence case. Returns apperrors.ErrNotFound when absent.
func (r *PgxResidenceRepository) FindApplicationByID(ctx context.Context, applicationID int64) (*domain.ResidenceApplication, error) {
	var app domain.ResidenceApplication
	var kind string
	err := r.Pool.QueryRow(ctx, residenceSelectQuery+`WHERE id = $1`, applicationID).Scan(
		&app.ID,
		&kind,
		&app.ParentID,
		&app.CurrentStep,
		&app.CompletedStep,
		&app.SalePrice,
		&app.PaidAmount,
		&app.Hold,
		&app.Remarks,
		&app.CreatedAt,
		&app.CreatedBy,
		&app.LastUpdatedAt,
		&app.LastUpdatedBy,
		&app.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("residence %d: %w", applicationID, apperrors.ErrNotFound)
		}
		return nil, internalError("failed to query residence "+strconv.FormatInt(applicationID, 10), err)
	}
	app.Kind = domain.ResidenceKind(kind)
	return &app, nil
}

// FindLedgerEntries retrieves every ledger entry of a residence case.
func (r *PgxResidenceRepository) FindLedgerEntries(ctx context.Context, applicationID int64) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, ledgerSelectQuery+`WHERE application_id = $1 ORDER BY step_code`, applicationID)
	if err != nil {
		return nil, internalError("failed to query ledger of residence "+strconv.FormatInt(applicationID, 10), err)
	}
	entries, err := pgx.CollectRows(rows, scanLedgerEntry)
	if err != nil {
		return nil, internalError("failed to collect ledger rows", err)
	}
	return entries, nil
}

func scanLedgerEntry(row pgx.CollectableRow) (domain.LedgerEntry, error) {
	var (
		e          domain.LedgerEntry
		cost       decimal.NullDecimal
		targetType *string
	)
	err := row.Scan(
		&e.ApplicationID,
		&e.StepCode,
		&cost,
		&e.CurrencyID,
		&targetType,
		&e.ChargeTargetID,
		&e.DocumentRef,
		&e.Details,
		&e.RecordedAt,
		&e.RecordedBy,
	)
	if err != nil {
		return e, err
	}
	if cost.Valid {
		e.Cost = &cost.Decimal
	}
	if targetType != nil {
		t := domain.ChargeTargetType(*targetType)
		e.ChargeTargetType = &t
	}
	return e, nil
}

// SaveApplication inserts a new residence case and sets its generated ID.
func (r *PgxResidenceRepository) SaveApplication(ctx context.Context, app *domain.ResidenceApplication) error {
	query := `
		INSERT INTO residence_applications (
			kind, parent_id, current_step, completed_step, sale_price, paid_amount, hold, remarks,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		string(app.Kind),
		app.ParentID,
		app.CurrentStep,
		app.CompletedStep,
		app.SalePrice,
		app.PaidAmount,
		app.Hold,
		app.Remarks,
		app.CreatedAt,
		app.CreatedBy,
		app.LastUpdatedAt,
		app.LastUpdatedBy,
		app.Version,
	).Scan(&app.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("parent residence does not exist")
		}
		return internalError("failed to save residence", err)
	}
	return nil
}

// SaveStepCommit upserts the ledger entry and bumps the application in one
// transaction. The application row is updated first so a stale version
// aborts before the ledger is touched.
func (r *PgxResidenceRepository) SaveStepCommit(ctx context.Context, app domain.ResidenceApplication, entry domain.LedgerEntry, expectedVersion int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if err := r.updateApplication(ctx, tx, app, expectedVersion); err != nil {
		return err
	}

	details := entry.Details
	if details == nil {
		details = map[string]string{}
	}
	var targetType *string
	if entry.ChargeTargetType != nil {
		t := string(*entry.ChargeTargetType)
		targetType = &t
	}

	upsert := `
		INSERT INTO residence_ledger_entries (
			application_id, step_code, cost, currency_id, charge_target_type, charge_target_id,
			document_ref, details, recorded_at, recorded_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (application_id, step_code) DO UPDATE SET
			cost = EXCLUDED.cost,
			currency_id = EXCLUDED.currency_id,
			charge_target_type = EXCLUDED.charge_target_type,
			charge_target_id = EXCLUDED.charge_target_id,
			document_ref = EXCLUDED.document_ref,
			details = EXCLUDED.details,
			recorded_at = EXCLUDED.recorded_at,
			recorded_by = EXCLUDED.recorded_by;
	`
	_, err = tx.Exec(ctx, upsert,
		entry.ApplicationID,
		entry.StepCode,
		nullDecimal(entry.Cost),
		entry.CurrencyID,
		targetType,
		entry.ChargeTargetID,
		entry.DocumentRef,
		details,
		entry.RecordedAt,
		entry.RecordedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			verr := apperrors.NewValidationError()
			verr.Add("currency_id", "currency does not exist")
			return verr
		}
		return internalError("failed to save ledger entry for step "+entry.StepCode, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateApplication writes cursor, completion, remarks and audit fields when
// the stored version still equals expectedVersion.
func (r *PgxResidenceRepository) UpdateApplication(ctx context.Context, app domain.ResidenceApplication, expectedVersion int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.updateApplication(ctx, tx, app, expectedVersion); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxResidenceRepository) updateApplication(ctx context.Context, tx pgx.Tx, app domain.ResidenceApplication, expectedVersion int64) error {
	query := `
		UPDATE residence_applications SET
			current_step = $3,
			completed_step = $4,
			hold = $5,
			remarks = $6,
			last_updated_at = $7,
			last_updated_by = $8,
			version = version + 1
		WHERE id = $1 AND version = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		app.ID,
		expectedVersion,
		app.CurrentStep,
		app.CompletedStep,
		app.Hold,
		app.Remarks,
		app.LastUpdatedAt,
		app.LastUpdatedBy,
	)
	if err != nil {
		return internalError("failed to update residence "+strconv.FormatInt(app.ID, 10), err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM residence_applications WHERE id = $1)`, app.ID).Scan(&exists); err != nil {
		return internalError("failed to check residence "+strconv.FormatInt(app.ID, 10), err)
	}
	if !exists {
		return apperrors.NewNotFoundError("residence " + strconv.FormatInt(app.ID, 10) + " not found for update")
	}
	return apperrors.NewConflictError(fmt.Sprintf("residence %d was modified by another user (expected version %d)", app.ID, expectedVersion))
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
