package repositories

import (
	"context"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
)

// ResidenceReader defines read operations for residence applications.
type ResidenceReader interface {
	// FindApplicationByID retrieves an application by its ID.
	FindApplicationByID(ctx context.Context, applicationID int64) (*domain.ResidenceApplication, error)

	// FindLedgerEntries retrieves every ledger entry of an application.
	FindLedgerEntries(ctx context.Context, applicationID int64) ([]domain.LedgerEntry, error)
}

// ResidenceWriter defines write operations for residence applications.
// Every update is conditional on expectedVersion and fails with
// apperrors.ErrConflict when another writer got there first.
type ResidenceWriter interface {
	// SaveApplication persists a new application and sets its ID.
	SaveApplication(ctx context.Context, app *domain.ResidenceApplication) error

	// SaveStepCommit upserts the ledger entry and updates the application in one transaction.
	SaveStepCommit(ctx context.Context, app domain.ResidenceApplication, entry domain.LedgerEntry, expectedVersion int64) error

	// UpdateApplication writes cursor, remarks and audit fields of the application.
	UpdateApplication(ctx context.Context, app domain.ResidenceApplication, expectedVersion int64) error
}

// ResidenceRepositoryFacade combines all residence-related repository interfaces.
type ResidenceRepositoryFacade interface {
	ResidenceReader
	ResidenceWriter
}

// ResidenceRepositoryWithTx extends ResidenceRepositoryFacade with transaction capabilities.
type ResidenceRepositoryWithTx interface {
	ResidenceRepositoryFacade
	TransactionManager
}

// TransitionLog is the append-only audit trail of cursor moves.
type TransitionLog interface {
	AppendTransition(ctx context.Context, entry domain.TransitionEntry) error
	ListTransitions(ctx context.Context, applicationID int64) ([]domain.TransitionEntry, error)
}

// RemarksLog is the append-only history of case remarks.
type RemarksLog interface {
	AppendRemark(ctx context.Context, entry domain.RemarkEntry) error
}
