package domain

import (
	"github.com/shopspring/decimal"
)

// ResidenceKind distinguishes primary residence cases from dependent family cases.
type ResidenceKind string

const (
	KindPrimary ResidenceKind = "primary"
	KindFamily  ResidenceKind = "family"
)

// Valid reports whether k is a known kind.
func (k ResidenceKind) Valid() bool {
	return k == KindPrimary || k == KindFamily
}

// ResidenceApplication is one residence (or family residence) case being processed.
//
// CurrentStep is the working cursor and CompletedStep the highest ordinal ever
// committed. The two move independently: moving the cursor never touches
// CompletedStep, and committing never drags the cursor along.
type ResidenceApplication struct {
	ID            int64           `json:"id"`
	Kind          ResidenceKind   `json:"kind"`
	ParentID      *int64          `json:"parentId,omitempty"` // Family cases reference a primary case
	CurrentStep   string          `json:"currentStep"`
	CompletedStep int             `json:"completedStep"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Hold          bool            `json:"hold"`
	Remarks       string          `json:"remarks"`
	AuditFields
}

// RecordState is the read model returned to callers rendering a case.
type RecordState struct {
	Application ResidenceApplication `json:"application"`
	Ledger      []LedgerEntry        `json:"ledger"`
}
