package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeTargetType says who a step's cost is charged to.
type ChargeTargetType string

const (
	ChargeAccount  ChargeTargetType = "account"
	ChargeSupplier ChargeTargetType = "supplier"
)

// Valid reports whether t is a known charge target type.
func (t ChargeTargetType) Valid() bool {
	return t == ChargeAccount || t == ChargeSupplier
}

// LedgerEntry is the financial transaction attached to one step of one application.
// There is at most one entry per (application, step).
type LedgerEntry struct {
	ApplicationID    int64             `json:"applicationId"`
	StepCode         string            `json:"stepCode"`
	Cost             *decimal.Decimal  `json:"cost"`
	CurrencyID       *int64            `json:"currencyId"`
	ChargeTargetType *ChargeTargetType `json:"chargeTargetType"`
	ChargeTargetID   *int64            `json:"chargeTargetId"`
	DocumentRef      *string           `json:"documentRef,omitempty"`
	Details          map[string]string `json:"details,omitempty"`
	RecordedAt       *time.Time        `json:"recordedAt"`
	RecordedBy       string            `json:"recordedBy,omitempty"`
}

// IsCommitted reports whether the entry represents a recorded, charged transaction.
// Prefilled or partial values never count.
func (e *LedgerEntry) IsCommitted() bool {
	if e == nil {
		return false
	}
	return e.Cost != nil &&
		e.CurrencyID != nil &&
		e.ChargeTargetType != nil && e.ChargeTargetType.Valid() &&
		e.ChargeTargetID != nil &&
		e.RecordedAt != nil
}

// Ledger indexes an application's entries by step code.
type Ledger map[string]LedgerEntry

// NewLedger builds a Ledger from a slice of entries.
func NewLedger(entries []LedgerEntry) Ledger {
	l := make(Ledger, len(entries))
	for _, e := range entries {
		l[e.StepCode] = e
	}
	return l
}

// Committed reports whether the entry for stepCode is committed.
func (l Ledger) Committed(stepCode string) bool {
	e, ok := l[stepCode]
	if !ok {
		return false
	}
	return e.IsCommitted()
}
