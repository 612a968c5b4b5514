package dto

import (
	"time"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenResidenceRequest opens a case on behalf of the intake process.
type OpenResidenceRequest struct {
	Kind       domain.ResidenceKind `json:"kind" binding:"required,oneof=primary family"`
	ParentID   *int64               `json:"parentId" binding:"omitempty,gt=0"`
	SalePrice  decimal.Decimal      `json:"salePrice"`
	PaidAmount decimal.Decimal      `json:"paidAmount"`
	Hold       bool                 `json:"hold"`
	Remarks    string               `json:"remarks" binding:"max=2000"`
}

// CommitStepRequest is the JSON form of a step transaction. Required fields
// are checked by the step's field schema, not by binding tags, so that every
// missing field is reported together.
type CommitStepRequest struct {
	Cost             *decimal.Decimal  `json:"cost"`
	CurrencyID       *int64            `json:"currencyId"`
	ChargeTargetType *string           `json:"chargeTargetType"`
	ChargeTargetID   *int64            `json:"chargeTargetId"`
	Details          map[string]string `json:"details"`
	MarkComplete     bool              `json:"markComplete"`
}

// ToStepPayload converts the request into the domain payload.
func (r CommitStepRequest) ToStepPayload() domain.StepPayload {
	p := domain.StepPayload{
		Cost:           r.Cost,
		CurrencyID:     r.CurrencyID,
		ChargeTargetID: r.ChargeTargetID,
		Details:        r.Details,
		MarkComplete:   r.MarkComplete,
	}
	if r.ChargeTargetType != nil && *r.ChargeTargetType != "" {
		t := domain.ChargeTargetType(*r.ChargeTargetType)
		p.ChargeTargetType = &t
	}
	return p
}

// TransitionRequest confirms a cursor move.
type TransitionRequest struct {
	TargetStep      string `json:"targetStep" binding:"required"`
	ExpectedVersion int64  `json:"expectedVersion" binding:"gte=0"`
}

// CheckpointStatusRequest carries the staff decision on a checkpoint.
type CheckpointStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// UpdateRemarksRequest replaces the latest remark of a case.
type UpdateRemarksRequest struct {
	Remarks         string `json:"remarks" binding:"required,max=2000"`
	ExpectedVersion int64  `json:"expectedVersion" binding:"gte=0"`
}

// ApplicationResponse is the public view of a residence case.
type ApplicationResponse struct {
	ID            int64                `json:"id"`
	Kind          domain.ResidenceKind `json:"kind"`
	ParentID      *int64               `json:"parentId,omitempty"`
	CurrentStep   string               `json:"currentStep"`
	CompletedStep int                  `json:"completedStep"`
	SalePrice     decimal.Decimal      `json:"salePrice"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	Hold          bool                 `json:"hold"`
	Remarks       string               `json:"remarks"`
	Version       int64                `json:"version"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// LedgerEntryResponse is the public view of a ledger entry.
type LedgerEntryResponse struct {
	StepCode         string            `json:"stepCode"`
	Cost             *decimal.Decimal  `json:"cost"`
	CurrencyID       *int64            `json:"currencyId"`
	ChargeTargetType *string           `json:"chargeTargetType"`
	ChargeTargetID   *int64            `json:"chargeTargetId"`
	DocumentRef      *string           `json:"documentRef,omitempty"`
	Details          map[string]string `json:"details,omitempty"`
	RecordedAt       *time.Time        `json:"recordedAt"`
	RecordedBy       string            `json:"recordedBy,omitempty"`
	Committed        bool              `json:"committed"`
}

// RecordStateResponse is a case together with its ledger.
type RecordStateResponse struct {
	ApplicationResponse
	Ledger []LedgerEntryResponse `json:"ledger"`
}

// CommitStepResponse reports the outcome of a step commit.
type CommitStepResponse struct {
	CompletedStep int                 `json:"completedStep"`
	Version       int64               `json:"version"`
	LedgerEntry   LedgerEntryResponse `json:"ledgerEntry"`
}

// StepResponse is the public view of a step definition.
type StepResponse struct {
	Code                string                       `json:"code"`
	Ordinal             int                          `json:"ordinal"`
	DisplayName         string                       `json:"displayName"`
	RequiresTransaction bool                         `json:"requiresTransaction"`
	IsCheckpoint        bool                         `json:"isCheckpoint"`
	Checkpoint          *domain.CheckpointDefinition `json:"checkpoint,omitempty"`
	Fields              []domain.FieldSpec           `json:"fields,omitempty"`
	DefaultCost         *decimal.Decimal             `json:"defaultCost,omitempty"`
}

// DestinationsResponse lists legal cursor targets.
type DestinationsResponse struct {
	CurrentStep string         `json:"currentStep"`
	Version     int64          `json:"version"`
	Backward    []StepResponse `json:"backward"`
	Forward     []StepResponse `json:"forward"`
	Message     string         `json:"message,omitempty"`
}

// CursorResponse reports the cursor after a move.
type CursorResponse struct {
	CurrentStep   string `json:"currentStep"`
	CompletedStep int    `json:"completedStep"`
	Version       int64  `json:"version"`
}

// EligibilityResponse reports the advisory payment check.
type EligibilityResponse struct {
	StepCode   string          `json:"stepCode"`
	Eligible   bool            `json:"eligible"`
	Reason     string          `json:"reason"`
	Required   decimal.Decimal `json:"required"`
	Paid       decimal.Decimal `json:"paid"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Retry  bool              `json:"retry,omitempty"`
}

// TransitionEntryResponse is one line of the cursor-move history.
type TransitionEntryResponse struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Reason     string    `json:"reason"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}
