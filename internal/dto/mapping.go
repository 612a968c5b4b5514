package dto

import (
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/SscSPs/travel_desk_backend/internal/core/workflow"
)

// ToApplicationResponse converts a domain application to its response DTO.
func ToApplicationResponse(a *domain.ResidenceApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		Kind:          a.Kind,
		ParentID:      a.ParentID,
		CurrentStep:   a.CurrentStep,
		CompletedStep: a.CompletedStep,
		SalePrice:     a.SalePrice,
		PaidAmount:    a.PaidAmount,
		Hold:          a.Hold,
		Remarks:       a.Remarks,
		Version:       a.Version,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToLedgerEntryResponse converts a ledger entry to its response DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		StepCode:       e.StepCode,
		Cost:           e.Cost,
		CurrencyID:     e.CurrencyID,
		ChargeTargetID: e.ChargeTargetID,
		DocumentRef:    e.DocumentRef,
		Details:        e.Details,
		RecordedAt:     e.RecordedAt,
		RecordedBy:     e.RecordedBy,
		Committed:      e.IsCommitted(),
	}
	if e.ChargeTargetType != nil {
		t := string(*e.ChargeTargetType)
		resp.ChargeTargetType = &t
	}
	return resp
}

// ToRecordStateResponse converts a record state to its response DTO.
func ToRecordStateResponse(s *domain.RecordState) RecordStateResponse {
	ledger := make([]LedgerEntryResponse, len(s.Ledger))
	for i, e := range s.Ledger {
		ledger[i] = ToLedgerEntryResponse(e)
	}
	return RecordStateResponse{
		ApplicationResponse: ToApplicationResponse(&s.Application),
		Ledger:              ledger,
	}
}

// ToStepResponse converts a step definition to its response DTO.
func ToStepResponse(s domain.StepDefinition) StepResponse {
	return StepResponse{
		Code:                s.Code,
		Ordinal:             s.Ordinal,
		DisplayName:         s.DisplayName,
		RequiresTransaction: s.RequiresTransaction,
		IsCheckpoint:        s.IsCheckpoint(),
		Checkpoint:          s.Checkpoint,
		Fields:              s.Fields,
		DefaultCost:         s.DefaultCost,
	}
}

// ToStepResponses converts a slice of step definitions.
func ToStepResponses(steps []domain.StepDefinition) []StepResponse {
	out := make([]StepResponse, len(steps))
	for i, s := range steps {
		out[i] = ToStepResponse(s)
	}
	return out
}

// ToDestinationsResponse converts legal destinations to their response DTO.
func ToDestinationsResponse(d *domain.Destinations) DestinationsResponse {
	resp := DestinationsResponse{
		CurrentStep: d.CurrentStep,
		Version:     d.Version,
		Backward:    ToStepResponses(d.Backward),
		Forward:     ToStepResponses(d.Forward),
	}
	if d.Empty() {
		resp.Message = workflow.ReasonNoDestination
	}
	return resp
}

// ToCursorResponse reports the cursor position of an application.
func ToCursorResponse(a *domain.ResidenceApplication) CursorResponse {
	return CursorResponse{
		CurrentStep:   a.CurrentStep,
		CompletedStep: a.CompletedStep,
		Version:       a.Version,
	}
}

// ToEligibilityResponse converts an eligibility result to its response DTO.
func ToEligibilityResponse(e *domain.Eligibility) EligibilityResponse {
	return EligibilityResponse{
		StepCode:   e.StepCode,
		Eligible:   e.Eligible,
		Reason:     e.Reason,
		Required:   e.Required,
		Paid:       e.Paid,
		Percentage: e.Percentage,
	}
}

// ToCommitStepResponse converts a commit outcome to its response DTO.
func ToCommitStepResponse(r *domain.CommitResult) CommitStepResponse {
	return CommitStepResponse{
		CompletedStep: r.CompletedStep,
		Version:       r.Version,
		LedgerEntry:   ToLedgerEntryResponse(r.Entry),
	}
}

// ToTransitionEntryResponses converts the transition history to response DTOs.
func ToTransitionEntryResponses(entries []domain.TransitionEntry) []TransitionEntryResponse {
	out := make([]TransitionEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = TransitionEntryResponse{
			From:       e.From,
			To:         e.To,
			Reason:     string(e.Reason),
			Actor:      e.Actor,
			OccurredAt: e.OccurredAt,
		}
	}
	return out
}
