package services

import (
	"context"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/SscSPs/travel_desk_backend/internal/dto"
)

// ResidenceReaderSvc defines read operations on residence cases.
type ResidenceReaderSvc interface {
	// ListSteps returns the ordered step catalog of a residence kind.
	ListSteps(ctx context.Context, kind domain.ResidenceKind) ([]domain.StepDefinition, error)

	// GetRecordState returns the application with its ledger.
	GetRecordState(ctx context.Context, applicationID int64) (*domain.RecordState, error)

	// EvaluateEligibility runs the advisory payment check for a step.
	EvaluateEligibility(ctx context.Context, applicationID int64, stepCode string) (*domain.Eligibility, error)

	// ListLegalDestinations lists the steps the cursor may move to.
	ListLegalDestinations(ctx context.Context, applicationID int64) (*domain.Destinations, error)

	// ListTransitions returns the cursor-move history, oldest first.
	ListTransitions(ctx context.Context, applicationID int64) ([]domain.TransitionEntry, error)
}

// StepProcessorSvc records step transactions.
type StepProcessorSvc interface {
	// CommitStep validates and records the transaction of the current step.
	CommitStep(ctx context.Context, applicationID int64, stepCode string, payload domain.StepPayload, actorID string) (*domain.CommitResult, error)
}

// StepTransitionSvc moves the working cursor.
type StepTransitionSvc interface {
	// TransitionTo moves the cursor to a legal destination.
	TransitionTo(ctx context.Context, applicationID int64, req domain.TransitionRequest, actorID string) (*domain.ResidenceApplication, error)

	// SetCheckpointStatus accepts or rejects a checkpoint step.
	SetCheckpointStatus(ctx context.Context, applicationID int64, checkpointStep string, status domain.CheckpointStatus, actorID string) (*domain.ResidenceApplication, error)
}

// ResidenceWriterSvc covers record intake and remarks.
type ResidenceWriterSvc interface {
	// OpenRecord creates a case at the first step of its kind.
	OpenRecord(ctx context.Context, req dto.OpenResidenceRequest, actorID string) (*domain.ResidenceApplication, error)

	// UpdateRemarks replaces the latest remark and appends it to the remarks history.
	UpdateRemarks(ctx context.Context, applicationID int64, req dto.UpdateRemarksRequest, actorID string) (*domain.ResidenceApplication, error)
}

// ResidenceSvcFacade combines all residence-related service interfaces.
type ResidenceSvcFacade interface {
	ResidenceReaderSvc
	StepProcessorSvc
	StepTransitionSvc
	ResidenceWriterSvc
}
