package workflow

import (
	"fmt"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
)

// Reasons a cursor move is refused.
const (
	ReasonSameStep      = "target is the current step"
	ReasonCommitted     = "step has a committed transaction"
	ReasonUnknownStep   = "step does not exist for this residence kind"
	ReasonNotCheckpoint = "step is not a checkpoint"
	ReasonNotOnStep     = "record is not positioned on this step"
	ReasonNoDestination = "no legal destination"
)

// LegalDestinations lists every step the cursor may move to: all steps except
// the current one and those with a committed ledger entry. A committed step is
// locked in both directions since re-entering it could overwrite a charged
// transaction. Targets are split by sequence position, which keeps checkpoints
// (sharing their origin's ordinal) on a definite side.
func (r *Registry) LegalDestinations(app domain.ResidenceApplication, ledger domain.Ledger) (domain.Destinations, error) {
	steps, err := r.StepsFor(app.Kind)
	if err != nil {
		return domain.Destinations{}, err
	}
	current := r.Position(app.Kind, app.CurrentStep)
	if current < 0 {
		return domain.Destinations{}, fmt.Errorf("%w: record %d is on unknown step %q", apperrors.ErrInternal, app.ID, app.CurrentStep)
	}

	dest := domain.Destinations{
		CurrentStep: app.CurrentStep,
		Version:     app.Version,
		Backward:    []domain.StepDefinition{},
		Forward:     []domain.StepDefinition{},
	}
	for i, s := range steps {
		if i == current || ledger.Committed(s.Code) {
			continue
		}
		if i < current {
			dest.Backward = append(dest.Backward, s)
		} else {
			dest.Forward = append(dest.Forward, s)
		}
	}
	return dest, nil
}

// CheckTransition re-validates a confirmed target against the state just read.
func (r *Registry) CheckTransition(app domain.ResidenceApplication, ledger domain.Ledger, target string) (domain.StepDefinition, error) {
	step, ok := r.Lookup(app.Kind, target)
	if !ok {
		return domain.StepDefinition{}, apperrors.NewTransitionError(app.CurrentStep, target, ReasonUnknownStep)
	}
	if target == app.CurrentStep {
		return domain.StepDefinition{}, apperrors.NewTransitionError(app.CurrentStep, target, ReasonSameStep)
	}
	if ledger.Committed(target) {
		return domain.StepDefinition{}, apperrors.NewTransitionError(app.CurrentStep, target, ReasonCommitted)
	}
	return step, nil
}

// CheckpointTarget resolves where a checkpoint decision sends the cursor.
// Acceptance moves on to the next real step; rejection returns to the
// submitted step so staff can resubmit, which is the one move allowed onto a
// committed step. Neither touches the ledger.
func (r *Registry) CheckpointTarget(app domain.ResidenceApplication, ledger domain.Ledger, checkpointStep string, status domain.CheckpointStatus) (string, domain.TransitionReason, error) {
	step, ok := r.Lookup(app.Kind, checkpointStep)
	if !ok {
		return "", "", apperrors.NewTransitionError(app.CurrentStep, checkpointStep, ReasonUnknownStep)
	}
	if !step.IsCheckpoint() {
		return "", "", apperrors.NewTransitionError(app.CurrentStep, checkpointStep, ReasonNotCheckpoint)
	}
	if app.CurrentStep != checkpointStep {
		return "", "", apperrors.NewTransitionError(app.CurrentStep, checkpointStep, ReasonNotOnStep)
	}

	switch status {
	case domain.CheckpointAccepted:
		if ledger.Committed(step.Checkpoint.Next) {
			return "", "", apperrors.NewTransitionError(checkpointStep, step.Checkpoint.Next, ReasonCommitted)
		}
		return step.Checkpoint.Next, domain.ReasonCheckpointAccepted, nil
	case domain.CheckpointRejected:
		return step.Checkpoint.Origin, domain.ReasonCheckpointRejected, nil
	default:
		verr := apperrors.NewValidationError()
		verr.Add("status", "status must be accepted or rejected")
		return "", "", verr
	}
}

// CheckCommitTarget verifies a transaction may be recorded for stepCode on app.
// Only the step under the cursor can be committed; re-committing it overwrites
// the previous entry.
func (r *Registry) CheckCommitTarget(app domain.ResidenceApplication, stepCode string) (domain.StepDefinition, error) {
	step, ok := r.Lookup(app.Kind, stepCode)
	if !ok {
		return domain.StepDefinition{}, fmt.Errorf("%w: step %q does not exist for %s residences", apperrors.ErrNotFound, stepCode, app.Kind)
	}
	if app.CurrentStep != stepCode {
		return domain.StepDefinition{}, apperrors.NewTransitionError(app.CurrentStep, stepCode, ReasonNotOnStep)
	}
	if !step.RequiresTransaction {
		return domain.StepDefinition{}, apperrors.NewValidationFailedError("step " + stepCode + " does not take a transaction")
	}
	return step, nil
}

// AdvanceCompletion returns the completed ordinal after committing step.
// Completion never decreases.
func AdvanceCompletion(completed int, step domain.StepDefinition) int {
	if step.Ordinal > completed {
		return step.Ordinal
	}
	return completed
}
