package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_desk_backend/internal/core/ports/services"
	"github.com/SscSPs/travel_desk_backend/internal/core/ports/storage"
	"github.com/SscSPs/travel_desk_backend/internal/core/workflow"
	"github.com/SscSPs/travel_desk_backend/internal/dto"
	"github.com/SscSPs/travel_desk_backend/internal/metrics"
)

const defaultCollaboratorTimeout = 3 * time.Second

// Analytics event names.
const (
	EventResidenceOpened   = "residence_opened"
	EventStepCommitted     = "residence_step_committed"
	EventCursorMoved       = "residence_cursor_moved"
	EventCheckpointDecided = "residence_checkpoint_decided"
	EventRemarksUpdated    = "residence_remarks_updated"
)

// EventTracker receives product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// residenceService runs the residence workflow: it loads a record, lets the
// workflow package decide, and writes back conditionally on the version read.
type residenceService struct {
	BaseService
	repo                portsrepo.ResidenceRepositoryWithTx
	registry            *workflow.Registry
	transitions         portsrepo.TransitionLog
	remarks             portsrepo.RemarksLog
	references          portsrepo.ReferenceLookup
	attachments         storage.AttachmentStore
	metrics             *metrics.Metrics
	events              EventTracker
	enforceEligibility  bool
	collaboratorTimeout time.Duration
	now                 func() time.Time
	tracer              trace.Tracer
}

// ResidenceServiceOption is a functional option for configuring residenceService
type ResidenceServiceOption func(*residenceService)

// WithRegistry replaces the default step catalog.
func WithRegistry(registry *workflow.Registry) ResidenceServiceOption {
	return func(s *residenceService) {
		s.registry = registry
	}
}

// WithTransitionLog sets the audit log of cursor moves.
func WithTransitionLog(log portsrepo.TransitionLog) ResidenceServiceOption {
	return func(s *residenceService) {
		s.transitions = log
	}
}

// WithRemarksLog sets the remarks history store.
func WithRemarksLog(log portsrepo.RemarksLog) ResidenceServiceOption {
	return func(s *residenceService) {
		s.remarks = log
	}
}

// WithReferenceLookup sets the reference-data checker used by commits.
func WithReferenceLookup(lookup portsrepo.ReferenceLookup) ResidenceServiceOption {
	return func(s *residenceService) {
		s.references = lookup
	}
}

// WithAttachmentStore sets where step documents are stored.
func WithAttachmentStore(store storage.AttachmentStore) ResidenceServiceOption {
	return func(s *residenceService) {
		s.attachments = store
	}
}

// WithMetrics sets the Prometheus instruments.
func WithMetrics(m *metrics.Metrics) ResidenceServiceOption {
	return func(s *residenceService) {
		s.metrics = m
	}
}

// WithEventTracker sets the analytics sink.
func WithEventTracker(events EventTracker) ResidenceServiceOption {
	return func(s *residenceService) {
		s.events = events
	}
}

// WithEligibilityEnforcement makes the payment check a precondition of
// commits and cursor moves instead of advice.
func WithEligibilityEnforcement(enforce bool) ResidenceServiceOption {
	return func(s *residenceService) {
		s.enforceEligibility = enforce
	}
}

// WithCollaboratorTimeout bounds best-effort calls such as the audit append.
func WithCollaboratorTimeout(d time.Duration) ResidenceServiceOption {
	return func(s *residenceService) {
		if d > 0 {
			s.collaboratorTimeout = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ResidenceServiceOption {
	return func(s *residenceService) {
		s.now = now
	}
}

// NewResidenceService creates a new residence service with the given options
func NewResidenceService(repo portsrepo.ResidenceRepositoryWithTx, options ...ResidenceServiceOption) portssvc.ResidenceSvcFacade {
	svc := &residenceService{
		repo:                repo,
		registry:            workflow.DefaultRegistry,
		collaboratorTimeout: defaultCollaboratorTimeout,
		now:                 func() time.Time { return time.Now().UTC() },
		tracer:              otel.Tracer("travel_desk/residence"),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ResidenceSvcFacade = (*residenceService)(nil)

// ListSteps returns the ordered step catalog of a residence kind.
func (s *residenceService) ListSteps(ctx context.Context, kind domain.ResidenceKind) ([]domain.StepDefinition, error) {
	if !kind.Valid() {
		verr := apperrors.NewValidationError()
		verr.Add("kind", "kind must be primary or family")
		return nil, verr
	}
	return s.registry.StepsFor(kind)
}

// GetRecordState returns the application and its ledger in step order.
func (s *residenceService) GetRecordState(ctx context.Context, applicationID int64) (_ *domain.RecordState, err error) {
	ctx, span := s.startSpan(ctx, "get_record_state", applicationID)
	defer func() { endSpan(span, err) }()

	app, ledger, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ledger, func(i, j int) bool {
		return s.registry.Position(app.Kind, ledger[i].StepCode) < s.registry.Position(app.Kind, ledger[j].StepCode)
	})
	return &domain.RecordState{Application: *app, Ledger: ledger}, nil
}

// EvaluateEligibility runs the payment check for stepCode against the record as stored.
func (s *residenceService) EvaluateEligibility(ctx context.Context, applicationID int64, stepCode string) (*domain.Eligibility, error) {
	app, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	result, err := s.registry.EvaluateEligibility(*app, stepCode)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLegalDestinations lists the steps the cursor may move to. The returned
// version must be echoed back on TransitionTo.
func (s *residenceService) ListLegalDestinations(ctx context.Context, applicationID int64) (_ *domain.Destinations, err error) {
	ctx, span := s.startSpan(ctx, "list_destinations", applicationID)
	defer func() { endSpan(span, err) }()

	app, entries, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	dest, err := s.registry.LegalDestinations(*app, domain.NewLedger(entries))
	if err != nil {
		s.LogError(ctx, err, "Record positioned on an unknown step", slog.Int64("application_id", applicationID))
		return nil, err
	}
	return &dest, nil
}

// ListTransitions returns the cursor-move history of a record.
func (s *residenceService) ListTransitions(ctx context.Context, applicationID int64) ([]domain.TransitionEntry, error) {
	if _, err := s.findApplication(ctx, applicationID); err != nil {
		return nil, err
	}
	if s.transitions == nil {
		return []domain.TransitionEntry{}, nil
	}
	entries, err := s.transitions.ListTransitions(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions of residence %d: %w", applicationID, err)
	}
	if entries == nil {
		entries = []domain.TransitionEntry{}
	}
	return entries, nil
}

// CommitStep validates and records the transaction of the current step.
// Nothing is written unless every check passes; the cursor is never moved.
func (s *residenceService) CommitStep(ctx context.Context, applicationID int64, stepCode string, payload domain.StepPayload, actorID string) (_ *domain.CommitResult, err error) {
	const op = "commit_step"
	ctx, span := s.startSpan(ctx, op, applicationID)
	span.SetAttributes(attribute.String("residence.step", stepCode))
	start := time.Now()
	defer func() {
		s.metrics.ObserveOperation(op, time.Since(start))
		if err != nil {
			s.metrics.IncrementRejection(op, rejectionCause(err))
		}
		endSpan(span, err)
	}()
	logger := s.GetLogger(ctx).With(slog.Int64("application_id", applicationID), slog.String("step", stepCode))

	app, entries, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	step, err := s.registry.CheckCommitTarget(*app, stepCode)
	if err != nil {
		return nil, err
	}
	if err := s.checkEligibility(*app, stepCode); err != nil {
		return nil, err
	}

	details, verr := workflow.ValidatePayload(step, payload)
	if verr != nil {
		return nil, verr
	}
	if err := s.checkReferences(ctx, payload); err != nil {
		return nil, err
	}

	var documentRef *string
	if previous, ok := domain.NewLedger(entries)[stepCode]; ok {
		documentRef = previous.DocumentRef
	}
	var storedRef string
	if payload.File != nil && len(payload.File.Content) > 0 {
		if s.attachments == nil {
			verr := apperrors.NewValidationError()
			verr.Add(workflow.FieldFile, "document uploads are not enabled")
			return nil, verr
		}
		storedRef, err = s.attachments.Save(ctx, applicationID, stepCode, *payload.File)
		if errors.Is(err, storage.ErrAttachmentRejected) {
			verr := apperrors.NewValidationError()
			verr.Add(workflow.FieldFile, err.Error())
			return nil, verr
		}
		if err != nil {
			logger.Error("Failed to store attachment", slog.String("error", err.Error()))
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to store attachment", err)
		}
		documentRef = &storedRef
	}

	now := s.now()
	entry := domain.LedgerEntry{
		ApplicationID:    applicationID,
		StepCode:         stepCode,
		Cost:             payload.Cost,
		CurrencyID:       payload.CurrencyID,
		ChargeTargetType: payload.ChargeTargetType,
		ChargeTargetID:   payload.ChargeTargetID,
		DocumentRef:      documentRef,
		Details:          details,
		RecordedAt:       &now,
		RecordedBy:       actorID,
	}

	updated := *app
	if payload.MarkComplete {
		updated.CompletedStep = workflow.AdvanceCompletion(app.CompletedStep, step)
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID

	if err := s.repo.SaveStepCommit(ctx, updated, entry, app.Version); err != nil {
		if storedRef != "" {
			s.bestEffort(ctx, "delete orphaned attachment", func(cctx context.Context) error {
				return s.attachments.Delete(cctx, storedRef)
			})
		}
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Step commit lost a concurrent update", slog.Int64("expected_version", app.Version))
			return nil, err
		}
		logger.Error("Failed to save step commit", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit step %s: %w", stepCode, err)
	}
	updated.Version = app.Version + 1

	logger.Info("Step transaction committed",
		slog.Int("completed_step", updated.CompletedStep),
		slog.Bool("mark_complete", payload.MarkComplete))
	s.metrics.IncrementCommit(string(app.Kind), stepCode, "committed")
	s.track(actorID, EventStepCommitted, map[string]any{
		"application_id": applicationID,
		"kind":           string(app.Kind),
		"step":           stepCode,
		"mark_complete":  payload.MarkComplete,
	})

	return &domain.CommitResult{
		Entry:         entry,
		CompletedStep: updated.CompletedStep,
		Version:       updated.Version,
	}, nil
}

// TransitionTo moves the cursor to a legal destination. Legality is decided
// again on the freshly read state; listing destinations grants nothing.
func (s *residenceService) TransitionTo(ctx context.Context, applicationID int64, req domain.TransitionRequest, actorID string) (_ *domain.ResidenceApplication, err error) {
	const op = "transition"
	ctx, span := s.startSpan(ctx, op, applicationID)
	span.SetAttributes(attribute.String("residence.target_step", req.TargetStep))
	start := time.Now()
	defer func() {
		s.metrics.ObserveOperation(op, time.Since(start))
		if err != nil {
			s.metrics.IncrementRejection(op, rejectionCause(err))
		}
		endSpan(span, err)
	}()

	app, entries, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if req.ExpectedVersion > 0 && req.ExpectedVersion != app.Version {
		return nil, apperrors.NewConflictError(fmt.Sprintf("record %d changed since destinations were listed", applicationID))
	}

	target, err := s.registry.CheckTransition(*app, domain.NewLedger(entries), req.TargetStep)
	if err != nil {
		s.LogDebug(ctx, "Transition refused", slog.Int64("application_id", applicationID), slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.checkEligibility(*app, target.Code); err != nil {
		return nil, err
	}

	return s.moveCursor(ctx, app, target.Code, domain.ReasonManual, actorID)
}

// SetCheckpointStatus accepts or rejects the checkpoint the record sits on.
// Neither outcome changes the ledger or the completed step. Acceptance is
// refused when the next step is already committed.
func (s *residenceService) SetCheckpointStatus(ctx context.Context, applicationID int64, checkpointStep string, status domain.CheckpointStatus, actorID string) (_ *domain.ResidenceApplication, err error) {
	const op = "checkpoint"
	ctx, span := s.startSpan(ctx, op, applicationID)
	span.SetAttributes(attribute.String("residence.step", checkpointStep), attribute.String("residence.status", string(status)))
	start := time.Now()
	defer func() {
		s.metrics.ObserveOperation(op, time.Since(start))
		if err != nil {
			s.metrics.IncrementRejection(op, rejectionCause(err))
		}
		endSpan(span, err)
	}()

	if !status.Valid() {
		verr := apperrors.NewValidationError()
		verr.Add("status", "status must be accepted or rejected")
		return nil, verr
	}

	app, entries, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	target, reason, err := s.registry.CheckpointTarget(*app, domain.NewLedger(entries), checkpointStep, status)
	if err != nil {
		return nil, err
	}

	updated, err := s.moveCursor(ctx, app, target, reason, actorID)
	if err != nil {
		return nil, err
	}
	s.track(actorID, EventCheckpointDecided, map[string]any{
		"application_id": applicationID,
		"step":           checkpointStep,
		"status":         string(status),
	})
	return updated, nil
}

// OpenRecord creates a case at the first step of its kind with an empty ledger.
func (s *residenceService) OpenRecord(ctx context.Context, req dto.OpenResidenceRequest, actorID string) (_ *domain.ResidenceApplication, err error) {
	ctx, span := s.startSpan(ctx, "open_record", 0)
	defer func() { endSpan(span, err) }()

	verr := apperrors.NewValidationError()
	if !req.Kind.Valid() {
		verr.Add("kind", "kind must be primary or family")
	}
	if req.SalePrice.IsNegative() {
		verr.Add("salePrice", "sale price cannot be negative")
	}
	if req.PaidAmount.IsNegative() {
		verr.Add("paidAmount", "paid amount cannot be negative")
	}
	if req.ParentID != nil && req.Kind == domain.KindPrimary {
		verr.Add("parentId", "only family residences reference a parent")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if req.ParentID != nil {
		parent, err := s.repo.FindApplicationByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				verr.Add("parentId", "parent residence does not exist")
				return nil, verr
			}
			return nil, fmt.Errorf("failed to load parent residence %d: %w", *req.ParentID, err)
		}
		if parent.Kind != domain.KindPrimary {
			verr.Add("parentId", "parent must be a primary residence")
			return nil, verr
		}
	}

	first, err := s.registry.First(req.Kind)
	if err != nil {
		return nil, err
	}

	now := s.now()
	app := domain.ResidenceApplication{
		Kind:          req.Kind,
		ParentID:      req.ParentID,
		CurrentStep:   first.Code,
		CompletedStep: 0,
		SalePrice:     req.SalePrice,
		PaidAmount:    req.PaidAmount,
		Hold:          req.Hold,
		Remarks:       strings.TrimSpace(req.Remarks),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
			Version:       1,
		},
	}
	if err := s.repo.SaveApplication(ctx, &app); err != nil {
		s.LogError(ctx, err, "Failed to save residence", slog.String("kind", string(req.Kind)))
		return nil, fmt.Errorf("failed to open residence: %w", err)
	}

	s.LogInfo(ctx, "Residence opened", slog.Int64("application_id", app.ID), slog.String("kind", string(app.Kind)))
	s.track(actorID, EventResidenceOpened, map[string]any{
		"application_id": app.ID,
		"kind":           string(app.Kind),
	})
	return &app, nil
}

// UpdateRemarks replaces the latest remark and appends it to the history.
func (s *residenceService) UpdateRemarks(ctx context.Context, applicationID int64, req dto.UpdateRemarksRequest, actorID string) (_ *domain.ResidenceApplication, err error) {
	ctx, span := s.startSpan(ctx, "update_remarks", applicationID)
	defer func() { endSpan(span, err) }()

	remarks := strings.TrimSpace(req.Remarks)
	if remarks == "" {
		verr := apperrors.NewValidationError()
		verr.Add("remarks", "remarks are required")
		return nil, verr
	}

	app, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if req.ExpectedVersion > 0 && req.ExpectedVersion != app.Version {
		return nil, apperrors.NewConflictError(fmt.Sprintf("record %d changed since it was read", applicationID))
	}

	now := s.now()
	updated := *app
	updated.Remarks = remarks
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID
	if err := s.repo.UpdateApplication(ctx, updated, app.Version); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update remarks of residence %d: %w", applicationID, err)
	}
	updated.Version = app.Version + 1

	if s.remarks != nil {
		s.bestEffort(ctx, "append remark", func(cctx context.Context) error {
			return s.remarks.AppendRemark(cctx, domain.RemarkEntry{
				ApplicationID: applicationID,
				Remarks:       remarks,
				Actor:         actorID,
				CreatedAt:     now,
			})
		})
	}
	s.track(actorID, EventRemarksUpdated, map[string]any{"application_id": applicationID})
	return &updated, nil
}

// moveCursor writes the new current step, then records the move in the audit
// log. The audit append does not roll the move back.
func (s *residenceService) moveCursor(ctx context.Context, app *domain.ResidenceApplication, target string, reason domain.TransitionReason, actorID string) (*domain.ResidenceApplication, error) {
	now := s.now()
	updated := *app
	updated.CurrentStep = target
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID

	if err := s.repo.UpdateApplication(ctx, updated, app.Version); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogDebug(ctx, "Cursor move lost a concurrent update", slog.Int64("application_id", app.ID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to move cursor", slog.Int64("application_id", app.ID))
		return nil, fmt.Errorf("failed to move residence %d to step %s: %w", app.ID, target, err)
	}
	updated.Version = app.Version + 1

	if s.transitions != nil {
		s.bestEffort(ctx, "append transition", func(cctx context.Context) error {
			return s.transitions.AppendTransition(cctx, domain.TransitionEntry{
				ApplicationID: app.ID,
				From:          app.CurrentStep,
				To:            target,
				Reason:        reason,
				Actor:         actorID,
				OccurredAt:    now,
			})
		})
	}

	s.LogInfo(ctx, "Cursor moved",
		slog.Int64("application_id", app.ID),
		slog.String("from", app.CurrentStep),
		slog.String("to", target),
		slog.String("reason", string(reason)))
	s.metrics.IncrementTransition(string(app.Kind), string(reason))
	s.track(actorID, EventCursorMoved, map[string]any{
		"application_id": app.ID,
		"from":           app.CurrentStep,
		"to":             target,
		"reason":         string(reason),
	})
	return &updated, nil
}

func (s *residenceService) findApplication(ctx context.Context, applicationID int64) (*domain.ResidenceApplication, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load residence %d: %w", applicationID, err)
	}
	return app, nil
}

func (s *residenceService) load(ctx context.Context, applicationID int64) (*domain.ResidenceApplication, []domain.LedgerEntry, error) {
	app, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.repo.FindLedgerEntries(ctx, applicationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ledger of residence %d: %w", applicationID, err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return app, entries, nil
}

func (s *residenceService) checkEligibility(app domain.ResidenceApplication, stepCode string) error {
	if !s.enforceEligibility {
		return nil
	}
	result, err := s.registry.EvaluateEligibility(app, stepCode)
	if err != nil {
		return err
	}
	if !result.Eligible {
		return fmt.Errorf("%w: %s", apperrors.ErrIneligible, result.Reason)
	}
	return nil
}

// checkReferences confirms the currency and the charge target exist. Both
// lookups run concurrently; unknown ids become field errors.
func (s *residenceService) checkReferences(ctx context.Context, payload domain.StepPayload) error {
	if s.references == nil {
		return nil
	}
	currencyOK, targetOK := true, true

	g, gctx := errgroup.WithContext(ctx)
	if payload.CurrencyID != nil {
		id := *payload.CurrencyID
		g.Go(func() error {
			ok, err := s.references.Exists(gctx, domain.RefCurrency, id)
			currencyOK = ok
			return err
		})
	}
	if payload.ChargeTargetType != nil && payload.ChargeTargetID != nil {
		kind := domain.ReferenceForChargeTarget(*payload.ChargeTargetType)
		id := *payload.ChargeTargetID
		g.Go(func() error {
			ok, err := s.references.Exists(gctx, kind, id)
			targetOK = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to check reference data: %w", err)
	}

	verr := apperrors.NewValidationError()
	if !currencyOK {
		verr.Add(workflow.FieldCurrencyID, "currency "+strconv.FormatInt(*payload.CurrencyID, 10)+" does not exist")
	}
	if !targetOK {
		verr.Add(workflow.FieldChargeTarget, string(*payload.ChargeTargetType)+" "+strconv.FormatInt(*payload.ChargeTargetID, 10)+" does not exist")
	}
	return verr.OrNil()
}

// bestEffort runs fn detached from the caller's cancellation but bounded by
// the collaborator timeout. Failures are logged, never returned.
func (s *residenceService) bestEffort(ctx context.Context, what string, fn func(context.Context) error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.collaboratorTimeout)
	defer cancel()
	if err := fn(cctx); err != nil {
		s.LogWarn(ctx, err, "Best-effort call failed", slog.String("call", what))
	}
}

func (s *residenceService) track(actorID, event string, props map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(actorID, event, props)
}

func (s *residenceService) startSpan(ctx context.Context, name string, applicationID int64) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "residence."+name)
	if applicationID > 0 {
		span.SetAttributes(attribute.Int64("residence.id", applicationID))
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// rejectionCause labels an error for the rejection counter.
func rejectionCause(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	case errors.Is(err, apperrors.ErrIllegalTransition):
		return "illegal"
	case errors.Is(err, apperrors.ErrIneligible):
		return "ineligible"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
