package services_test

import (
	"context"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock ResidenceRepositoryWithTx ---
type MockResidenceRepository struct {
	mock.Mock
}

func (m *MockResidenceRepository) FindApplicationByID(ctx context.Context, applicationID int64) (*domain.ResidenceApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResidenceApplication), args.Error(1)
}

func (m *MockResidenceRepository) FindLedgerEntries(ctx context.Context, applicationID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockResidenceRepository) SaveApplication(ctx context.Context, app *domain.ResidenceApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockResidenceRepository) SaveStepCommit(ctx context.Context, app domain.ResidenceApplication, entry domain.LedgerEntry, expectedVersion int64) error {
	args := m.Called(ctx, app, entry, expectedVersion)
	return args.Error(0)
}

func (m *MockResidenceRepository) UpdateApplication(ctx context.Context, app domain.ResidenceApplication, expectedVersion int64) error {
	args := m.Called(ctx, app, expectedVersion)
	return args.Error(0)
}

func (m *MockResidenceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockResidenceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockResidenceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TransitionLog ---
type MockTransitionLog struct {
	mock.Mock
}

func (m *MockTransitionLog) AppendTransition(ctx context.Context, entry domain.TransitionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTransitionLog) ListTransitions(ctx context.Context, applicationID int64) ([]domain.TransitionEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransitionEntry), args.Error(1)
}

// --- Mock RemarksLog ---
type MockRemarksLog struct {
	mock.Mock
}

func (m *MockRemarksLog) AppendRemark(ctx context.Context, entry domain.RemarkEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ReferenceLookup ---
type MockReferenceLookup struct {
	mock.Mock
}

func (m *MockReferenceLookup) Exists(ctx context.Context, kind domain.ReferenceKind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock AttachmentStore ---
type MockAttachmentStore struct {
	mock.Mock
}

func (m *MockAttachmentStore) Save(ctx context.Context, applicationID int64, stepCode string, file domain.Attachment) (string, error) {
	args := m.Called(ctx, applicationID, stepCode, file)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}
