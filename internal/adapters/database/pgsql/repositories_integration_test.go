//go:build integration

package pgsql

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/SscSPs/travel_desk_backend/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRepositories starts a disposable PostgreSQL container, applies the
// migrations and returns a provider bound to it.
func setupRepositories(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("travel_desk"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrationsDir, err := filepath.Abs("../../../../migrations")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, database.RunMigrations(dsn, "file://"+migrationsDir, logger))

	pool, err := database.NewPgxPool(ctx, dsn, 4, true)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `INSERT INTO accounts (id, name) VALUES (10, 'Walk-in customer')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO suppliers (id, name, is_active) VALUES (20, 'Typing centre', FALSE)`)
	require.NoError(t, err)

	return NewRepositoryProvider(pool)
}

func newApplication() *domain.ResidenceApplication {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.ResidenceApplication{
		Kind:        domain.KindPrimary,
		CurrentStep: "1",
		SalePrice:   decimal.NewFromInt(5000),
		PaidAmount:  decimal.NewFromInt(2500),
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: "staff-1", LastUpdatedAt: now, LastUpdatedBy: "staff-1", Version: 1,
		},
	}
}

func TestIntegration_ResidenceRepository_CommitAndConflict(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()
	repo := repos.ResidenceRepo

	app := newApplication()
	require.NoError(t, repo.SaveApplication(ctx, app))
	require.NotZero(t, app.ID)

	loaded, err := repo.FindApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindPrimary, loaded.Kind)
	assert.True(t, loaded.PaidAmount.Equal(decimal.NewFromInt(2500)))

	cost := decimal.NewFromInt(50)
	currency := int64(1)
	account := domain.ChargeAccount
	accountID := int64(10)
	recorded := time.Now().UTC().Truncate(time.Millisecond)
	entry := domain.LedgerEntry{
		ApplicationID:    app.ID,
		StepCode:         "1",
		Cost:             &cost,
		CurrencyID:       &currency,
		ChargeTargetType: &account,
		ChargeTargetID:   &accountID,
		Details:          map[string]string{"offer_letter_number": "OL-1"},
		RecordedAt:       &recorded,
		RecordedBy:       "staff-1",
	}
	updated := *loaded
	updated.CompletedStep = 1
	require.NoError(t, repo.SaveStepCommit(ctx, updated, entry, loaded.Version))

	entries, err := repo.FindLedgerEntries(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsCommitted())
	assert.Equal(t, "OL-1", entries[0].Details["offer_letter_number"])

	// overwrite with a new cost at the fresh version
	newCost := decimal.NewFromInt(75)
	entry.Cost = &newCost
	require.NoError(t, repo.SaveStepCommit(ctx, updated, entry, loaded.Version+1))
	entries, err = repo.FindLedgerEntries(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Cost.Equal(newCost))

	// stale version loses and leaves the ledger untouched
	staleCost := decimal.NewFromInt(999)
	entry.Cost = &staleCost
	err = repo.SaveStepCommit(ctx, updated, entry, loaded.Version)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	entries, err = repo.FindLedgerEntries(ctx, app.ID)
	require.NoError(t, err)
	assert.True(t, entries[0].Cost.Equal(newCost))

	final, err := repo.FindApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, final.CompletedStep)
	assert.Equal(t, loaded.Version+2, final.Version)
}

func TestIntegration_ResidenceRepository_UpdateMissing(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	app := newApplication()
	app.ID = 999
	err := repos.ResidenceRepo.UpdateApplication(ctx, *app, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repos.ResidenceRepo.FindApplicationByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestIntegration_TransitionLogAndReferences(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	app := newApplication()
	require.NoError(t, repos.ResidenceRepo.SaveApplication(ctx, app))

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repos.TransitionLog.AppendTransition(ctx, domain.TransitionEntry{
		ApplicationID: app.ID, From: "1", To: "3", Reason: domain.ReasonManual, Actor: "staff-1", OccurredAt: now,
	}))
	require.NoError(t, repos.RemarksLog.AppendRemark(ctx, domain.RemarkEntry{
		ApplicationID: app.ID, Remarks: "waiting for passport copy", Actor: "staff-1", CreatedAt: now,
	}))

	moves, err := repos.TransitionLog.ListTransitions(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, domain.ReasonManual, moves[0].Reason)

	ok, err := repos.ReferenceRepo.Exists(ctx, domain.RefCurrency, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.ReferenceRepo.Exists(ctx, domain.RefAccount, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.ReferenceRepo.Exists(ctx, domain.RefSupplier, 20)
	require.NoError(t, err)
	assert.False(t, ok, "inactive suppliers do not count")
}
