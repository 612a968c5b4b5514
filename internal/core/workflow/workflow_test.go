package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/SscSPs/travel_desk_backend/internal/core/workflow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func committedEntry(step string) domain.LedgerEntry {
	cost := decimal.NewFromInt(50)
	currency := int64(1)
	target := domain.ChargeAccount
	targetID := int64(7)
	now := time.Now()
	return domain.LedgerEntry{
		ApplicationID:    1,
		StepCode:         step,
		Cost:             &cost,
		CurrencyID:       &currency,
		ChargeTargetType: &target,
		ChargeTargetID:   &targetID,
		RecordedAt:       &now,
	}
}

func codes(steps []domain.StepDefinition) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Code
	}
	return out
}

func primaryApp(current string) domain.ResidenceApplication {
	return domain.ResidenceApplication{ID: 1, Kind: domain.KindPrimary, CurrentStep: current, AuditFields: domain.AuditFields{Version: 3}}
}

func TestRegistry_StepsFor(t *testing.T) {
	r := workflow.NewRegistry()

	primary, err := r.StepsFor(domain.KindPrimary)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1a", "2", "3", "4", "4a", "5", "6", "7", "8", "9"}, codes(primary))

	family, err := r.StepsFor(domain.KindFamily)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, codes(family))

	_, err = r.StepsFor("corporate")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegistry_CheckpointsShareOrdinalAndTakeNoTransaction(t *testing.T) {
	r := workflow.NewRegistry()
	for _, code := range []string{workflow.StepOfferLetterSubmitted, workflow.StepEVisaSubmitted} {
		step, ok := r.Lookup(domain.KindPrimary, code)
		require.True(t, ok)
		require.NotNil(t, step.Checkpoint)
		assert.False(t, step.RequiresTransaction)

		origin, ok := r.Lookup(domain.KindPrimary, step.Checkpoint.Origin)
		require.True(t, ok)
		assert.Equal(t, origin.Ordinal, step.Ordinal)
	}

	family, err := r.StepsFor(domain.KindFamily)
	require.NoError(t, err)
	for _, s := range family {
		assert.False(t, s.IsCheckpoint(), "family step %s", s.Code)
	}
}

func TestRegistry_StepsForReturnsCopy(t *testing.T) {
	r := workflow.NewRegistry()
	steps, err := r.StepsFor(domain.KindPrimary)
	require.NoError(t, err)
	steps[0].DisplayName = "changed"

	again, err := r.StepsFor(domain.KindPrimary)
	require.NoError(t, err)
	assert.Equal(t, "Offer Letter", again[0].DisplayName)
}

func TestEvaluateEligibility(t *testing.T) {
	r := workflow.NewRegistry()

	tests := []struct {
		name     string
		kind     domain.ResidenceKind
		step     string
		paid     int64
		sale     int64
		eligible bool
	}{
		{"offer letter below threshold", domain.KindPrimary, "1", 1999, 10000, false},
		{"offer letter at threshold", domain.KindPrimary, "1", 2000, 10000, true},
		{"checkpoint shares threshold", domain.KindPrimary, "1a", 2000, 10000, true},
		{"labour card needs 3000", domain.KindPrimary, "3", 2500, 10000, false},
		{"emirates id needs 4000", domain.KindPrimary, "7", 4000, 10000, true},
		{"stamping needs full payment", domain.KindPrimary, "8", 9999, 10000, false},
		{"stamping fully paid", domain.KindPrimary, "8", 10000, 10000, true},
		{"stamping with zero sale price", domain.KindPrimary, "8", 500, 0, false},
		{"completed has no threshold", domain.KindPrimary, "9", 0, 0, true},
		{"family emirates id unpaid", domain.KindFamily, "4", 0, 5000, false},
		{"family completed", domain.KindFamily, "6", 0, 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := domain.ResidenceApplication{
				Kind:       tt.kind,
				PaidAmount: decimal.NewFromInt(tt.paid),
				SalePrice:  decimal.NewFromInt(tt.sale),
			}
			got, err := r.EvaluateEligibility(app, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, got.Eligible, got.Reason)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestEvaluateEligibility_UnknownStep(t *testing.T) {
	r := workflow.NewRegistry()
	_, err := r.EvaluateEligibility(domain.ResidenceApplication{Kind: domain.KindFamily}, "1a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPaidPercentage(t *testing.T) {
	assert.True(t, workflow.PaidPercentage(decimal.NewFromInt(10), decimal.Zero).IsZero())
	assert.Equal(t, "50", workflow.PaidPercentage(decimal.NewFromInt(50), decimal.NewFromInt(100)).String())
}

func TestLegalDestinations_NewRecordCanReachEveryOtherStep(t *testing.T) {
	r := workflow.NewRegistry()
	dest, err := r.LegalDestinations(primaryApp("1"), domain.Ledger{})
	require.NoError(t, err)

	assert.Empty(t, dest.Backward)
	assert.Equal(t, []string{"1a", "2", "3", "4", "4a", "5", "6", "7", "8", "9"}, codes(dest.Forward))
	assert.Equal(t, int64(3), dest.Version)
}

func TestLegalDestinations_CommittedStepsAreExcludedBothWays(t *testing.T) {
	r := workflow.NewRegistry()
	ledger := domain.NewLedger([]domain.LedgerEntry{committedEntry("1"), committedEntry("6")})

	dest, err := r.LegalDestinations(primaryApp("4"), ledger)
	require.NoError(t, err)

	assert.Equal(t, []string{"1a", "2", "3"}, codes(dest.Backward))
	assert.Equal(t, []string{"4a", "5", "7", "8", "9"}, codes(dest.Forward))
}

func TestLegalDestinations_PartialEntryDoesNotLock(t *testing.T) {
	r := workflow.NewRegistry()
	partial := committedEntry("2")
	partial.RecordedAt = nil

	dest, err := r.LegalDestinations(primaryApp("1"), domain.NewLedger([]domain.LedgerEntry{partial}))
	require.NoError(t, err)
	assert.Contains(t, codes(dest.Forward), "2")
}

func TestLegalDestinations_AllLocked(t *testing.T) {
	r := workflow.NewRegistry()
	var entries []domain.LedgerEntry
	for _, code := range []string{"1", "2", "3", "4", "5"} {
		entries = append(entries, committedEntry(code))
	}
	app := domain.ResidenceApplication{Kind: domain.KindFamily, CurrentStep: "6"}

	dest, err := r.LegalDestinations(app, domain.NewLedger(entries))
	require.NoError(t, err)
	assert.True(t, dest.Empty())
}

func TestLegalDestinations_UnknownCurrentStep(t *testing.T) {
	r := workflow.NewRegistry()
	_, err := r.LegalDestinations(domain.ResidenceApplication{Kind: domain.KindFamily, CurrentStep: "1a"}, domain.Ledger{})
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestCheckTransition(t *testing.T) {
	r := workflow.NewRegistry()
	ledger := domain.NewLedger([]domain.LedgerEntry{committedEntry("1"), committedEntry("5")})

	tests := []struct {
		name    string
		current string
		target  string
		reason  string
	}{
		{"forward to open step", "2", "3", ""},
		{"backward to open step", "4", "2", ""},
		{"same step", "2", "2", workflow.ReasonSameStep},
		{"committed step behind", "2", "1", workflow.ReasonCommitted},
		{"committed step ahead", "2", "5", workflow.ReasonCommitted},
		{"unknown step", "2", "10", workflow.ReasonUnknownStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := r.CheckTransition(primaryApp(tt.current), ledger, tt.target)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.target, step.Code)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrIllegalTransition)
			var terr *apperrors.TransitionError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.reason, terr.Reason)
		})
	}
}

func TestCheckTransition_CommittedAlwaysLocked(t *testing.T) {
	r := workflow.NewRegistry()
	steps, err := r.StepsFor(domain.KindPrimary)
	require.NoError(t, err)
	ledger := domain.NewLedger([]domain.LedgerEntry{committedEntry("3")})

	for _, s := range steps {
		if s.Code == "3" {
			continue
		}
		_, err := r.CheckTransition(primaryApp(s.Code), ledger, "3")
		assert.ErrorIs(t, err, apperrors.ErrIllegalTransition, "from %s", s.Code)
	}
}

func TestCheckpointTarget(t *testing.T) {
	r := workflow.NewRegistry()
	none := domain.NewLedger(nil)

	to, reason, err := r.CheckpointTarget(primaryApp("1a"), none, "1a", domain.CheckpointAccepted)
	require.NoError(t, err)
	assert.Equal(t, "2", to)
	assert.Equal(t, domain.ReasonCheckpointAccepted, reason)

	to, reason, err = r.CheckpointTarget(primaryApp("4a"), none, "4a", domain.CheckpointRejected)
	require.NoError(t, err)
	assert.Equal(t, "4", to)
	assert.Equal(t, domain.ReasonCheckpointRejected, reason)

	_, _, err = r.CheckpointTarget(primaryApp("2"), none, "2", domain.CheckpointAccepted)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)

	_, _, err = r.CheckpointTarget(primaryApp("2"), none, "1a", domain.CheckpointAccepted)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)

	_, _, err = r.CheckpointTarget(primaryApp("1a"), none, "1a", "pending")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = r.CheckpointTarget(domain.ResidenceApplication{Kind: domain.KindFamily, CurrentStep: "1"}, none, "1a", domain.CheckpointAccepted)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestCheckpointTarget_AcceptDoesNotEnterCommittedStep(t *testing.T) {
	r := workflow.NewRegistry()
	ledger := domain.NewLedger([]domain.LedgerEntry{committedEntry("1"), committedEntry("2")})

	_, _, err := r.CheckpointTarget(primaryApp("1a"), ledger, "1a", domain.CheckpointAccepted)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)

	to, reason, err := r.CheckpointTarget(primaryApp("1a"), ledger, "1a", domain.CheckpointRejected)
	require.NoError(t, err)
	assert.Equal(t, "1", to)
	assert.Equal(t, domain.ReasonCheckpointRejected, reason)
}

func TestCheckCommitTarget(t *testing.T) {
	r := workflow.NewRegistry()

	step, err := r.CheckCommitTarget(primaryApp("2"), "2")
	require.NoError(t, err)
	assert.Equal(t, 2, step.Ordinal)

	_, err = r.CheckCommitTarget(primaryApp("2"), "3")
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)

	_, err = r.CheckCommitTarget(primaryApp("1a"), "1a")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = r.CheckCommitTarget(primaryApp("2"), "42")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdvanceCompletion_IsMonotonic(t *testing.T) {
	r := workflow.NewRegistry()
	steps, err := r.StepsFor(domain.KindPrimary)
	require.NoError(t, err)

	completed := 0
	// Commit in a scrambled order; completion may only grow.
	for _, i := range []int{3, 0, 8, 2, 6} {
		next := workflow.AdvanceCompletion(completed, steps[i])
		assert.GreaterOrEqual(t, next, completed)
		completed = next
	}
	assert.Equal(t, 7, completed)
}

func ptrDecimal(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func ptrInt(v int64) *int64 { return &v }

func ptrTarget(t domain.ChargeTargetType) *domain.ChargeTargetType { return &t }

func TestValidatePayload(t *testing.T) {
	r := workflow.NewRegistry()
	emiratesID, _ := r.Lookup(domain.KindPrimary, workflow.StepEmiratesID)
	familyStamping, _ := r.Lookup(domain.KindFamily, workflow.FamilyStepVisaStamping)
	insurance, _ := r.Lookup(domain.KindPrimary, workflow.StepInsurance)
	checkpoint, _ := r.Lookup(domain.KindPrimary, workflow.StepOfferLetterSubmitted)

	valid := domain.StepPayload{
		Cost:             ptrDecimal(145),
		CurrencyID:       ptrInt(1),
		ChargeTargetType: ptrTarget(domain.ChargeAccount),
		ChargeTargetID:   ptrInt(3),
	}

	t.Run("valid insurance", func(t *testing.T) {
		details, verr := workflow.ValidatePayload(insurance, valid)
		assert.Nil(t, verr)
		assert.Empty(t, details)
	})

	t.Run("all required fields missing are named together", func(t *testing.T) {
		_, verr := workflow.ValidatePayload(insurance, domain.StepPayload{})
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldCost)
		assert.Contains(t, verr.Fields, workflow.FieldCurrencyID)
		assert.Contains(t, verr.Fields, workflow.FieldChargeTarget)
		assert.ErrorIs(t, verr, apperrors.ErrValidation)
	})

	t.Run("non-positive cost", func(t *testing.T) {
		p := valid
		p.Cost = ptrDecimal(0)
		_, verr := workflow.ValidatePayload(insurance, p)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldCost)
	})

	t.Run("cost beyond cents or column range", func(t *testing.T) {
		for _, raw := range []string{"0.001", "12.345", "1000000000000"} {
			p := valid
			cost := decimal.RequireFromString(raw)
			p.Cost = &cost
			_, verr := workflow.ValidatePayload(insurance, p)
			require.NotNil(t, verr, raw)
			assert.Contains(t, verr.Fields, workflow.FieldCost, raw)
		}

		p := valid
		cost := decimal.RequireFromString("999999999999.99")
		p.Cost = &cost
		_, verr := workflow.ValidatePayload(insurance, p)
		assert.Nil(t, verr)

		cost = decimal.RequireFromString("12.500")
		_, verr = workflow.ValidatePayload(insurance, p)
		assert.Nil(t, verr)
	})

	t.Run("charge target without id", func(t *testing.T) {
		p := valid
		p.ChargeTargetType = ptrTarget(domain.ChargeSupplier)
		p.ChargeTargetID = nil
		_, verr := workflow.ValidatePayload(insurance, p)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldChargeTarget)
	})

	t.Run("charge target of unknown type", func(t *testing.T) {
		p := valid
		p.ChargeTargetType = ptrTarget("customer")
		_, verr := workflow.ValidatePayload(insurance, p)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldChargeTarget)
	})

	t.Run("emirates id requires its number", func(t *testing.T) {
		_, verr := workflow.ValidatePayload(emiratesID, valid)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldEmiratesIDNumber)

		p := valid
		p.Details = map[string]string{workflow.FieldEmiratesIDNumber: " 784-1990-1234567-1 ", "unknown": "x"}
		details, verr := workflow.ValidatePayload(emiratesID, p)
		assert.Nil(t, verr)
		assert.Equal(t, map[string]string{workflow.FieldEmiratesIDNumber: "784-1990-1234567-1"}, details)
	})

	t.Run("family stamping requires a well-formed expiry date", func(t *testing.T) {
		_, verr := workflow.ValidatePayload(familyStamping, valid)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, workflow.FieldExpiryDate)

		p := valid
		p.Details = map[string]string{workflow.FieldExpiryDate: "31/12/2027"}
		_, verr = workflow.ValidatePayload(familyStamping, p)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields[workflow.FieldExpiryDate], "YYYY-MM-DD")

		p.Details = map[string]string{workflow.FieldExpiryDate: "2027-12-31"}
		_, verr = workflow.ValidatePayload(familyStamping, p)
		assert.Nil(t, verr)
	})

	t.Run("checkpoint takes no transaction", func(t *testing.T) {
		_, verr := workflow.ValidatePayload(checkpoint, valid)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "step")
	})
}
