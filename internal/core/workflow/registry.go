// Package workflow holds the residence step catalog and the pure rules that
// decide eligibility, field validity and legal cursor moves. Nothing here
// touches storage; the services package feeds it loaded state.
package workflow

import (
	"fmt"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Step codes of the primary residence sequence.
const (
	StepOfferLetter          = "1"
	StepOfferLetterSubmitted = "1a"
	StepInsurance            = "2"
	StepLabourCard           = "3"
	StepEVisa                = "4"
	StepEVisaSubmitted       = "4a"
	StepChangeStatus         = "5"
	StepMedical              = "6"
	StepEmiratesID           = "7"
	StepVisaStamping         = "8"
	StepCompleted            = "9"
)

// Step codes of the family residence sequence.
const (
	FamilyStepEVisa        = "1"
	FamilyStepChangeStatus = "2"
	FamilyStepMedical      = "3"
	FamilyStepEmiratesID   = "4"
	FamilyStepVisaStamping = "5"
	FamilyStepCompleted    = "6"
)

// Field keys shared by every transaction step.
const (
	FieldCost             = "cost"
	FieldCurrencyID       = "currency_id"
	FieldChargeTarget     = "charge_target"
	FieldFile             = "file"
	FieldOfferLetterNo    = "offer_letter_number"
	FieldPolicyNumber     = "policy_number"
	FieldLabourCardNumber = "labour_card_number"
	FieldEntryPermitNo    = "entry_permit_number"
	FieldEmiratesIDNumber = "emirates_id_number"
	FieldExpiryDate       = "expiry_date"
)

// Registry is the static, ordered catalog of workflow steps per kind.
type Registry struct {
	steps map[domain.ResidenceKind][]domain.StepDefinition
	index map[domain.ResidenceKind]map[string]int
}

// DefaultRegistry is the catalog used by the application.
var DefaultRegistry = NewRegistry()

// NewRegistry builds the primary and family step catalogs.
func NewRegistry() *Registry {
	r := &Registry{
		steps: map[domain.ResidenceKind][]domain.StepDefinition{
			domain.KindPrimary: primarySteps(),
			domain.KindFamily:  familySteps(),
		},
		index: make(map[domain.ResidenceKind]map[string]int),
	}
	for kind, steps := range r.steps {
		idx := make(map[string]int, len(steps))
		for i, s := range steps {
			idx[s.Code] = i
		}
		r.index[kind] = idx
	}
	return r
}

// StepsFor returns the ordered steps of kind. The slice is a copy.
func (r *Registry) StepsFor(kind domain.ResidenceKind) ([]domain.StepDefinition, error) {
	steps, ok := r.steps[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown residence kind %q", apperrors.ErrValidation, kind)
	}
	out := make([]domain.StepDefinition, len(steps))
	copy(out, steps)
	return out, nil
}

// Lookup finds the definition of code within kind.
func (r *Registry) Lookup(kind domain.ResidenceKind, code string) (domain.StepDefinition, bool) {
	i, ok := r.index[kind][code]
	if !ok {
		return domain.StepDefinition{}, false
	}
	return r.steps[kind][i], true
}

// Position is the index of code in kind's sequence, or -1.
func (r *Registry) Position(kind domain.ResidenceKind, code string) int {
	i, ok := r.index[kind][code]
	if !ok {
		return -1
	}
	return i
}

// First is the step a new record of kind starts on.
func (r *Registry) First(kind domain.ResidenceKind) (domain.StepDefinition, error) {
	steps, ok := r.steps[kind]
	if !ok || len(steps) == 0 {
		return domain.StepDefinition{}, fmt.Errorf("%w: unknown residence kind %q", apperrors.ErrValidation, kind)
	}
	return steps[0], nil
}

func commonFields() []domain.FieldSpec {
	return []domain.FieldSpec{
		{Key: FieldCost, Label: "Cost", Required: true, Kind: domain.FieldDecimal},
		{Key: FieldCurrencyID, Label: "Currency", Required: true, Kind: domain.FieldReference},
		{Key: FieldChargeTarget, Label: "Charge On", Required: true, Kind: domain.FieldChargeTarget},
		{Key: FieldFile, Label: "Document", Required: false, Kind: domain.FieldFile},
	}
}

func withFields(extra ...domain.FieldSpec) []domain.FieldSpec {
	return append(commonFields(), extra...)
}

func cost(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func minPaid(v int64) *domain.PaymentRule {
	return &domain.PaymentRule{MinPaid: decimal.NewFromInt(v)}
}

func fullPayment() *domain.PaymentRule {
	return &domain.PaymentRule{FullPayment: true}
}

func primarySteps() []domain.StepDefinition {
	return []domain.StepDefinition{
		{
			Code: StepOfferLetter, Ordinal: 1, DisplayName: "Offer Letter", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldOfferLetterNo, Label: "Offer Letter No.", Kind: domain.FieldText}),
			DefaultCost: cost(50), Payment: minPaid(2000),
		},
		{
			Code: StepOfferLetterSubmitted, Ordinal: 1, DisplayName: "Offer Letter Submitted",
			Checkpoint: &domain.CheckpointDefinition{Origin: StepOfferLetter, Next: StepInsurance},
			Payment:    minPaid(2000),
		},
		{
			Code: StepInsurance, Ordinal: 2, DisplayName: "Insurance", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldPolicyNumber, Label: "Policy No.", Kind: domain.FieldText}),
			DefaultCost: cost(145), Payment: minPaid(2000),
		},
		{
			Code: StepLabourCard, Ordinal: 3, DisplayName: "Labour Card", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldLabourCardNumber, Label: "Labour Card No.", Required: true, Kind: domain.FieldText}),
			DefaultCost: cost(250), Payment: minPaid(3000),
		},
		{
			Code: StepEVisa, Ordinal: 4, DisplayName: "E-Visa", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldEntryPermitNo, Label: "Entry Permit No.", Kind: domain.FieldText}),
			DefaultCost: cost(1150), Payment: minPaid(4000),
		},
		{
			Code: StepEVisaSubmitted, Ordinal: 4, DisplayName: "E-Visa Submitted",
			Checkpoint: &domain.CheckpointDefinition{Origin: StepEVisa, Next: StepChangeStatus},
			Payment:    minPaid(4000),
		},
		{
			Code: StepChangeStatus, Ordinal: 5, DisplayName: "Change Status", RequiresTransaction: true,
			Fields: withFields(), DefaultCost: cost(650), Payment: minPaid(4000),
		},
		{
			Code: StepMedical, Ordinal: 6, DisplayName: "Medical", RequiresTransaction: true,
			Fields: withFields(), DefaultCost: cost(320), Payment: minPaid(4000),
		},
		{
			Code: StepEmiratesID, Ordinal: 7, DisplayName: "Emirates ID", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldEmiratesIDNumber, Label: "Emirates ID No.", Required: true, Kind: domain.FieldText}),
			DefaultCost: cost(370), Payment: minPaid(4000),
		},
		{
			Code: StepVisaStamping, Ordinal: 8, DisplayName: "Visa Stamping", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldExpiryDate, Label: "Visa Expiry Date", Kind: domain.FieldDate}),
			DefaultCost: cost(120), Payment: fullPayment(),
		},
		{Code: StepCompleted, Ordinal: 9, DisplayName: "Completed"},
	}
}

// Family thresholds follow the step numbers of the shared threshold table.
func familySteps() []domain.StepDefinition {
	return []domain.StepDefinition{
		{
			Code: FamilyStepEVisa, Ordinal: 1, DisplayName: "E-Visa", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldEntryPermitNo, Label: "Entry Permit No.", Kind: domain.FieldText}),
			DefaultCost: cost(1150), Payment: minPaid(2000),
		},
		{
			Code: FamilyStepChangeStatus, Ordinal: 2, DisplayName: "Change Status", RequiresTransaction: true,
			Fields: withFields(), DefaultCost: cost(650), Payment: minPaid(2000),
		},
		{
			Code: FamilyStepMedical, Ordinal: 3, DisplayName: "Medical", RequiresTransaction: true,
			Fields: withFields(), DefaultCost: cost(320), Payment: minPaid(3000),
		},
		{
			Code: FamilyStepEmiratesID, Ordinal: 4, DisplayName: "Emirates ID", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldEmiratesIDNumber, Label: "Emirates ID No.", Required: true, Kind: domain.FieldText}),
			DefaultCost: cost(370), Payment: minPaid(4000),
		},
		{
			Code: FamilyStepVisaStamping, Ordinal: 5, DisplayName: "Visa Stamping", RequiresTransaction: true,
			Fields:      withFields(domain.FieldSpec{Key: FieldExpiryDate, Label: "Visa Expiry Date", Required: true, Kind: domain.FieldDate}),
			DefaultCost: cost(120), Payment: minPaid(4000),
		},
		{Code: FamilyStepCompleted, Ordinal: 6, DisplayName: "Completed"},
	}
}
