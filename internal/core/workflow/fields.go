package workflow

import (
	"strings"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// ValidatePayload checks payload against the step's field schema and returns
// the sanitized details (only keys the schema knows, trimmed). Every failing
// field is reported in the returned ValidationError.
func ValidatePayload(step domain.StepDefinition, payload domain.StepPayload) (map[string]string, *apperrors.ValidationError) {
	verr := apperrors.NewValidationError()
	details := make(map[string]string)

	if !step.RequiresTransaction {
		verr.Add("step", "step "+step.Code+" does not take a transaction")
		return nil, verr
	}

	for _, f := range step.Fields {
		switch f.Kind {
		case domain.FieldDecimal:
			checkCost(f, payload.Cost, verr)
		case domain.FieldReference:
			checkReference(f, payload.CurrencyID, verr)
		case domain.FieldChargeTarget:
			checkChargeTarget(f, payload.ChargeTargetType, payload.ChargeTargetID, verr)
		case domain.FieldFile:
			if f.Required && (payload.File == nil || len(payload.File.Content) == 0) {
				verr.Add(f.Key, f.Label+" is required")
			}
		case domain.FieldText, domain.FieldDate:
			value := strings.TrimSpace(payload.Details[f.Key])
			if value == "" {
				if f.Required {
					verr.Add(f.Key, f.Label+" is required")
				}
				continue
			}
			if f.Kind == domain.FieldDate {
				if err := validate.Var(value, "datetime="+dateLayout); err != nil {
					verr.Add(f.Key, f.Label+" must be a date in YYYY-MM-DD format")
					continue
				}
			}
			details[f.Key] = value
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return details, nil
}

// Costs are stored as NUMERIC(14,2).
const costScale = 2

var maxCost = decimal.New(1, 12)

func checkCost(f domain.FieldSpec, cost *decimal.Decimal, verr *apperrors.ValidationError) {
	if cost == nil {
		if f.Required {
			verr.Add(f.Key, f.Label+" is required")
		}
		return
	}
	switch {
	case !cost.GreaterThan(decimal.Zero):
		verr.Add(f.Key, f.Label+" must be greater than zero")
	case cost.Exponent() < -costScale && !cost.Equal(cost.Round(costScale)):
		verr.Add(f.Key, f.Label+" must have at most 2 decimal places")
	case cost.GreaterThanOrEqual(maxCost):
		verr.Add(f.Key, f.Label+" must be less than "+maxCost.String())
	}
}

func checkReference(f domain.FieldSpec, id *int64, verr *apperrors.ValidationError) {
	if id == nil {
		if f.Required {
			verr.Add(f.Key, f.Label+" is required")
		}
		return
	}
	if err := validate.Var(*id, "gt=0"); err != nil {
		verr.Add(f.Key, f.Label+" is invalid")
	}
}

// checkChargeTarget requires exactly one of account or supplier, with its id.
func checkChargeTarget(f domain.FieldSpec, kind *domain.ChargeTargetType, id *int64, verr *apperrors.ValidationError) {
	if kind == nil && id == nil {
		if f.Required {
			verr.Add(f.Key, f.Label+" is required: choose an account or a supplier")
		}
		return
	}
	if kind == nil || !kind.Valid() {
		verr.Add(f.Key, f.Label+" must be either account or supplier")
		return
	}
	if id == nil || *id <= 0 {
		verr.Add(f.Key, f.Label+" requires a valid "+string(*kind)+" id")
	}
}
