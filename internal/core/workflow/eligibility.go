package workflow

import (
	"fmt"

	"github.com/SscSPs/travel_desk_backend/internal/apperrors"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PaidPercentage is paid/sale as a percentage. A zero sale price yields zero.
func PaidPercentage(paid, sale decimal.Decimal) decimal.Decimal {
	if sale.IsZero() {
		return decimal.Zero
	}
	return paid.Div(sale).Mul(hundred).Round(2)
}

// EvaluateEligibility applies the step's payment rule to the application.
// Steps without a rule are always eligible.
func (r *Registry) EvaluateEligibility(app domain.ResidenceApplication, stepCode string) (domain.Eligibility, error) {
	step, ok := r.Lookup(app.Kind, stepCode)
	if !ok {
		return domain.Eligibility{}, fmt.Errorf("%w: step %q does not exist for %s residences", apperrors.ErrNotFound, stepCode, app.Kind)
	}

	result := domain.Eligibility{
		StepCode:   stepCode,
		Eligible:   true,
		Paid:       app.PaidAmount,
		Percentage: PaidPercentage(app.PaidAmount, app.SalePrice),
		Reason:     "no payment threshold for this step",
	}

	rule := step.Payment
	if rule == nil {
		return result, nil
	}

	if rule.FullPayment {
		result.Required = app.SalePrice
		result.Eligible = result.Percentage.GreaterThanOrEqual(hundred)
		if result.Eligible {
			result.Reason = "sale price fully paid"
		} else {
			result.Reason = fmt.Sprintf("full payment required, %s%% paid", result.Percentage.StringFixed(2))
		}
		return result, nil
	}

	result.Required = rule.MinPaid
	result.Eligible = app.PaidAmount.GreaterThanOrEqual(rule.MinPaid)
	if result.Eligible {
		result.Reason = fmt.Sprintf("paid amount meets the %s threshold", rule.MinPaid.String())
	} else {
		result.Reason = fmt.Sprintf("paid amount %s is below the %s threshold", app.PaidAmount.String(), rule.MinPaid.String())
	}
	return result, nil
}
