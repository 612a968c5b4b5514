package domain

import "github.com/shopspring/decimal"

// Eligibility is the advisory payment check for a step.
type Eligibility struct {
	StepCode   string          `json:"stepCode"`
	Eligible   bool            `json:"eligible"`
	Reason     string          `json:"reason"`
	Required   decimal.Decimal `json:"required"`
	Paid       decimal.Decimal `json:"paid"`
	Percentage decimal.Decimal `json:"percentage"`
}
