package domain

import "github.com/shopspring/decimal"

// Attachment is a document submitted with a step's transaction.
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// StepPayload is the submitted transaction form of one step.
// Pointer fields distinguish "absent" from zero values.
type StepPayload struct {
	Cost             *decimal.Decimal
	CurrencyID       *int64
	ChargeTargetType *ChargeTargetType
	ChargeTargetID   *int64
	Details          map[string]string
	File             *Attachment
	MarkComplete     bool
}
