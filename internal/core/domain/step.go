package domain

import "github.com/shopspring/decimal"

// FieldKind tells the step processor how to check a submitted field.
type FieldKind string

const (
	FieldDecimal      FieldKind = "decimal"
	FieldReference    FieldKind = "reference"
	FieldChargeTarget FieldKind = "charge_target"
	FieldText         FieldKind = "text"
	FieldDate         FieldKind = "date"
	FieldFile         FieldKind = "file"
)

// FieldSpec describes one input of a step's transaction form.
type FieldSpec struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Kind     FieldKind `json:"kind"`
}

// CheckpointDefinition turns a step into an accept/reject sub-step.
// Origin is the step that was submitted, Next the step reached on acceptance.
type CheckpointDefinition struct {
	Origin string `json:"origin"`
	Next   string `json:"next"`
}

// PaymentRule is the advisory payment threshold attached to a step.
// A step either needs a minimum paid amount or full payment of the sale price.
type PaymentRule struct {
	MinPaid     decimal.Decimal `json:"minPaid"`
	FullPayment bool            `json:"fullPayment"`
}

// StepDefinition is one stage of the fixed processing sequence.
type StepDefinition struct {
	Code                string                `json:"code"`
	Ordinal             int                   `json:"ordinal"`
	DisplayName         string                `json:"displayName"`
	RequiresTransaction bool                  `json:"requiresTransaction"`
	Checkpoint          *CheckpointDefinition `json:"checkpoint,omitempty"`
	Fields              []FieldSpec           `json:"fields,omitempty"`
	DefaultCost         *decimal.Decimal      `json:"defaultCost,omitempty"`
	Payment             *PaymentRule          `json:"payment,omitempty"`
}

// IsCheckpoint reports whether the step is an accept/reject checkpoint.
func (s StepDefinition) IsCheckpoint() bool {
	return s.Checkpoint != nil
}
