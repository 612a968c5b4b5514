package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates the resource was modified concurrently. The caller must
// re-read the current state instead of replaying its decision.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrIllegalTransition indicates a cursor move (or a commit away from the cursor)
// that the workflow does not allow in the record's current state.
var ErrIllegalTransition = errors.New("illegal step transition")

// ErrIneligible indicates the payment threshold for a step is not met while
// eligibility enforcement is switched on.
var ErrIneligible = errors.New("payment threshold not met")

// ErrInternal is returned in place of infrastructure errors that must not leak.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewConflictError reports a duplicate or concurrent-modification conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// ValidationError collects field-level messages. Every offending field is
// reported at once so the caller can fix the whole form in one round trip.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// NewValidationFailedError reports a single validation problem not tied to a form field.
func NewValidationFailedError(message string) *ValidationError {
	v := NewValidationError()
	v.Add("_", message)
	return v
}

// Add records a message for field. The first message for a field wins.
func (v *ValidationError) Add(field, message string) {
	if _, exists := v.Fields[field]; exists {
		return
	}
	v.Fields[field] = message
}

// HasErrors reports whether any field failed.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

// OrNil returns v as an error only when it carries field errors.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match a *ValidationError.
func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransitionError explains why a cursor move was refused.
type TransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move from step %s to step %s: %s", e.From, e.To, e.Reason)
}

// Is lets errors.Is(err, ErrIllegalTransition) match a *TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// NewTransitionError builds a TransitionError.
func NewTransitionError(from, to, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
