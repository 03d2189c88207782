package errors

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ErrorDetail is the caller-facing description of a ledger error
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorOption is a functional option for configuring error details
type ErrorOption func(*ErrorDetail)

// WithDetails adds detail messages to the error detail
func WithDetails(details ...string) ErrorOption {
	return func(ed *ErrorDetail) {
		ed.Details = append(ed.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(ed *ErrorDetail) {
		ed.Message = message
	}
}

// NewErrorDetail creates an error detail for the given code.
// Optional details can be added using functional options
func NewErrorDetail(code ErrorCode, opts ...ErrorOption) *ErrorDetail {
	detail := &ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		Details: []string{},
	}

	for _, opt := range opts {
		opt(detail)
	}

	return detail
}

// FromError builds the detail for err. The error text is kept as a detail so
// policy reasons (minimum balance, overdraft limit) reach the caller.
func FromError(err error, opts ...ErrorOption) *ErrorDetail {
	if err == nil {
		return nil
	}

	opts = append([]ErrorOption{WithDetails(err.Error())}, opts...)
	return NewErrorDetail(CodeFor(err), opts...)
}

// NewValidationError creates a validation error with field-specific details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string) *ErrorDetail {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewErrorDetail(ValidationGeneral, WithDetails(details...))
}

// ToJSON serializes the error detail to JSON bytes
func (ed *ErrorDetail) ToJSON() ([]byte, error) {
	return json.Marshal(ed)
}

// IsClientError returns true if the error was caused by the caller
func (ed *ErrorDetail) IsClientError() bool {
	return IsClientError(ErrorCode(ed.Code))
}

// String returns a string representation of the error detail
func (ed *ErrorDetail) String() string {
	if len(ed.Details) == 0 {
		return fmt.Sprintf("[%s] %s", ed.Code, ed.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", ed.Code, ed.Message, ed.Details)
}
