package errors

import (
	stderrors "errors"

	"bank-ledger/internal/models"
)

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidName   ErrorCode = "VALIDATION_008"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_003"
	AccountInvalidNumber       ErrorCode = "ACCOUNT_004"
	AccountNumbersExhausted    ErrorCode = "ACCOUNT_006"
	AccountInvalidType         ErrorCode = "ACCOUNT_007"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_006"
)

// Batch error codes (BATCH_*)
const (
	BatchTaskCancelled ErrorCode = "BATCH_001"
	BatchTaskPanicked  ErrorCode = "BATCH_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidName:   "Holder name cannot be empty",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountInsufficientBalance: "Insufficient account balance",
	AccountInvalidNumber:       "Invalid account number",
	AccountNumbersExhausted:    "No account numbers left to allocate",
	AccountInvalidType:         "Invalid account type",

	// Transaction errors
	TransactionInvalidAmount: "Amount must be greater than zero",
	TransactionInvalidType:   "Invalid transaction type",

	// Batch errors
	BatchTaskCancelled: "Batch task was cancelled before it ran",
	BatchTaskPanicked:  "Batch task failed unexpectedly",

	// System errors
	SystemInternalError:      "An unexpected internal error occurred",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// domainCodes is checked in order, so more specific errors go first.
var domainCodes = []struct {
	err  error
	code ErrorCode
}{
	{models.ErrInvalidAmount, TransactionInvalidAmount},
	{models.ErrInsufficientBalance, AccountInsufficientBalance},
	{models.ErrAccountNotFound, AccountNotFound},
	{models.ErrInvalidName, ValidationInvalidName},
	{models.ErrInvalidAccountType, AccountInvalidType},
	{models.ErrAccountNumbersExhausted, AccountNumbersExhausted},
	{models.ErrInvalidOperation, TransactionInvalidType},
	{models.ErrTaskCancelled, BatchTaskCancelled},
	{models.ErrTaskPanicked, BatchTaskPanicked},
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// CodeFor maps a ledger error onto its code. Wrapped errors are unwrapped.
// Unknown errors map to SystemInternalError; nil maps to "".
func CodeFor(err error) ErrorCode {
	if err == nil {
		return ""
	}

	for _, dc := range domainCodes {
		if stderrors.Is(err, dc.err) {
			return dc.code
		}
	}
	return SystemInternalError
}

// IsClientError reports whether the code describes a caller mistake rather
// than a system fault.
func IsClientError(code ErrorCode) bool {
	switch code {
	case SystemInternalError, SystemConfigurationError, SystemUnexpectedError, BatchTaskPanicked:
		return false
	default:
		return IsValidErrorCode(code)
	}
}
