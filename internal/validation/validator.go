package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with ledger rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal amounts are checked as float64 by the numeric tags
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("holder_name", validateHolderName)
	_ = v.RegisterValidation("batch_operation", validateBatchOperation)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks s against its validate tags
func (v *Validator) Validate(s any) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation error into field name -> message.
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}

	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = messageFor(fe)
	}
	return fields
}

// ToErrorDetail converts a validation error into the ledger error shape.
func ToErrorDetail(err error) *apperrors.ErrorDetail {
	if fields := FieldErrors(err); fields != nil {
		return apperrors.NewValidationError(fields)
	}
	return apperrors.FromError(err)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "holder_name":
		return "cannot be blank"
	case "positive_amount":
		return "must be greater than zero"
	case "account_type":
		return "must be one of plain, savings, current"
	case "account_number":
		return "is not a valid account number"
	case "batch_operation":
		return "must be deposit or withdraw"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// Custom validation functions

func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.ValidateAccountNumber(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(models.AccountType(strings.ToLower(fl.Field().String())))
}

func validateHolderName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateBatchOperation(fl validator.FieldLevel) bool {
	return models.IsValidBatchOperationType(models.OperationType(strings.ToLower(fl.Field().String())))
}
