package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DetailTestSuite defines the test suite for error details
type DetailTestSuite struct {
	suite.Suite
}

func TestDetailTestSuite(t *testing.T) {
	suite.Run(t, new(DetailTestSuite))
}

func (s *DetailTestSuite) TestNewErrorDetail_BasicUsage() {
	detail := NewErrorDetail(AccountNotFound)

	s.NotNil(detail)
	s.Equal("ACCOUNT_001", detail.Code)
	s.Equal("Account not found", detail.Message)
	s.Empty(detail.Details)
}

func (s *DetailTestSuite) TestNewErrorDetail_WithDetails() {
	details := []string{"holder_name: is required", "initial_balance: must be >= 0"}
	detail := NewErrorDetail(ValidationGeneral, WithDetails(details...))

	s.Equal("VALIDATION_001", detail.Code)
	s.Equal(details, detail.Details)
}

func (s *DetailTestSuite) TestNewErrorDetail_WithCustomMessage() {
	detail := NewErrorDetail(SystemInternalError, WithMessage("ledger unavailable"))

	s.Equal("SYSTEM_001", detail.Code)
	s.Equal("ledger unavailable", detail.Message)
}

func (s *DetailTestSuite) TestFromError_KeepsPolicyReason() {
	err := &models.InsufficientBalanceError{
		AccountNumber: "3000000026",
		Policy:        models.OverdraftPolicy(decimal.NewFromInt(5000)),
		Balance:       decimal.NewFromInt(-5000),
		Amount:        decimal.NewFromInt(1),
	}

	detail := FromError(err)

	s.Require().NotNil(detail)
	s.Equal(string(AccountInsufficientBalance), detail.Code)
	s.Require().Len(detail.Details, 1)
	s.Contains(detail.Details[0], "overdraft limit exceeded (max 5000)")
	s.True(detail.IsClientError())
}

func (s *DetailTestSuite) TestFromError_Nil() {
	s.Nil(FromError(nil))
}

func (s *DetailTestSuite) TestFromError_UnknownIsServerSide() {
	detail := FromError(errors.New("boom"))

	s.Equal(string(SystemInternalError), detail.Code)
	s.False(detail.IsClientError())
}

func (s *DetailTestSuite) TestNewValidationError_SortedDetails() {
	detail := NewValidationError(map[string]string{
		"initial_balance": "must be >= 0",
		"holder_name":     "is required",
	})

	s.Equal(string(ValidationGeneral), detail.Code)
	s.Equal([]string{"holder_name: is required", "initial_balance: must be >= 0"}, detail.Details)
}

func (s *DetailTestSuite) TestToJSON() {
	detail := NewErrorDetail(TransactionInvalidAmount, WithDetails("amount: -5"))

	raw, err := detail.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal("TRANSACTION_002", decoded["code"])
	s.Equal("Amount must be greater than zero", decoded["message"])
}

func (s *DetailTestSuite) TestString() {
	s.Equal("[ACCOUNT_001] Account not found", NewErrorDetail(AccountNotFound).String())
	s.Equal("[ACCOUNT_001] Account not found: [missing 1000000018]",
		NewErrorDetail(AccountNotFound, WithDetails("missing 1000000018")).String())
}
