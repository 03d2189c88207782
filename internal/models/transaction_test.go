package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidBatchOperationType(t *testing.T) {
	tests := []struct {
		name  string
		op    OperationType
		valid bool
	}{
		{name: "deposit", op: OperationDeposit, valid: true},
		{name: "withdraw", op: OperationWithdraw, valid: true},
		{name: "transfer is not a batch operation", op: OperationTransfer, valid: false},
		{name: "unknown", op: OperationType("refund"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidBatchOperationType(tt.op))
		})
	}
}

func TestBatchResult_CountAndNetApplied(t *testing.T) {
	result := &BatchResult{
		Outcomes: []BatchOutcome{
			{Index: 0, Operation: NewDepositOperation(decimal.NewFromInt(500)), Status: OutcomeApplied},
			{Index: 1, Operation: NewWithdrawOperation(decimal.NewFromInt(200)), Status: OutcomeApplied},
			{Index: 2, Operation: NewDepositOperation(decimal.NewFromInt(300)), Status: OutcomeApplied},
			{Index: 3, Operation: NewWithdrawOperation(decimal.NewFromInt(700)), Status: OutcomeRejected, Err: ErrInsufficientBalance},
			{Index: 4, Operation: NewDepositOperation(decimal.NewFromInt(50)), Status: OutcomeCancelled, Err: ErrTaskCancelled},
		},
	}

	assert.Equal(t, 3, result.Count(OutcomeApplied))
	assert.Equal(t, 1, result.Count(OutcomeRejected))
	assert.Equal(t, 1, result.Count(OutcomeCancelled))
	assert.Equal(t, 0, result.Count(OutcomePending))
	assert.True(t, decimal.NewFromInt(600).Equal(result.NetApplied()), "net %s", result.NetApplied())
}

func TestBatchOutcome_IsApplied(t *testing.T) {
	assert.True(t, BatchOutcome{Status: OutcomeApplied}.IsApplied())
	assert.False(t, BatchOutcome{Status: OutcomeRejected, Err: errors.New("x")}.IsApplied())
}

func TestAccountFilters_Matches(t *testing.T) {
	savings, err := NewAccount("2000000014", "Grace Hopper", AccountTypeSavings, MinimumBalancePolicy(decimal.NewFromInt(100)), decimal.Zero)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		filters AccountFilters
		want    bool
	}{
		{name: "empty filter", filters: AccountFilters{}, want: true},
		{name: "case-insensitive substring", filters: AccountFilters{HolderName: "HOP"}, want: true},
		{name: "blank name matches all", filters: AccountFilters{HolderName: "   "}, want: true},
		{name: "name miss", filters: AccountFilters{HolderName: "turing"}, want: false},
		{name: "type match", filters: AccountFilters{AccountType: AccountTypeSavings}, want: true},
		{name: "type miss", filters: AccountFilters{HolderName: "grace", AccountType: AccountTypeCurrent}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(savings))
		})
	}
}
