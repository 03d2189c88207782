package models

import (
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransferTestSuite is the test suite for transfers between accounts
type TransferTestSuite struct {
	suite.Suite
	numbers *AccountNumberGenerator
}

// SetupTest runs before each test
func (s *TransferTestSuite) SetupTest() {
	s.numbers = NewAccountNumberGenerator()
}

// TestTransferTestSuite runs the test suite
func TestTransferTestSuite(t *testing.T) {
	suite.Run(t, new(TransferTestSuite))
}

func (s *TransferTestSuite) account(accountType AccountType, policy WithdrawalPolicy, initial int64) *Account {
	number, err := s.numbers.Next(accountType)
	s.Require().NoError(err)

	a, err := NewAccount(number, gofakeit.Name(), accountType, policy, decimal.NewFromInt(initial))
	s.Require().NoError(err)
	return a
}

// TestExecuteTransfer_Success tests a transfer that fits the source policy
func (s *TransferTestSuite) TestExecuteTransfer_Success() {
	from := s.account(AccountTypePlain, PlainPolicy(), 500)
	to := s.account(AccountTypePlain, PlainPolicy(), 50)

	transfer, err := ExecuteTransfer(from, to, decimal.NewFromInt(200))

	s.Require().NoError(err)
	s.True(transfer.IsCompleted())
	s.NotEqual(uuid.Nil, transfer.ID)
	s.NotNil(transfer.CompletedAt)
	s.True(decimal.NewFromInt(300).Equal(transfer.FromBalance))
	s.True(decimal.NewFromInt(250).Equal(transfer.ToBalance))
	s.True(decimal.NewFromInt(300).Equal(from.Balance()))
	s.True(decimal.NewFromInt(250).Equal(to.Balance()))
}

// TestExecuteTransfer_InsufficientBalance_LeavesBothUnchanged tests all-or-nothing
func (s *TransferTestSuite) TestExecuteTransfer_InsufficientBalance_LeavesBothUnchanged() {
	a := s.account(AccountTypeSavings, MinimumBalancePolicy(decimal.NewFromInt(100)), 100)
	b := s.account(AccountTypePlain, PlainPolicy(), 50)

	transfer, err := ExecuteTransfer(a, b, decimal.NewFromInt(100))

	s.Require().ErrorIs(err, ErrInsufficientBalance)
	s.Require().NotNil(transfer)
	s.True(transfer.IsFailed())
	s.Require().NotNil(transfer.ErrorMessage)
	s.Contains(*transfer.ErrorMessage, "minimum balance of 100")
	s.True(decimal.NewFromInt(100).Equal(a.Balance()))
	s.True(decimal.NewFromInt(50).Equal(b.Balance()))
}

// TestExecuteTransfer_InvalidAmount tests that non-positive amounts are refused
func (s *TransferTestSuite) TestExecuteTransfer_InvalidAmount() {
	a := s.account(AccountTypePlain, PlainPolicy(), 100)
	b := s.account(AccountTypePlain, PlainPolicy(), 100)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		transfer, err := ExecuteTransfer(a, b, amount)
		s.ErrorIs(err, ErrInvalidAmount)
		s.Nil(transfer)
	}
	s.True(decimal.NewFromInt(100).Equal(a.Balance()))
	s.True(decimal.NewFromInt(100).Equal(b.Balance()))
}

// TestExecuteTransfer_SelfTransfer tests that the single lock is taken once
func (s *TransferTestSuite) TestExecuteTransfer_SelfTransfer() {
	a := s.account(AccountTypePlain, PlainPolicy(), 100)

	done := make(chan struct{})
	var (
		transfer *Transfer
		err      error
	)
	go func() {
		defer close(done)
		transfer, err = ExecuteTransfer(a, a, decimal.NewFromInt(40))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("self transfer deadlocked")
	}

	s.Require().NoError(err)
	s.True(transfer.IsSelfTransfer())
	s.True(decimal.NewFromInt(100).Equal(a.Balance()))
}

// TestExecuteTransfer_SelfTransferRespectsPolicy tests that the withdrawal check still applies
func (s *TransferTestSuite) TestExecuteTransfer_SelfTransferRespectsPolicy() {
	a := s.account(AccountTypePlain, PlainPolicy(), 10)

	_, err := ExecuteTransfer(a, a, decimal.NewFromInt(11))

	s.ErrorIs(err, ErrInsufficientBalance)
	s.True(decimal.NewFromInt(10).Equal(a.Balance()))
}

// TestExecuteTransfer_OpposingDirections_NoDeadlock tests lock ordering under contention
func (s *TransferTestSuite) TestExecuteTransfer_OpposingDirections_NoDeadlock() {
	a := s.account(AccountTypePlain, PlainPolicy(), 10_000)
	b := s.account(AccountTypePlain, PlainPolicy(), 10_000)

	const rounds = 200
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = ExecuteTransfer(a, b, decimal.NewFromInt(3))
		}()
		go func() {
			defer wg.Done()
			_, _ = ExecuteTransfer(b, a, decimal.NewFromInt(5))
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("opposing transfers deadlocked")
	}

	total := a.Balance().Add(b.Balance())
	s.True(decimal.NewFromInt(20_000).Equal(total), "money created or destroyed: %s", total)
	s.True(decimal.NewFromInt(10_000 + rounds*2).Equal(a.Balance()))
}

// TestExecuteTransfer_OverdraftSource tests a current account going negative
func (s *TransferTestSuite) TestExecuteTransfer_OverdraftSource() {
	from := s.account(AccountTypeCurrent, OverdraftPolicy(decimal.NewFromInt(5000)), 0)
	to := s.account(AccountTypePlain, PlainPolicy(), 0)

	_, err := ExecuteTransfer(from, to, decimal.NewFromInt(5000))
	s.Require().NoError(err)

	_, err = ExecuteTransfer(from, to, decimal.NewFromInt(1))
	s.ErrorIs(err, ErrInsufficientBalance)
	s.True(decimal.NewFromInt(-5000).Equal(from.Balance()))
	s.True(decimal.NewFromInt(5000).Equal(to.Balance()))
}

func TestLockPair_OrderIsDirectionIndependent(t *testing.T) {
	low, err := NewAccount("1000000016", "Low Holder", AccountTypePlain, PlainPolicy(), decimal.Zero)
	require.NoError(t, err)
	high, err := NewAccount("3000000012", "High Holder", AccountTypePlain, PlainPolicy(), decimal.Zero)
	require.NoError(t, err)

	unlock := lockPair(high, low)
	assert.False(t, low.mu.TryLock())
	assert.False(t, high.mu.TryLock())
	unlock()

	assert.True(t, low.mu.TryLock())
	low.mu.Unlock()
	assert.True(t, high.mu.TryLock())
	high.mu.Unlock()
}

func TestTransfer_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		canChange bool
	}{
		{name: "pending to completed", from: TransferStatusPending, to: TransferStatusCompleted, canChange: true},
		{name: "pending to failed", from: TransferStatusPending, to: TransferStatusFailed, canChange: true},
		{name: "completed to failed", from: TransferStatusCompleted, to: TransferStatusFailed, canChange: false},
		{name: "failed to completed", from: TransferStatusFailed, to: TransferStatusCompleted, canChange: false},
		{name: "unknown status", from: "bogus", to: TransferStatusCompleted, canChange: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := NewTransfer("1000000016", "3000000012", decimal.NewFromInt(1))
			transfer.Status = tt.from
			assert.Equal(t, tt.canChange, transfer.CanTransitionTo(tt.to))
		})
	}
}

func TestTransfer_Fail(t *testing.T) {
	transfer := NewTransfer("1000000016", "3000000012", decimal.NewFromInt(1))
	require.True(t, transfer.IsPending())

	transfer.Fail("nope")

	assert.True(t, transfer.IsFailed())
	assert.NotNil(t, transfer.FailedAt)
	require.NotNil(t, transfer.ErrorMessage)
	assert.Equal(t, "nope", *transfer.ErrorMessage)
}

func TestTransfer_TerminalStatusIsFinal(t *testing.T) {
	completed := NewTransfer("1000000016", "3000000012", decimal.NewFromInt(5))
	completed.Complete(decimal.NewFromInt(10), decimal.NewFromInt(20))

	completed.Fail("late failure")

	assert.True(t, completed.IsCompleted())
	assert.Nil(t, completed.FailedAt)
	assert.Nil(t, completed.ErrorMessage)

	failed := NewTransfer("1000000016", "3000000012", decimal.NewFromInt(5))
	failed.Fail("insufficient balance")

	failed.Complete(decimal.NewFromInt(1), decimal.NewFromInt(2))

	assert.True(t, failed.IsFailed())
	assert.Nil(t, failed.CompletedAt)
	assert.True(t, failed.FromBalance.IsZero())
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "insufficient balance", *failed.ErrorMessage)
}
