package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
)

// Transfer represents an account-to-account transfer
type Transfer struct {
	ID           uuid.UUID
	FromAccount  string
	ToAccount    string
	Amount       decimal.Decimal
	Status       string
	FromBalance  decimal.Decimal
	ToBalance    decimal.Decimal
	ErrorMessage *string
	CreatedAt    time.Time
	CompletedAt  *time.Time
	FailedAt     *time.Time
}

// NewTransfer creates a pending transfer record
func NewTransfer(fromAccount, toAccount string, amount decimal.Decimal) *Transfer {
	return &Transfer{
		ID:          uuid.New(),
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amount,
		Status:      TransferStatusPending,
		CreatedAt:   time.Now(),
	}
}

// IsPending returns true if the transfer is pending
func (t *Transfer) IsPending() bool {
	return t.Status == TransferStatusPending
}

// IsCompleted returns true if the transfer is completed
func (t *Transfer) IsCompleted() bool {
	return t.Status == TransferStatusCompleted
}

// IsFailed returns true if the transfer is failed
func (t *Transfer) IsFailed() bool {
	return t.Status == TransferStatusFailed
}

// IsSelfTransfer returns true if both sides name the same account
func (t *Transfer) IsSelfTransfer() bool {
	return t.FromAccount == t.ToAccount
}

// Complete marks the transfer as completed and records the resulting balances.
// A transfer that already completed or failed is left as it is.
func (t *Transfer) Complete(fromBalance, toBalance decimal.Decimal) {
	if !t.CanTransitionTo(TransferStatusCompleted) {
		return
	}
	t.Status = TransferStatusCompleted
	now := time.Now()
	t.CompletedAt = &now
	t.FromBalance = fromBalance
	t.ToBalance = toBalance
}

// Fail marks the transfer as failed with an error message.
// A transfer that already completed or failed is left as it is.
func (t *Transfer) Fail(errorMessage string) {
	if !t.CanTransitionTo(TransferStatusFailed) {
		return
	}
	t.Status = TransferStatusFailed
	now := time.Now()
	t.FailedAt = &now
	t.ErrorMessage = &errorMessage
}

// CanTransitionTo checks if a transfer can transition to a new status
func (t *Transfer) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransferStatusPending:   {TransferStatusCompleted, TransferStatusFailed},
		TransferStatusCompleted: {},
		TransferStatusFailed:    {},
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// ExecuteTransfer withdraws amount from `from` and deposits it into `to` while
// holding both account locks. If the withdrawal is refused nothing changes and
// the refusal is returned. The transfer record is returned in both cases.
func ExecuteTransfer(from, to *Account, amount decimal.Decimal) (*Transfer, error) {
	if !IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}

	transfer := NewTransfer(from.accountNumber, to.accountNumber, amount)

	unlock := lockPair(from, to)
	err := from.debit(amount)
	if err == nil {
		to.credit(amount)
	}
	fromBalance, toBalance := from.balance, to.balance
	unlock()

	if err != nil {
		transfer.Fail(err.Error())
		return transfer, err
	}

	transfer.Complete(fromBalance, toBalance)
	return transfer, nil
}

// lockPair locks a and b in ascending account-number order, whatever the
// transfer direction, and returns the matching unlock. When a and b are the
// same account its lock is taken once.
func lockPair(a, b *Account) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if b.accountNumber < a.accountNumber {
		first, second = b, a
	}

	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
