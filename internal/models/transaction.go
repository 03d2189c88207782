package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType names a single-account balance operation.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
	OperationTransfer OperationType = "transfer"
)

// OutcomeStatus is the terminal state of one batch task.
type OutcomeStatus string

const (
	OutcomePending   OutcomeStatus = "pending"
	OutcomeApplied   OutcomeStatus = "applied"
	OutcomeRejected  OutcomeStatus = "rejected"
	OutcomeCancelled OutcomeStatus = "cancelled"
)

var (
	ErrInvalidOperation = errors.New("invalid operation type")
	ErrTaskCancelled    = errors.New("task cancelled before it started")
	ErrTaskPanicked     = errors.New("task panicked")
)

// BatchOperation is one deposit or withdrawal submitted to a batch.
type BatchOperation struct {
	Type   OperationType
	Amount decimal.Decimal
}

func NewDepositOperation(amount decimal.Decimal) BatchOperation {
	return BatchOperation{Type: OperationDeposit, Amount: amount}
}

func NewWithdrawOperation(amount decimal.Decimal) BatchOperation {
	return BatchOperation{Type: OperationWithdraw, Amount: amount}
}

// IsValidBatchOperationType reports whether a batch may carry op type t.
func IsValidBatchOperationType(t OperationType) bool {
	return t == OperationDeposit || t == OperationWithdraw
}

// BatchOutcome reports what happened to the operation at Index.
type BatchOutcome struct {
	Index     int
	Operation BatchOperation
	Status    OutcomeStatus
	// Balance is what the operation saw under the account lock. It stays
	// zero when the operation was refused before the account was read.
	Balance   decimal.Decimal
	Err       error
	ErrorCode string
	Duration  time.Duration
}

func (o BatchOutcome) IsApplied() bool {
	return o.Status == OutcomeApplied
}

// BatchResult collects the outcomes of one batch run, in submission order.
type BatchResult struct {
	ID            uuid.UUID
	AccountNumber string
	Outcomes      []BatchOutcome
	FinalBalance  decimal.Decimal
	TimedOut      bool
	StartedAt     time.Time
	Duration      time.Duration
}

// Count returns the number of outcomes with the given status.
func (r *BatchResult) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// NetApplied sums applied deposits minus applied withdrawals.
func (r *BatchResult) NetApplied() decimal.Decimal {
	net := decimal.Zero
	for _, o := range r.Outcomes {
		if !o.IsApplied() {
			continue
		}
		switch o.Operation.Type {
		case OperationDeposit:
			net = net.Add(o.Operation.Amount)
		case OperationWithdraw:
			net = net.Sub(o.Operation.Amount)
		}
	}
	return net
}
