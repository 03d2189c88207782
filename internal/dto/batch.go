package dto

import (
	"strings"
	"time"

	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// BatchOperationRequest is one entry of a batch submission
type BatchOperationRequest struct {
	Type   string          `json:"type" validate:"required,batch_operation"`
	Amount decimal.Decimal `json:"amount" validate:"positive_amount"`
}

// BatchRequest applies several operations to one account
type BatchRequest struct {
	AccountNumber string                  `json:"account_number" validate:"required,account_number"`
	Operations    []BatchOperationRequest `json:"operations" validate:"dive"`
	Timeout       time.Duration           `json:"timeout" validate:"gte=0"`
}

// ToOperations converts the request entries into batch operations
func (r BatchRequest) ToOperations() []models.BatchOperation {
	ops := make([]models.BatchOperation, 0, len(r.Operations))
	for _, op := range r.Operations {
		ops = append(ops, models.BatchOperation{Type: models.OperationType(strings.ToLower(op.Type)), Amount: op.Amount})
	}
	return ops
}

// BatchOutcomeResponse reports one task of a batch
type BatchOutcomeResponse struct {
	Index      int                    `json:"index"`
	Type       string                 `json:"type"`
	Amount     decimal.Decimal        `json:"amount"`
	Status     string                 `json:"status"`
	Balance    decimal.Decimal        `json:"balance"`
	Error      *apperrors.ErrorDetail `json:"error,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
}

// BatchResultResponse reports a whole batch
type BatchResultResponse struct {
	BatchID       string                 `json:"batch_id"`
	AccountNumber string                 `json:"account_number"`
	FinalBalance  decimal.Decimal        `json:"final_balance"`
	NetApplied    decimal.Decimal        `json:"net_applied"`
	Applied       int                    `json:"applied"`
	Rejected      int                    `json:"rejected"`
	Cancelled     int                    `json:"cancelled"`
	TimedOut      bool                   `json:"timed_out"`
	DurationMs    int64                  `json:"duration_ms"`
	Outcomes      []BatchOutcomeResponse `json:"outcomes"`
}

// NewBatchResultResponse converts a batch result into its response view
func NewBatchResultResponse(r *models.BatchResult) BatchResultResponse {
	resp := BatchResultResponse{
		BatchID:       r.ID.String(),
		AccountNumber: r.AccountNumber,
		FinalBalance:  r.FinalBalance,
		NetApplied:    r.NetApplied(),
		Applied:       r.Count(models.OutcomeApplied),
		Rejected:      r.Count(models.OutcomeRejected),
		Cancelled:     r.Count(models.OutcomeCancelled),
		TimedOut:      r.TimedOut,
		DurationMs:    r.Duration.Milliseconds(),
		Outcomes:      make([]BatchOutcomeResponse, 0, len(r.Outcomes)),
	}

	for _, o := range r.Outcomes {
		resp.Outcomes = append(resp.Outcomes, BatchOutcomeResponse{
			Index:      o.Index,
			Type:       string(o.Operation.Type),
			Amount:     o.Operation.Amount,
			Status:     string(o.Status),
			Balance:    o.Balance,
			Error:      apperrors.FromError(o.Err),
			DurationMs: o.Duration.Milliseconds(),
		})
	}
	return resp
}
