package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

type correlationKey struct{}

// WithCorrelationID tags ctx so every ledger log line written under it carries id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}

// LedgerLogger provides structured logging for ledger operations
type LedgerLogger struct {
	logger *slog.Logger
}

// NewLedgerLogger creates a new ledger logger
func NewLedgerLogger(logger *slog.Logger) *LedgerLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{logger: logger}
}

func (ll *LedgerLogger) LogAccountCreated(ctx context.Context, account *models.Account) {
	snap := account.Snapshot()
	ll.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("account_number", snap.AccountNumber),
		slog.String("initials", snap.Initials),
		slog.String("account_type", string(snap.AccountType)),
		slog.String("policy", account.Policy().Kind.String()),
		slog.String("balance", snap.Balance.String()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogBalanceChanged(ctx context.Context, op models.OperationType, accountNumber string, amount, balance decimal.Decimal) {
	ll.logger.DebugContext(ctx, "balance changed",
		slog.String("event_type", "balance_changed"),
		slog.String("operation", string(op)),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("balance", balance.String()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogOperationRejected(ctx context.Context, op models.OperationType, accountNumber string, amount decimal.Decimal, err error) {
	ll.logger.WarnContext(ctx, "operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", string(op)),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
		slog.String("error_code", string(errors.CodeFor(err))),
		slog.String("error", err.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransferCompleted(ctx context.Context, transfer *models.Transfer, duration time.Duration) {
	ll.logger.InfoContext(ctx, "transfer completed",
		slog.String("event_type", "transfer_completed"),
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_account", transfer.FromAccount),
		slog.String("to_account", transfer.ToAccount),
		slog.String("amount", transfer.Amount.String()),
		slog.Int64("duration_us", duration.Microseconds()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransferFailed(ctx context.Context, transfer *models.Transfer, err error, duration time.Duration) {
	ll.logger.WarnContext(ctx, "transfer failed",
		slog.String("event_type", "transfer_failed"),
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_account", transfer.FromAccount),
		slog.String("to_account", transfer.ToAccount),
		slog.String("amount", transfer.Amount.String()),
		slog.String("error_code", string(errors.CodeFor(err))),
		slog.String("error", err.Error()),
		slog.Int64("duration_us", duration.Microseconds()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogBatchCompleted logs at Warn when the batch timed out, Info otherwise.
func (ll *LedgerLogger) LogBatchCompleted(ctx context.Context, result *models.BatchResult) {
	level := slog.LevelInfo
	if result.TimedOut {
		level = slog.LevelWarn
	}
	ll.logger.Log(ctx, level, "batch completed",
		slog.String("event_type", "batch_completed"),
		slog.String("batch_id", result.ID.String()),
		slog.String("account_number", result.AccountNumber),
		slog.Int("tasks", len(result.Outcomes)),
		slog.Int("applied", result.Count(models.OutcomeApplied)),
		slog.Int("rejected", result.Count(models.OutcomeRejected)),
		slog.Int("cancelled", result.Count(models.OutcomeCancelled)),
		slog.Bool("timed_out", result.TimedOut),
		slog.String("final_balance", result.FinalBalance.String()),
		slog.Int64("duration_ms", result.Duration.Milliseconds()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTaskPanicked(ctx context.Context, accountNumber string, index int, recovered any) {
	ll.logger.ErrorContext(ctx, "batch task panicked",
		slog.String("event_type", "batch_task_panicked"),
		slog.String("account_number", accountNumber),
		slog.Int("index", index),
		slog.String("panic", fmt.Sprint(recovered)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}
