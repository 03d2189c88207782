package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bank-ledger/internal/config"
	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

type applyFunc func(account *models.Account, op models.BatchOperation) (decimal.Decimal, error)

// BatchRunner applies independent deposit and withdraw operations to a single
// account with bounded concurrency. Each operation reports its own outcome.
type BatchRunner struct {
	accounts AccountLookupInterface
	workers  int64
	timeout  time.Duration
	limiter  *rate.Limiter
	metrics  MetricsRecorderInterface
	logger   LedgerLoggerInterface
	apply    applyFunc
}

func NewBatchRunner(
	accounts AccountLookupInterface,
	cfg config.BatchConfig,
	metrics MetricsRecorderInterface,
	logger LedgerLoggerInterface,
) *BatchRunner {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewLedgerLogger(nil)
	}

	var limiter *rate.Limiter
	if cfg.DispatchRate > 0 {
		burst := cfg.DispatchBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.DispatchRate), burst)
	}

	return &BatchRunner{
		accounts: accounts,
		workers:  int64(workers),
		timeout:  cfg.Timeout,
		limiter:  limiter,
		metrics:  metrics,
		logger:   logger,
		apply:    applyOperation,
	}
}

// RunBatch submits ops against accountNumber and waits at most timeout for
// them. A timeout of zero or less uses the configured default. When the
// deadline passes, operations that have not started are cancelled and the
// ones already running finish. FinalBalance is read after that point.
//
// An unknown account fails the whole call before any operation runs.
func (r *BatchRunner) RunBatch(ctx context.Context, accountNumber string, ops []models.BatchOperation, timeout time.Duration) (*models.BatchResult, error) {
	startTime := time.Now()

	account, err := r.accounts.GetAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrAccountNotFound, accountNumber)
	}

	result := &models.BatchResult{
		ID:            uuid.New(),
		AccountNumber: account.AccountNumber(),
		Outcomes:      make([]models.BatchOutcome, len(ops)),
		StartedAt:     startTime,
	}
	for i, op := range ops {
		result.Outcomes[i] = models.BatchOutcome{Index: i, Operation: op, Status: models.OutcomePending}
	}

	if len(ops) == 0 {
		result.FinalBalance = account.Balance()
		result.Duration = time.Since(startTime)
		return result, nil
	}

	if timeout <= 0 {
		timeout = r.timeout
	}
	ctx = WithCorrelationID(ctx, result.ID.String())
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool := semaphore.NewWeighted(r.workers)
	var wg sync.WaitGroup
	var dispatchErr error

	for i := range ops {
		if dispatchErr = r.acquire(runCtx, pool); dispatchErr != nil {
			break
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer pool.Release(1)
			result.Outcomes[i] = r.runTask(runCtx, account, i, ops[i])
		}(i)
	}

	// In-flight tasks each hold one account lock for one balance update,
	// so this wait is bounded even after the deadline.
	wg.Wait()

	cause := runCtx.Err()
	if cause == nil && dispatchErr != nil {
		// the limiter gives up early when its next token falls past the deadline
		cause = context.DeadlineExceeded
	}
	for i := range result.Outcomes {
		if result.Outcomes[i].Status == models.OutcomePending {
			result.Outcomes[i] = cancelledOutcome(i, ops[i], cause)
		}
	}

	result.TimedOut = result.Count(models.OutcomeCancelled) > 0 && errors.Is(cause, context.DeadlineExceeded)
	result.FinalBalance = account.Balance()
	result.Duration = time.Since(startTime)

	r.recordResult(result)
	r.logger.LogBatchCompleted(ctx, result)

	return result, nil
}

func (r *BatchRunner) acquire(ctx context.Context, pool *semaphore.Weighted) error {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return pool.Acquire(ctx, 1)
}

// runTask applies one operation. A task that starts after the batch context
// is done is cancelled instead of applied.
func (r *BatchRunner) runTask(ctx context.Context, account *models.Account, index int, op models.BatchOperation) (outcome models.BatchOutcome) {
	if err := ctx.Err(); err != nil {
		return cancelledOutcome(index, op, err)
	}

	started := time.Now()
	outcome = models.BatchOutcome{Index: index, Operation: op}

	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.LogTaskPanicked(ctx, account.AccountNumber(), index, recovered)
			err := fmt.Errorf("%w: %v", models.ErrTaskPanicked, recovered)
			outcome = rejectedOutcome(index, op, account.Balance(), err, time.Since(started))
		}
	}()

	balance, err := r.apply(account, op)
	if err != nil {
		r.logger.LogOperationRejected(ctx, op.Type, account.AccountNumber(), op.Amount, err)
		return rejectedOutcome(index, op, balance, err, time.Since(started))
	}

	r.logger.LogBalanceChanged(ctx, op.Type, account.AccountNumber(), op.Amount, balance)
	outcome.Status = models.OutcomeApplied
	outcome.Balance = balance
	outcome.Duration = time.Since(started)
	return outcome
}

func (r *BatchRunner) recordResult(result *models.BatchResult) {
	for _, status := range []models.OutcomeStatus{models.OutcomeApplied, models.OutcomeRejected, models.OutcomeCancelled} {
		for n := result.Count(status); n > 0; n-- {
			r.metrics.IncrementCounter(MetricBatchTask, map[string]string{"status": string(status)})
		}
	}
	if result.TimedOut {
		r.metrics.IncrementCounter(MetricBatchTimeout, nil)
	}
	r.metrics.RecordProcessingTime(MetricBatchDuration, result.Duration)
}

func applyOperation(account *models.Account, op models.BatchOperation) (decimal.Decimal, error) {
	switch op.Type {
	case models.OperationDeposit:
		return account.Deposit(op.Amount)
	case models.OperationWithdraw:
		return account.Withdraw(op.Amount)
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", models.ErrInvalidOperation, op.Type)
	}
}

func rejectedOutcome(index int, op models.BatchOperation, balance decimal.Decimal, err error, duration time.Duration) models.BatchOutcome {
	return models.BatchOutcome{
		Index:     index,
		Operation: op,
		Status:    models.OutcomeRejected,
		Balance:   balance,
		Err:       err,
		ErrorCode: string(apperrors.CodeFor(err)),
		Duration:  duration,
	}
}

func cancelledOutcome(index int, op models.BatchOperation, cause error) models.BatchOutcome {
	err := models.ErrTaskCancelled
	if cause != nil {
		err = fmt.Errorf("%w: %w", models.ErrTaskCancelled, cause)
	}
	return models.BatchOutcome{
		Index:     index,
		Operation: op,
		Status:    models.OutcomeCancelled,
		Err:       err,
		ErrorCode: string(apperrors.CodeFor(err)),
	}
}
