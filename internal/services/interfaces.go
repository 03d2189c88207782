package services

import (
	"context"
	"time"

	"bank-ledger/internal/dto"
	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface defines the account registry operations
type LedgerServiceInterface interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*models.Account, error)
	GetAccount(accountNumber string) (*models.Account, error)
	SearchByName(partial string) []*models.Account
	ListAccounts(filters models.AccountFilters) dto.AccountListResponse
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*models.Transfer, error)
	AccountCount() int
}

// AccountLookupInterface resolves account numbers to live accounts
type AccountLookupInterface interface {
	GetAccount(accountNumber string) (*models.Account, error)
}

// BatchRunnerInterface applies independent operations to one account concurrently
type BatchRunnerInterface interface {
	RunBatch(ctx context.Context, accountNumber string, ops []models.BatchOperation, timeout time.Duration) (*models.BatchResult, error)
}

// BatchGeneratorInterface produces random deposit/withdraw mixes
type BatchGeneratorInterface interface {
	Generate(n int) []models.BatchOperation
}

// LedgerLoggerInterface records ledger events as structured log lines
type LedgerLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.Account)
	LogBalanceChanged(ctx context.Context, op models.OperationType, accountNumber string, amount, balance decimal.Decimal)
	LogOperationRejected(ctx context.Context, op models.OperationType, accountNumber string, amount decimal.Decimal, err error)
	LogTransferCompleted(ctx context.Context, transfer *models.Transfer, duration time.Duration)
	LogTransferFailed(ctx context.Context, transfer *models.Transfer, err error, duration time.Duration)
	LogBatchCompleted(ctx context.Context, result *models.BatchResult)
	LogTaskPanicked(ctx context.Context, accountNumber string, index int, recovered any)
}

// MetricsRecorderInterface provides metrics recording capabilities
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveValue(name string, value float64)
}
