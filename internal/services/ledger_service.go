package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bank-ledger/internal/config"
	"bank-ledger/internal/dto"
	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	operationCreateAccount = "create_account"
	operationSearch        = "search"
	statusSuccess          = "success"
)

// LedgerService is the account registry. It is built once at startup and
// shared by pointer; there is no package-level instance.
type LedgerService struct {
	accountRepo repositories.AccountRepositoryInterface
	ledgerCfg   config.LedgerConfig
	validator   *validation.Validator
	metrics     MetricsRecorderInterface
	logger      LedgerLoggerInterface
}

func NewLedgerService(
	accountRepo repositories.AccountRepositoryInterface,
	ledgerCfg config.LedgerConfig,
	validator *validation.Validator,
	metrics MetricsRecorderInterface,
	logger LedgerLoggerInterface,
) *LedgerService {
	if validator == nil {
		validator = validation.GetValidator()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewLedgerLogger(nil)
	}
	return &LedgerService{
		accountRepo: accountRepo,
		ledgerCfg:   ledgerCfg,
		validator:   validator,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateAccount validates req, allocates a number and registers the account.
// The account is visible to lookups once CreateAccount returns.
func (s *LedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*models.Account, error) {
	if err := s.validator.Validate(req); err != nil {
		err = createRequestError(err)
		s.recordOperation(operationCreateAccount, err)
		return nil, err
	}

	accountType := models.AccountType(strings.ToLower(req.AccountType))
	policy, err := s.ledgerCfg.PolicyFor(accountType)
	if err != nil {
		s.recordOperation(operationCreateAccount, err)
		return nil, err
	}

	accountNumber, err := s.accountRepo.GenerateUniqueAccountNumber(accountType)
	if err != nil {
		s.recordOperation(operationCreateAccount, err)
		return nil, err
	}

	account, err := models.NewAccount(accountNumber, req.HolderName, accountType, policy, req.InitialBalance)
	if err != nil {
		s.recordOperation(operationCreateAccount, err)
		return nil, err
	}

	if err := s.accountRepo.Create(account); err != nil {
		err = fmt.Errorf("failed to register account: %w", err)
		s.recordOperation(operationCreateAccount, err)
		return nil, err
	}

	s.recordOperation(operationCreateAccount, nil)
	s.recordAccountGauges()
	s.logger.LogAccountCreated(ctx, account)

	return account, nil
}

// GetAccount returns the live account registered under accountNumber
func (s *LedgerService) GetAccount(accountNumber string) (*models.Account, error) {
	account, err := s.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", models.ErrAccountNotFound, accountNumber)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// SearchByName returns accounts whose holder name contains partial, ignoring
// case, sorted by account number. A blank query returns every account.
func (s *LedgerService) SearchByName(partial string) []*models.Account {
	accounts, err := s.accountRepo.GetAllWithFilters(models.AccountFilters{HolderName: partial})
	if err != nil {
		s.recordOperation(operationSearch, err)
		return []*models.Account{}
	}
	s.recordOperation(operationSearch, nil)
	return accounts
}

// ListAccounts returns the summary view of the accounts matching filters
func (s *LedgerService) ListAccounts(filters models.AccountFilters) dto.AccountListResponse {
	accounts, err := s.accountRepo.GetAllWithFilters(filters)
	if err != nil {
		s.recordOperation(operationSearch, err)
		return dto.NewAccountListResponse(nil)
	}

	snapshots := make([]models.AccountSnapshot, 0, len(accounts))
	for _, account := range accounts {
		snapshots = append(snapshots, account.Snapshot())
	}
	s.recordOperation(operationSearch, nil)
	return dto.NewAccountListResponse(snapshots)
}

// Deposit credits accountNumber and returns the new balance
func (s *LedgerService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.applyBalanceOperation(ctx, models.OperationDeposit, accountNumber, amount)
}

// Withdraw debits accountNumber under its policy and returns the new balance
func (s *LedgerService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.applyBalanceOperation(ctx, models.OperationWithdraw, accountNumber, amount)
}

func (s *LedgerService) applyBalanceOperation(ctx context.Context, op models.OperationType, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !models.IsPositiveAmount(amount) {
		s.rejectOperation(ctx, op, accountNumber, amount, models.ErrInvalidAmount)
		return decimal.Zero, models.ErrInvalidAmount
	}

	account, err := s.GetAccount(accountNumber)
	if err != nil {
		s.rejectOperation(ctx, op, accountNumber, amount, err)
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if op == models.OperationDeposit {
		balance, err = account.Deposit(amount)
	} else {
		balance, err = account.Withdraw(amount)
	}
	if err != nil {
		s.rejectOperation(ctx, op, accountNumber, amount, err)
		return balance, err
	}

	s.recordOperation(string(op), nil)
	s.logger.LogBalanceChanged(ctx, op, accountNumber, amount, balance)
	return balance, nil
}

// Transfer moves amount between two registered accounts. Nothing changes unless
// the withdrawal from the source succeeds. The transfer record is returned on
// refusal as well, marked failed.
func (s *LedgerService) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal) (*models.Transfer, error) {
	startTime := time.Now()

	if !models.IsPositiveAmount(amount) {
		s.rejectOperation(ctx, models.OperationTransfer, fromAccount, amount, models.ErrInvalidAmount)
		s.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": models.TransferStatusFailed})
		return nil, models.ErrInvalidAmount
	}

	from, err := s.GetAccount(fromAccount)
	if err != nil {
		err = fmt.Errorf("source account: %w", err)
		s.rejectOperation(ctx, models.OperationTransfer, fromAccount, amount, err)
		s.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": models.TransferStatusFailed})
		return nil, err
	}

	to, err := s.GetAccount(toAccount)
	if err != nil {
		err = fmt.Errorf("destination account: %w", err)
		s.rejectOperation(ctx, models.OperationTransfer, fromAccount, amount, err)
		s.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": models.TransferStatusFailed})
		return nil, err
	}

	transfer, err := models.ExecuteTransfer(from, to, amount)
	duration := time.Since(startTime)

	s.metrics.RecordProcessingTime(MetricTransferDuration, duration)
	s.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": transfer.Status})
	s.recordOperation(string(models.OperationTransfer), err)

	if err != nil {
		s.logger.LogTransferFailed(ctx, transfer, err, duration)
		return transfer, err
	}

	s.metrics.ObserveValue(MetricTransferAmount, amount.InexactFloat64())
	s.logger.LogTransferCompleted(ctx, transfer, duration)
	return transfer, nil
}

// AccountCount returns the number of registered accounts
func (s *LedgerService) AccountCount() int {
	return s.accountRepo.Count()
}

func (s *LedgerService) rejectOperation(ctx context.Context, op models.OperationType, accountNumber string, amount decimal.Decimal, err error) {
	s.recordOperation(string(op), err)
	s.logger.LogOperationRejected(ctx, op, accountNumber, amount, err)
}

func (s *LedgerService) recordOperation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = string(apperrors.CodeFor(err))
	}
	s.metrics.IncrementCounter(MetricLedgerOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func (s *LedgerService) recordAccountGauges() {
	counts := s.accountRepo.CountByType()
	for _, accountType := range []models.AccountType{models.AccountTypePlain, models.AccountTypeSavings, models.AccountTypeCurrent} {
		s.metrics.RecordGauge(MetricAccounts, float64(counts[accountType]), map[string]string{"type": string(accountType)})
	}
}

// createRequestError maps a failed create request onto the matching domain
// error, keeping the validation detail in the chain.
func createRequestError(err error) error {
	fields := validation.FieldErrors(err)
	switch {
	case fields == nil:
		return fmt.Errorf("invalid create account request: %w", err)
	case fields["holder_name"] != "":
		return fmt.Errorf("%w: %w", models.ErrInvalidName, err)
	case fields["account_type"] != "":
		return fmt.Errorf("%w: %w", models.ErrInvalidAccountType, err)
	case fields["initial_balance"] != "":
		return fmt.Errorf("%w: %w", models.ErrInvalidAmount, err)
	default:
		return fmt.Errorf("invalid create account request: %w", err)
	}
}
