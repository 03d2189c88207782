// Command ledger-demo builds an in-memory ledger, replays a fixed batch against
// a savings and a current account, transfers between them and logs the results.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bank-ledger/internal/config"
	"bank-ledger/internal/dto"
	"bank-ledger/internal/logging"
	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("ledger demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var metrics services.MetricsRecorderInterface = services.NoopMetrics{}
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		metrics = services.NewPrometheusMetrics(cfg.Metrics.Namespace, registry)
	}

	validator := validation.GetValidator()
	ledgerLogger := services.NewLedgerLogger(logger)
	ledger := services.NewLedgerService(repositories.NewAccountRepository(), cfg.Ledger, validator, metrics, ledgerLogger)
	runner := services.NewBatchRunner(ledger, cfg.Batch, metrics, ledgerLogger)

	logger.Info("ledger ready",
		slog.String("environment", cfg.App.Environment),
		slog.Int("batch_workers", cfg.Batch.Workers),
		slog.Duration("batch_timeout", cfg.Batch.Timeout),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled),
	)

	savings, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{
		HolderName:  "Grace Hopper",
		AccountType: string(models.AccountTypeSavings),
	})
	if err != nil {
		return fmt.Errorf("create savings account: %w", err)
	}
	current, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{
		HolderName:  "Alan Turing",
		AccountType: string(models.AccountTypeCurrent),
	})
	if err != nil {
		return fmt.Errorf("create current account: %w", err)
	}

	for _, account := range []*models.Account{savings, current} {
		req := dto.BatchRequest{
			AccountNumber: account.AccountNumber(),
			Operations: []dto.BatchOperationRequest{
				{Type: string(models.OperationDeposit), Amount: decimal.NewFromInt(500)},
				{Type: string(models.OperationWithdraw), Amount: decimal.NewFromInt(200)},
				{Type: string(models.OperationDeposit), Amount: decimal.NewFromInt(300)},
				{Type: string(models.OperationWithdraw), Amount: decimal.NewFromInt(700)},
			},
		}
		if err := runBatch(ctx, runner, validator, logger, req); err != nil {
			return err
		}
	}

	deposit(ctx, ledger, validator, logger, dto.TransactionRequest{
		AccountNumber: savings.AccountNumber(),
		Amount:        decimal.NewFromInt(50),
	})
	transfer(ctx, ledger, validator, logger, dto.TransferRequest{
		FromAccount: current.AccountNumber(),
		ToAccount:   savings.AccountNumber(),
		Amount:      decimal.NewFromInt(250),
	})

	if cfg.Demo.RandomOps > 0 {
		generator := services.NewBatchGenerator(cfg.Demo.Seed)
		account, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{
			HolderName:     generator.HolderName(),
			AccountType:    string(models.AccountTypePlain),
			InitialBalance: decimal.NewFromInt(1000),
		})
		if err != nil {
			return fmt.Errorf("create random batch account: %w", err)
		}

		result, err := runner.RunBatch(ctx, account.AccountNumber(), generator.Generate(cfg.Demo.RandomOps), 0)
		if err != nil {
			return fmt.Errorf("random batch: %w", err)
		}
		response := dto.NewBatchResultResponse(result)
		logger.Info("random batch result",
			slog.String("account_number", response.AccountNumber),
			slog.Int("applied", response.Applied),
			slog.Int("rejected", response.Rejected),
			slog.Int("cancelled", response.Cancelled),
			slog.String("final_balance", response.FinalBalance.String()),
		)
	}

	logger.Info("accounts", slog.Any("list", ledger.ListAccounts(models.AccountFilters{})))

	if cfg.Metrics.Enabled && cfg.IsDevelopment() {
		families, err := registry.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			logger.Debug("metric family", slog.String("name", mf.GetName()), slog.Int("series", len(mf.GetMetric())))
		}
	}
	return nil
}

func runBatch(ctx context.Context, runner services.BatchRunnerInterface, validator *validation.Validator, logger *slog.Logger, req dto.BatchRequest) error {
	if err := validator.Validate(req); err != nil {
		return fmt.Errorf("invalid batch for %s: %w", req.AccountNumber, err)
	}

	result, err := runner.RunBatch(ctx, req.AccountNumber, req.ToOperations(), req.Timeout)
	if err != nil {
		return fmt.Errorf("batch for %s: %w", req.AccountNumber, err)
	}
	logger.Info("batch result", slog.Any("result", dto.NewBatchResultResponse(result)))
	return nil
}

// deposit and transfer log refusals and carry on; the demo only stops on setup errors.
func deposit(ctx context.Context, ledger services.LedgerServiceInterface, validator *validation.Validator, logger *slog.Logger, req dto.TransactionRequest) {
	if err := validator.Validate(req); err != nil {
		logger.Warn("invalid deposit request", slog.Any("error", validation.ToErrorDetail(err)))
		return
	}

	balance, err := ledger.Deposit(ctx, req.AccountNumber, req.Amount)
	if err != nil {
		logger.Warn("demo deposit refused", slog.Any("error", validation.ToErrorDetail(err)))
		return
	}
	logger.Info("deposit result",
		slog.String("account_number", req.AccountNumber),
		slog.String("balance", balance.String()),
	)
}

func transfer(ctx context.Context, ledger services.LedgerServiceInterface, validator *validation.Validator, logger *slog.Logger, req dto.TransferRequest) {
	if err := validator.Validate(req); err != nil {
		logger.Warn("invalid transfer request", slog.Any("error", validation.ToErrorDetail(err)))
		return
	}

	result, err := ledger.Transfer(ctx, req.FromAccount, req.ToAccount, req.Amount)
	if result != nil {
		logger.Info("transfer result", slog.Any("transfer", dto.NewTransferResponse(result)))
	}
	if err != nil {
		logger.Warn("demo transfer refused", slog.Any("error", validation.ToErrorDetail(err)))
	}
}
