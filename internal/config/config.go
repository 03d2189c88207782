package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bank-ledger/internal/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	Ledger  LedgerConfig
	Batch   BatchConfig
	Log     LogConfig
	Metrics MetricsConfig
	Demo    DemoConfig
}

type AppConfig struct {
	Environment string
	EnvFile     string
}

// LedgerConfig holds the thresholds of the account variants.
type LedgerConfig struct {
	SavingsMinBalance     decimal.Decimal
	CurrentOverdraftLimit decimal.Decimal
}

type BatchConfig struct {
	Workers       int
	Timeout       time.Duration
	DispatchRate  float64
	DispatchBurst int
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

type DemoConfig struct {
	RandomOps int
	Seed      uint64
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			EnvFile:     envFile,
		},
		Ledger: LedgerConfig{
			SavingsMinBalance:     getDecimalEnv("LEDGER_SAVINGS_MIN_BALANCE", decimal.NewFromInt(100)),
			CurrentOverdraftLimit: getDecimalEnv("LEDGER_CURRENT_OVERDRAFT_LIMIT", decimal.NewFromInt(5000)),
		},
		Batch: BatchConfig{
			Workers:       getIntEnv("BATCH_WORKERS", 4),
			Timeout:       getDurationEnv("BATCH_TIMEOUT", 5*time.Second),
			DispatchRate:  getFloatEnv("BATCH_DISPATCH_RATE", 0),
			DispatchBurst: getIntEnv("BATCH_DISPATCH_BURST", 1),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Metrics: MetricsConfig{
			Enabled:   getBoolEnv("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "ledger"),
		},
		Demo: DemoConfig{
			RandomOps: getIntEnv("DEMO_RANDOM_OPS", 0),
			Seed:      getUintEnv("DEMO_SEED", 1),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the ledger cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Ledger.SavingsMinBalance.IsNegative() {
		errs = append(errs, errors.New("LEDGER_SAVINGS_MIN_BALANCE must not be negative"))
	}
	if c.Ledger.CurrentOverdraftLimit.IsNegative() {
		errs = append(errs, errors.New("LEDGER_CURRENT_OVERDRAFT_LIMIT must not be negative"))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("BATCH_WORKERS must be at least 1, got %d", c.Batch.Workers))
	}
	if c.Batch.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("BATCH_TIMEOUT must be positive, got %s", c.Batch.Timeout))
	}
	if c.Batch.DispatchRate < 0 {
		errs = append(errs, errors.New("BATCH_DISPATCH_RATE must not be negative"))
	}
	if c.Batch.DispatchRate > 0 && c.Batch.DispatchBurst < 1 {
		errs = append(errs, errors.New("BATCH_DISPATCH_BURST must be at least 1 when a dispatch rate is set"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not one of text, json", c.Log.Format))
	}
	if c.Demo.RandomOps < 0 {
		errs = append(errs, errors.New("DEMO_RANDOM_OPS must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// PolicyFor returns the withdrawal policy new accounts of accountType get.
func (c LedgerConfig) PolicyFor(accountType models.AccountType) (models.WithdrawalPolicy, error) {
	switch accountType {
	case models.AccountTypePlain:
		return models.PlainPolicy(), nil
	case models.AccountTypeSavings:
		return models.MinimumBalancePolicy(c.SavingsMinBalance), nil
	case models.AccountTypeCurrent:
		return models.OverdraftPolicy(c.CurrentOverdraftLimit), nil
	default:
		return models.WithdrawalPolicy{}, models.ErrInvalidAccountType
	}
}

// DefaultLedgerConfig returns the stock thresholds: minimum balance 100,
// overdraft limit 5000.
func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		SavingsMinBalance:     decimal.NewFromInt(100),
		CurrentOverdraftLimit: decimal.NewFromInt(5000),
	}
}

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getUintEnv(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if decVal, err := decimal.NewFromString(value); err == nil {
			return decVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
