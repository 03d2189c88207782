package services

import (
	"sync"

	"bank-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	defaultMinBatchAmount = 1
	defaultMaxBatchAmount = 1000
	// share of generated operations that are deposits, in percent
	depositWeight = 60
)

// BatchGenerator builds random deposit/withdraw mixes for demo and load runs.
// The same seed yields the same sequence of batches.
type BatchGenerator struct {
	mu        sync.Mutex
	faker     *gofakeit.Faker
	minAmount float64
	maxAmount float64
}

// NewBatchGenerator creates a generator seeded with seed
func NewBatchGenerator(seed uint64) *BatchGenerator {
	return &BatchGenerator{
		faker:     gofakeit.New(seed),
		minAmount: defaultMinBatchAmount,
		maxAmount: defaultMaxBatchAmount,
	}
}

// Generate returns n operations with amounts rounded to cents
func (g *BatchGenerator) Generate(n int) []models.BatchOperation {
	if n <= 0 {
		return []models.BatchOperation{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ops := make([]models.BatchOperation, 0, n)
	for i := 0; i < n; i++ {
		amount := decimal.NewFromFloat(g.faker.Price(g.minAmount, g.maxAmount)).Round(2)
		if amount.LessThan(decimal.NewFromFloat(g.minAmount)) {
			amount = decimal.NewFromFloat(g.minAmount)
		}

		if g.faker.Number(1, 100) <= depositWeight {
			ops = append(ops, models.NewDepositOperation(amount))
		} else {
			ops = append(ops, models.NewWithdrawOperation(amount))
		}
	}
	return ops
}

// HolderName returns a random full name for generated accounts
func (g *BatchGenerator) HolderName() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.Name()
}
