package services

import (
	"sync"
	"testing"

	"bank-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchGenerator_Generate(t *testing.T) {
	ops := NewBatchGenerator(1).Generate(500)

	require.Len(t, ops, 500)
	deposits := 0
	for _, op := range ops {
		assert.True(t, models.IsValidBatchOperationType(op.Type))
		assert.True(t, op.Amount.GreaterThanOrEqual(amount(defaultMinBatchAmount)), "amount %s", op.Amount)
		assert.True(t, op.Amount.LessThanOrEqual(amount(defaultMaxBatchAmount)), "amount %s", op.Amount)
		assert.LessOrEqual(t, -op.Amount.Exponent(), int32(2), "amount %s has more than two decimals", op.Amount)
		if op.Type == models.OperationDeposit {
			deposits++
		}
	}
	assert.Greater(t, deposits, 0)
	assert.Less(t, deposits, 500)
}

func TestBatchGenerator_SameSeedSameOperations(t *testing.T) {
	a := NewBatchGenerator(99).Generate(50)
	b := NewBatchGenerator(99).Generate(50)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Type, b[i].Type)
		assert.True(t, a[i].Amount.Equal(b[i].Amount))
	}
}

func TestBatchGenerator_NonPositiveCount(t *testing.T) {
	g := NewBatchGenerator(1)

	assert.Empty(t, g.Generate(0))
	assert.NotNil(t, g.Generate(-3))
}

func TestBatchGenerator_HolderName(t *testing.T) {
	g := NewBatchGenerator(5)

	assert.NotEmpty(t, g.HolderName())
	assert.Equal(t, NewBatchGenerator(5).HolderName(), NewBatchGenerator(5).HolderName())
}

func TestBatchGenerator_ConcurrentUse(t *testing.T) {
	g := NewBatchGenerator(3)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, g.Generate(20), 20)
			assert.NotEmpty(t, g.HolderName())
		}()
	}
	wg.Wait()
}
