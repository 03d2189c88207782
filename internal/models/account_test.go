package models

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newTestAccount(t *testing.T, number string, policy WithdrawalPolicy, initial int64) *Account {
	t.Helper()
	accountType := AccountTypePlain
	switch policy.Kind {
	case PolicyMinimumBalance:
		accountType = AccountTypeSavings
	case PolicyOverdraft:
		accountType = AccountTypeCurrent
	}
	a, err := NewAccount(number, "Test Holder", accountType, policy, dec(initial))
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		holder      string
		accountType AccountType
		initial     decimal.Decimal
		wantErr     error
		wantBalance decimal.Decimal
	}{
		{
			name:        "plain account with opening balance",
			number:      "1000000016",
			holder:      "Ada Lovelace",
			accountType: AccountTypePlain,
			initial:     dec(250),
			wantBalance: dec(250),
		},
		{
			name:        "savings account may open below its minimum",
			number:      "2000000014",
			holder:      "Grace Hopper",
			accountType: AccountTypeSavings,
			initial:     decimal.Zero,
			wantBalance: decimal.Zero,
		},
		{
			name:        "blank holder name",
			number:      "1000000016",
			holder:      "   ",
			accountType: AccountTypePlain,
			initial:     dec(10),
			wantErr:     ErrInvalidName,
		},
		{
			name:        "unknown account type",
			number:      "1000000016",
			holder:      "Alan Turing",
			accountType: AccountType("brokerage"),
			initial:     dec(10),
			wantErr:     ErrInvalidAccountType,
		},
		{
			name:        "negative opening balance",
			number:      "1000000016",
			holder:      "Alan Turing",
			accountType: AccountTypePlain,
			initial:     dec(-1),
			wantErr:     ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAccount(tt.number, tt.holder, tt.accountType, PlainPolicy(), tt.initial)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantBalance.Equal(a.Balance()), "balance %s", a.Balance())
			assert.Equal(t, tt.number, a.AccountNumber())
			assert.False(t, a.CreatedAt().IsZero())
		})
	}
}

func TestNewAccount_TrimsHolderName(t *testing.T) {
	a, err := NewAccount("1000000016", "  Ada Lovelace ", AccountTypePlain, PlainPolicy(), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", a.HolderName())
}

func TestAccount_Deposit_InvalidAmount(t *testing.T) {
	a := newTestAccount(t, "1000000016", PlainPolicy(), 100)

	for _, amount := range []decimal.Decimal{dec(-5), decimal.Zero} {
		_, err := a.Deposit(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.True(t, dec(100).Equal(a.Balance()))
}

func TestAccount_Withdraw_InvalidAmount(t *testing.T) {
	a := newTestAccount(t, "1000000016", PlainPolicy(), 100)

	_, err := a.Withdraw(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, dec(100).Equal(a.Balance()))
}

func TestAccount_MinimumBalanceScenario(t *testing.T) {
	s1 := newTestAccount(t, "2000000014", MinimumBalancePolicy(dec(100)), 0)

	balance, err := s1.Deposit(dec(300))
	require.NoError(t, err)
	assert.True(t, dec(300).Equal(balance))

	balance, err = s1.Withdraw(dec(250))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, dec(300).Equal(balance))

	var insufficient *InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, PolicyMinimumBalance, insufficient.Policy.Kind)
	assert.Contains(t, err.Error(), "minimum balance of 100 must be maintained")

	balance, err = s1.Withdraw(dec(150))
	require.NoError(t, err)
	assert.True(t, dec(150).Equal(balance))
}

func TestAccount_OverdraftScenario(t *testing.T) {
	c1 := newTestAccount(t, "3000000012", OverdraftPolicy(dec(5000)), 0)

	balance, err := c1.Withdraw(dec(4000))
	require.NoError(t, err)
	assert.True(t, dec(-4000).Equal(balance))

	balance, err = c1.Withdraw(dec(1000))
	require.NoError(t, err)
	assert.True(t, dec(-5000).Equal(balance))

	_, err = c1.Withdraw(dec(1))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "overdraft limit exceeded (max 5000)")
	assert.True(t, dec(-5000).Equal(c1.Balance()))
}

func TestAccount_PlainFloor(t *testing.T) {
	a := newTestAccount(t, "1000000016", PlainPolicy(), 50)

	_, err := a.Withdraw(dec(51))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "balance cannot go below zero")

	balance, err := a.Withdraw(dec(50))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestWithdrawalPolicy_Floor(t *testing.T) {
	tests := []struct {
		kind   string
		policy WithdrawalPolicy
		want   decimal.Decimal
	}{
		{kind: "plain", policy: PlainPolicy(), want: decimal.Zero},
		{kind: "minimum_balance", policy: MinimumBalancePolicy(dec(100)), want: dec(100)},
		{kind: "overdraft", policy: OverdraftPolicy(dec(5000)), want: dec(-5000)},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.policy.Floor()), "floor %s", tt.policy.Floor())
			assert.Equal(t, tt.kind, tt.policy.Kind.String())
		})
	}
}

func TestWithdrawalPolicy_Allows(t *testing.T) {
	p := MinimumBalancePolicy(dec(100))

	assert.True(t, p.Allows(dec(300), dec(200)))
	assert.False(t, p.Allows(dec(300), dec(201)))
	assert.False(t, p.Allows(dec(50), dec(1)))
}

func TestAccount_ConcurrentOperationsConserveBalance(t *testing.T) {
	a := newTestAccount(t, "1000000016", PlainPolicy(), 1000)

	const workers = 50
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		applied    = decimal.Zero
		deposit    = dec(7)
		withdrawal = dec(13)
	)

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := a.Deposit(deposit); err == nil {
				mu.Lock()
				applied = applied.Add(deposit)
				mu.Unlock()
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := a.Withdraw(withdrawal); err == nil {
				mu.Lock()
				applied = applied.Sub(withdrawal)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.True(t, dec(1000).Add(applied).Equal(a.Balance()))
	assert.False(t, a.Balance().IsNegative())
}

func TestAccount_ConcurrentWithdrawalsRespectFloor(t *testing.T) {
	a := newTestAccount(t, "2000000014", MinimumBalancePolicy(dec(100)), 1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = a.Withdraw(dec(10))
		}()
	}
	wg.Wait()

	assert.True(t, dec(100).Equal(a.Balance()), "balance %s", a.Balance())
}

func TestAccount_Snapshot(t *testing.T) {
	a, err := NewAccount("3000000012", "grace brewster hopper", AccountTypeCurrent, OverdraftPolicy(dec(5000)), dec(42))
	require.NoError(t, err)

	snap := a.Snapshot()
	assert.Equal(t, "3000000012", snap.AccountNumber)
	assert.Equal(t, "GB", snap.Initials)
	assert.Equal(t, AccountTypeCurrent, snap.AccountType)
	assert.True(t, dec(42).Equal(snap.Balance))
	assert.Contains(t, a.String(), "balance=42")
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "ada lovelace", want: "AL"},
		{name: "three words", in: "Grace Brewster Hopper", want: "GB"},
		{name: "single word", in: "Cher", want: "CX"},
		{name: "empty", in: "", want: "XX"},
		{name: "non ascii", in: "émile zola", want: "ÉZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.in))
		})
	}
}

func TestGetAccountPrefix(t *testing.T) {
	assert.Equal(t, "10", GetAccountPrefix(AccountTypePlain))
	assert.Equal(t, "20", GetAccountPrefix(AccountTypeSavings))
	assert.Equal(t, "30", GetAccountPrefix(AccountTypeCurrent))
	assert.Empty(t, GetAccountPrefix("unknown"))
}
