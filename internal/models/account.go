package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// AccountType selects the withdrawal policy an account is created with.
type AccountType string

const (
	AccountTypePlain   AccountType = "plain"
	AccountTypeSavings AccountType = "savings"
	AccountTypeCurrent AccountType = "current"

	// Account number prefixes by type
	PlainPrefix   = "10"
	SavingsPrefix = "20"
	CurrentPrefix = "30"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidName         = errors.New("holder name cannot be empty")
	ErrInvalidAccountType  = errors.New("invalid account type")
)

// PolicyKind tags the withdrawal rule carried by a WithdrawalPolicy.
type PolicyKind int

const (
	PolicyPlain PolicyKind = iota
	PolicyMinimumBalance
	PolicyOverdraft
)

func (k PolicyKind) String() string {
	switch k {
	case PolicyPlain:
		return "plain"
	case PolicyMinimumBalance:
		return "minimum_balance"
	case PolicyOverdraft:
		return "overdraft"
	default:
		return "unknown"
	}
}

// WithdrawalPolicy is a tagged variant. Threshold is the minimum balance for
// PolicyMinimumBalance and the overdraft limit for PolicyOverdraft; it is
// ignored for PolicyPlain.
type WithdrawalPolicy struct {
	Kind      PolicyKind
	Threshold decimal.Decimal
}

func PlainPolicy() WithdrawalPolicy {
	return WithdrawalPolicy{Kind: PolicyPlain}
}

func MinimumBalancePolicy(minimum decimal.Decimal) WithdrawalPolicy {
	return WithdrawalPolicy{Kind: PolicyMinimumBalance, Threshold: minimum}
}

func OverdraftPolicy(limit decimal.Decimal) WithdrawalPolicy {
	return WithdrawalPolicy{Kind: PolicyOverdraft, Threshold: limit}
}

// Floor returns the lowest balance a withdrawal may leave behind.
func (p WithdrawalPolicy) Floor() decimal.Decimal {
	switch p.Kind {
	case PolicyMinimumBalance:
		return p.Threshold
	case PolicyOverdraft:
		return p.Threshold.Neg()
	default:
		return decimal.Zero
	}
}

// Allows reports whether withdrawing amount from balance keeps the balance at
// or above the policy floor.
func (p WithdrawalPolicy) Allows(balance, amount decimal.Decimal) bool {
	return balance.Sub(amount).GreaterThanOrEqual(p.Floor())
}

// InsufficientBalanceError describes which policy rejected a withdrawal.
// It matches ErrInsufficientBalance with errors.Is.
type InsufficientBalanceError struct {
	AccountNumber string
	Policy        WithdrawalPolicy
	Balance       decimal.Decimal
	Amount        decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	var reason string
	switch e.Policy.Kind {
	case PolicyMinimumBalance:
		reason = fmt.Sprintf("minimum balance of %s must be maintained", e.Policy.Threshold.String())
	case PolicyOverdraft:
		reason = fmt.Sprintf("overdraft limit exceeded (max %s)", e.Policy.Threshold.String())
	default:
		reason = "balance cannot go below zero"
	}
	return fmt.Sprintf("%s: %s (account %s, balance %s, requested %s)",
		ErrInsufficientBalance.Error(), reason, e.AccountNumber, e.Balance.String(), e.Amount.String())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// Account is a ledger account. The balance is only reachable through methods
// that hold mu.
type Account struct {
	accountNumber string
	holderName    string
	accountType   AccountType
	policy        WithdrawalPolicy
	createdAt     time.Time

	mu      sync.Mutex
	balance decimal.Decimal
}

// AccountSnapshot is a point-in-time copy of an account.
type AccountSnapshot struct {
	AccountNumber string
	HolderName    string
	Initials      string
	AccountType   AccountType
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// NewAccount validates its inputs before the account exists and applies a
// positive initial balance through the regular deposit path.
func NewAccount(accountNumber, holderName string, accountType AccountType, policy WithdrawalPolicy, initialBalance decimal.Decimal) (*Account, error) {
	if accountNumber == "" {
		return nil, errors.New("account number is required")
	}

	name := strings.TrimSpace(holderName)
	if name == "" {
		return nil, ErrInvalidName
	}

	if !IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}

	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	a := &Account{
		accountNumber: accountNumber,
		holderName:    name,
		accountType:   accountType,
		policy:        policy,
		createdAt:     time.Now(),
		balance:       decimal.Zero,
	}

	if initialBalance.IsPositive() {
		if _, err := a.Deposit(initialBalance); err != nil {
			return nil, fmt.Errorf("initial deposit: %w", err)
		}
	}

	return a, nil
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) HolderName() string {
	return a.holderName
}

func (a *Account) Type() AccountType {
	return a.accountType
}

func (a *Account) Policy() WithdrawalPolicy {
	return a.policy
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Deposit credits the account and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !IsPositiveAmount(amount) {
		return decimal.Zero, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.credit(amount)
	return a.balance, nil
}

// Withdraw debits the account if the withdrawal policy allows it and returns
// the new balance.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !IsPositiveAmount(amount) {
		return decimal.Zero, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.debit(amount); err != nil {
		return a.balance, err
	}
	return a.balance, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Snapshot copies the account under a single lock hold.
func (a *Account) Snapshot() AccountSnapshot {
	a.mu.Lock()
	balance := a.balance
	a.mu.Unlock()

	return AccountSnapshot{
		AccountNumber: a.accountNumber,
		HolderName:    a.holderName,
		Initials:      Initials(a.holderName),
		AccountType:   a.accountType,
		Balance:       balance,
		CreatedAt:     a.createdAt,
	}
}

func (a *Account) String() string {
	s := a.Snapshot()
	return fmt.Sprintf("Account{number=%s, holder=%s, type=%s, balance=%s}",
		s.AccountNumber, s.HolderName, s.AccountType, s.Balance.String())
}

// credit and debit require mu to be held.
func (a *Account) credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) debit(amount decimal.Decimal) error {
	if !a.policy.Allows(a.balance, amount) {
		return &InsufficientBalanceError{
			AccountNumber: a.accountNumber,
			Policy:        a.policy,
			Balance:       a.balance,
			Amount:        amount,
		}
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Helper functions

// IsPositiveAmount is the monetary amount predicate: amount > 0.
func IsPositiveAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType AccountType) bool {
	switch accountType {
	case AccountTypePlain, AccountTypeSavings, AccountTypeCurrent:
		return true
	default:
		return false
	}
}

// GetAccountPrefix returns the prefix for an account type
func GetAccountPrefix(accountType AccountType) string {
	switch accountType {
	case AccountTypePlain:
		return PlainPrefix
	case AccountTypeSavings:
		return SavingsPrefix
	case AccountTypeCurrent:
		return CurrentPrefix
	default:
		return ""
	}
}

// Initials returns the first letters of the first two words of name, upper
// cased and padded with 'X' to two characters.
func Initials(name string) string {
	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(part)[0]))
		if len(initials) == 2 {
			break
		}
	}
	for len(initials) < 2 {
		initials = append(initials, 'X')
	}
	return string(initials)
}
