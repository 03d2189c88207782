package repositories

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"bank-ledger/internal/models"
)

var (
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrNilAccount          = errors.New("account is nil")
)

// accountRepository is the in-memory account registry. It owns the account map;
// the accounts themselves guard their own balances.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	numbers  *models.AccountNumberGenerator
}

// NewAccountRepository creates an empty registry with its own number sequence
func NewAccountRepository() AccountRepositoryInterface {
	return &accountRepository{
		accounts: make(map[string]*models.Account),
		numbers:  models.NewAccountNumberGenerator(),
	}
}

// Create inserts an account. Once Create returns, lookups see the account.
func (r *accountRepository) Create(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountNumber()]; exists {
		return fmt.Errorf("%w: %s", ErrAccountNumberExists, account.AccountNumber())
	}
	r.accounts[account.AccountNumber()] = account
	return nil
}

// GetByAccountNumber retrieves an account by account number. Malformed numbers
// are reported as not found without touching the map.
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	if !models.ValidateAccountNumber(accountNumber) {
		return nil, models.ErrAccountNotFound
	}

	r.mu.RLock()
	account, ok := r.accounts[accountNumber]
	r.mu.RUnlock()

	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return account, nil
}

// GetAllWithFilters returns the matching accounts sorted by account number.
// The slice is a copy; the accounts in it are live.
func (r *accountRepository) GetAllWithFilters(filters models.AccountFilters) ([]*models.Account, error) {
	r.mu.RLock()
	matches := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		if filters.Matches(account) {
			matches = append(matches, account)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].AccountNumber() < matches[j].AccountNumber()
	})
	return matches, nil
}

// GenerateUniqueAccountNumber allocates the next number for accountType
func (r *accountRepository) GenerateUniqueAccountNumber(accountType models.AccountType) (string, error) {
	number, err := r.numbers.Next(accountType)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}
	return number, nil
}

func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// CountByType returns the number of registered accounts per type
func (r *accountRepository) CountByType() map[models.AccountType]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.AccountType]int, 3)
	for _, account := range r.accounts {
		counts[account.Type()]++
	}
	return counts
}
