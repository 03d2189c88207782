package repositories

import (
	"bank-ledger/internal/models"
)

// AccountRepositoryInterface defines the contract for the account registry
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	GetAllWithFilters(filters models.AccountFilters) ([]*models.Account, error)
	GenerateUniqueAccountNumber(accountType models.AccountType) (string, error)
	Count() int
	CountByType() map[models.AccountType]int
}
