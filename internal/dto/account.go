package dto

import (
	"time"

	"bank-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the input for opening a new account
type CreateAccountRequest struct {
	HolderName     string          `json:"holder_name" validate:"required,holder_name"`
	AccountType    string          `json:"account_type" validate:"required,account_type"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"gte=0"`
}

// TransactionRequest represents a deposit or withdrawal against one account
type TransactionRequest struct {
	AccountNumber string          `json:"account_number" validate:"required,account_number"`
	Amount        decimal.Decimal `json:"amount" validate:"positive_amount"`
}

// TransferRequest represents the input for moving funds between accounts
type TransferRequest struct {
	FromAccount string          `json:"from_account" validate:"required,account_number"`
	ToAccount   string          `json:"to_account" validate:"required,account_number"`
	Amount      decimal.Decimal `json:"amount" validate:"positive_amount"`
}

// Account Response DTOs

// AccountSummary is the search and listing view of an account
type AccountSummary struct {
	AccountNumber string          `json:"account_number"`
	HolderName    string          `json:"holder_name"`
	Initials      string          `json:"initials"`
	AccountType   string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewAccountSummary converts a snapshot into its summary view
func NewAccountSummary(s models.AccountSnapshot) AccountSummary {
	return AccountSummary{
		AccountNumber: s.AccountNumber,
		HolderName:    s.HolderName,
		Initials:      s.Initials,
		AccountType:   string(s.AccountType),
		Balance:       s.Balance,
		CreatedAt:     s.CreatedAt,
	}
}

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts     []AccountSummary `json:"accounts"`
	Total        int              `json:"total"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}

// NewAccountListResponse builds the list view, preserving the snapshot order
func NewAccountListResponse(snapshots []models.AccountSnapshot) AccountListResponse {
	resp := AccountListResponse{
		Accounts:     make([]AccountSummary, 0, len(snapshots)),
		Total:        len(snapshots),
		TotalBalance: decimal.Zero,
	}
	for _, s := range snapshots {
		resp.Accounts = append(resp.Accounts, NewAccountSummary(s))
		resp.TotalBalance = resp.TotalBalance.Add(s.Balance)
	}
	return resp
}

// TransferResponse represents the outcome of a transfer
type TransferResponse struct {
	TransferID  string          `json:"transfer_id"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	FromBalance decimal.Decimal `json:"from_balance"`
	ToBalance   decimal.Decimal `json:"to_balance"`
	Error       string          `json:"error,omitempty"`
}

// NewTransferResponse converts a transfer record into its response view
func NewTransferResponse(t *models.Transfer) TransferResponse {
	resp := TransferResponse{
		TransferID:  t.ID.String(),
		FromAccount: t.FromAccount,
		ToAccount:   t.ToAccount,
		Amount:      t.Amount,
		Status:      t.Status,
		FromBalance: t.FromBalance,
		ToBalance:   t.ToBalance,
	}
	if t.ErrorMessage != nil {
		resp.Error = *t.ErrorMessage
	}
	return resp
}
