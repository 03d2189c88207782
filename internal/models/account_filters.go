package models

import (
	"strings"
)

// AccountFilters contains filter criteria for account queries
type AccountFilters struct {
	HolderName  string
	AccountType AccountType
}

// Matches reports whether the account passes every non-empty filter. The
// holder name filter is a case-insensitive substring match.
func (f AccountFilters) Matches(a *Account) bool {
	if f.AccountType != "" && a.Type() != f.AccountType {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.HolderName))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.HolderName()), query)
}
