package models

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

const (
	accountNumberLength = 10
	maxAccountSequence  = 9_999_999
)

var ErrAccountNumbersExhausted = errors.New("account number sequence exhausted")

// AccountNumberGenerator hands out account numbers from a strictly increasing
// sequence shared by all account types. Numbers are never reused.
//
// Layout: 2-digit type prefix, 7-digit sequence, 1 check digit.
type AccountNumberGenerator struct {
	mu   sync.Mutex
	last uint64
}

func NewAccountNumberGenerator() *AccountNumberGenerator {
	return &AccountNumberGenerator{}
}

// Next allocates the next account number for accountType.
func (g *AccountNumberGenerator) Next(accountType AccountType) (string, error) {
	prefix := GetAccountPrefix(accountType)
	if prefix == "" {
		return "", ErrInvalidAccountType
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.last >= maxAccountSequence {
		return "", ErrAccountNumbersExhausted
	}
	g.last++

	body := fmt.Sprintf("%s%07d", prefix, g.last)
	return body + strconv.Itoa(CalculateChecksum(body)), nil
}

// CalculateChecksum computes the Luhn check digit for the 9-digit body of an
// account number. It returns -1 for malformed input.
func CalculateChecksum(body string) int {
	if len(body) != accountNumberLength-1 {
		return -1
	}

	sum := 0
	for i, char := range body {
		if char < '0' || char > '9' {
			return -1
		}
		digit := int(char - '0')
		// rightmost body digit sits at an even index, so double the even ones
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return (10 - (sum % 10)) % 10
}

// ValidateAccountNumber validates an account number format
func ValidateAccountNumber(accountNumber string) bool {
	if len(accountNumber) != accountNumberLength {
		return false
	}

	prefix := accountNumber[:2]
	if prefix != PlainPrefix && prefix != SavingsPrefix && prefix != CurrentPrefix {
		return false
	}

	check := CalculateChecksum(accountNumber[:accountNumberLength-1])
	if check < 0 {
		return false
	}

	return int(accountNumber[accountNumberLength-1]-'0') == check
}
