package entity

import (
	"strings"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// DefaultStartingBalance is the balance granted to every new account, in Tk
const DefaultStartingBalance int64 = 500

// Account represents a user of the meal-token system with a spendable balance
type Account struct {
	ID           uint64
	Name         string
	Email        string
	StudentID    string
	PasswordHash string
	balance      int64 // Balance in whole Tk (private, mutated only through Credit/Debit)
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates a new account with the given starting balance
func NewAccount(name, email, studentID, passwordHash string, startingBalance int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(studentID) == "" {
		return nil, errs.ErrInvalidAccountData
	}
	if startingBalance < 0 {
		return nil, errs.ErrNegativeBalance
	}

	now := timeProvider.Now()
	return &Account{
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		StudentID:    strings.TrimSpace(studentID),
		PasswordHash: passwordHash,
		balance:      startingBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in Tk
func (a *Account) Balance() int64 {
	return a.balance
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	a.balance = balance
	a.UpdatedAt = timeProvider.Now()
}

// CanCover reports whether the account can fund a debit of the given amount
func (a *Account) CanCover(amount int64) bool {
	return a.balance >= amount
}

// Credit adds the amount to the balance
func (a *Account) Credit(amount int64, timeProvider coreport.TimeProvider) {
	a.balance += amount
	a.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns a detailed insufficient balance error otherwise.
func (a *Account) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if a.balance < amount {
		return errs.NewInsufficientBalanceError(a.ID, amount, a.balance)
	}

	a.balance -= amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Promote grants the account the admin role
func (a *Account) Promote(timeProvider coreport.TimeProvider) error {
	if a.IsAdmin {
		return errs.ErrAlreadyAdmin
	}
	a.IsAdmin = true
	a.UpdatedAt = timeProvider.Now()
	return nil
}
