package entity

import (
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// DefaultMealUnitPrice is the price of a single meal (lunch or dinner), in Tk
const DefaultMealUnitPrice int64 = 40

// TokenStatus represents the lifecycle status of a meal token
type TokenStatus string

// Token statuses
const (
	TokenStatusActive TokenStatus = "active"
	TokenStatusUsed   TokenStatus = "used"
)

// MealToken is a reservation for one or both meals on a specific future calendar date.
// At most one token may exist per (account, date).
type MealToken struct {
	ID        uint64
	AccountID uint64
	Date      time.Time // Date-only: normalized to midnight
	Lunch     bool
	Dinner    bool
	Status    TokenStatus
	CreatedAt time.Time
}

// NormalizeDate truncates a timestamp to midnight, keeping its location
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewMealToken creates a token for the given account and date.
// The date must be tomorrow relative to the provider's current time, and at
// least one meal must be selected. The incoming date carries only calendar
// components (the wire format is date-only, parsed as UTC), so it is rebuilt
// at midnight in the server clock's zone rather than compared as an instant.
func NewMealToken(accountID uint64, date time.Time, lunch, dinner bool, timeProvider coreport.TimeProvider) (*MealToken, error) {
	if !lunch && !dinner {
		return nil, errs.ErrInvalidMealSelection
	}

	now := timeProvider.Now()
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := NormalizeDate(now.AddDate(0, 0, 1))

	if !requested.Equal(tomorrow) {
		return nil, errs.ErrInvalidTokenDate
	}

	return &MealToken{
		AccountID: accountID,
		Date:      requested,
		Lunch:     lunch,
		Dinner:    dinner,
		Status:    TokenStatusActive,
		CreatedAt: now,
	}, nil
}

// Price computes the token price from the per-meal unit price.
// Not stored; derived on demand.
func (t *MealToken) Price(unitPrice int64) int64 {
	var price int64
	if t.Lunch {
		price += unitPrice
	}
	if t.Dinner {
		price += unitPrice
	}
	return price
}

// MarkUsed transitions the token to its terminal used status
func (t *MealToken) MarkUsed() error {
	if t.Status == TokenStatusUsed {
		return errs.ErrTokenAlreadyUsed
	}
	t.Status = TokenStatusUsed
	return nil
}
