package persistence

import (
	"context"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// TokenOwner carries the account details shown alongside a token in admin views
type TokenOwner struct {
	Name      string
	Email     string
	StudentID string
}

// TokenWithOwner pairs a meal token with its owner's details
type TokenWithOwner struct {
	Token *entity.MealToken
	Owner TokenOwner
}

// DailyTokenCount aggregates lunch/dinner counts for one calendar date
type DailyTokenCount struct {
	Date        time.Time
	LunchCount  int64
	DinnerCount int64
}

// TokenRepository defines essential methods to interact with meal-token data
type TokenRepository interface {
	// Create persists a new token. The unique index on (account, date) backs
	// the one-token-per-day invariant even under concurrent purchases.
	//
	// Possible errors:
	// - ErrDuplicateToken: If the account already holds a token for the date
	// - ErrDatabaseConnection
	Create(ctx context.Context, token *entity.MealToken) error

	// Update persists token changes (status)
	//
	// Possible errors:
	// - ErrTokenNotFound, ErrDatabaseConnection
	Update(ctx context.Context, token *entity.MealToken) error

	// GetByID retrieves a token by ID
	//
	// Possible errors:
	// - ErrTokenNotFound, ErrDatabaseConnection
	GetByID(ctx context.Context, id uint64) (*entity.MealToken, error)

	// FindByAccountAndDate retrieves the token an account holds for a date,
	// or ErrTokenNotFound when none exists
	FindByAccountAndDate(ctx context.Context, accountID uint64, date time.Time) (*entity.MealToken, error)

	// ListByAccount returns all tokens of one account, newest date first
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MealToken, error)

	// ListAll returns all tokens with owner details, newest date first
	ListAll(ctx context.Context) ([]*TokenWithOwner, error)

	// ListByDate returns all tokens for one calendar date with owner details
	ListByDate(ctx context.Context, date time.Time) ([]*TokenWithOwner, error)

	// CountAll returns the total number of tokens
	CountAll(ctx context.Context) (int64, error)

	// CountByDate returns the number of tokens for one calendar date
	CountByDate(ctx context.Context, date time.Time) (int64, error)

	// CountDailyInRange aggregates lunch/dinner counts per date over [from, to]
	CountDailyInRange(ctx context.Context, from, to time.Time) ([]DailyTokenCount, error)
}
