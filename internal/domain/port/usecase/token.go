package usecase

import (
	"context"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// PurchaseTokenRequest represents an incoming meal token purchase
type PurchaseTokenRequest struct {
	Date   time.Time
	Lunch  bool
	Dinner bool
}

// Caller identifies the authenticated principal behind a request
type Caller struct {
	AccountID uint64
	IsAdmin   bool
}

// TokenUseCase defines meal token business operations
type TokenUseCase interface {
	// Purchase buys a token for tomorrow, debiting the account atomically
	Purchase(ctx context.Context, accountID uint64, req PurchaseTokenRequest) (*entity.MealToken, error)

	// ListForAccount returns the account's tokens, newest first
	ListForAccount(ctx context.Context, accountID uint64) ([]*entity.MealToken, error)

	// Get returns a single token, restricted to its owner or an admin
	Get(ctx context.Context, caller Caller, tokenID uint64) (*entity.MealToken, error)

	// ListAll returns every token with its owner (admin view)
	ListAll(ctx context.Context) ([]*persistence.TokenWithOwner, error)

	// MarkUsed marks a token as consumed at the counter
	MarkUsed(ctx context.Context, tokenID uint64) (*entity.MealToken, error)
}
