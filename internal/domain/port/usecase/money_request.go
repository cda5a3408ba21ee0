package usecase

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// CreateMoneyRequestRequest represents an incoming manual top-up claim
type CreateMoneyRequestRequest struct {
	Amount          int64
	PaymentMethod   string
	PaymentNumber   string
	TransactionID   string
	PaymentPhotoURL string
	Details         string
}

// MoneyRequestUseCase defines money request business operations
type MoneyRequestUseCase interface {
	// Create records a pending money request for admin review
	Create(ctx context.Context, accountID uint64, req CreateMoneyRequestRequest) (*entity.MoneyRequest, error)

	// ListForAccount returns the account's requests, newest first
	ListForAccount(ctx context.Context, accountID uint64) ([]*entity.MoneyRequest, error)

	// ListAll returns every request with its owner (admin view)
	ListAll(ctx context.Context) ([]*persistence.RequestWithAccount, error)

	// Process approves or rejects a pending request. Approval transfers
	// the amount from the acting admin to the requester atomically.
	Process(ctx context.Context, adminID, requestID uint64, approve bool) (*entity.MoneyRequest, error)
}
