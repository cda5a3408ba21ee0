package persistence

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// RequestWithAccount pairs a money request with its requester's details
type RequestWithAccount struct {
	Request *entity.MoneyRequest
	Owner   TokenOwner
}

// MoneyRequestRepository defines essential methods to interact with money-request data
type MoneyRequestRepository interface {
	// Create persists a new pending request
	Create(ctx context.Context, request *entity.MoneyRequest) error

	// Update persists request changes (status, processedBy, processedAt)
	//
	// Possible errors:
	// - ErrRequestNotFound, ErrDatabaseConnection
	Update(ctx context.Context, request *entity.MoneyRequest) error

	// GetByID retrieves a request by ID
	//
	// Possible errors:
	// - ErrRequestNotFound, ErrDatabaseConnection
	GetByID(ctx context.Context, id uint64) (*entity.MoneyRequest, error)

	// GetByIDForUpdate retrieves a request by ID holding an exclusive row lock,
	// so two admins cannot process the same request concurrently. Must be
	// called inside a UnitOfWork transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.MoneyRequest, error)

	// ListByAccount returns all requests of one account, newest first
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MoneyRequest, error)

	// ListAll returns all requests with requester details, newest first
	ListAll(ctx context.Context) ([]*RequestWithAccount, error)
}
