package persistence

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// TopUpRepository defines essential methods to interact with top-up data
type TopUpRepository interface {
	// Create persists a new pending top-up
	Create(ctx context.Context, topUp *entity.TopUp) error

	// Update persists top-up changes (status, transaction id, payload)
	//
	// Possible errors:
	// - ErrTopUpNotFound, ErrDatabaseConnection
	Update(ctx context.Context, topUp *entity.TopUp) error

	// GetByID retrieves a top-up by internal ID
	//
	// Possible errors:
	// - ErrTopUpNotFound, ErrDatabaseConnection
	GetByID(ctx context.Context, id uint64) (*entity.TopUp, error)

	// GetByIDForUpdate retrieves a top-up by ID holding an exclusive row lock.
	// Callback handling locks the row before the idempotency check so that a
	// success redirect and an IPN racing each other credit exactly once. Must
	// be called inside a UnitOfWork transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.TopUp, error)

	// GetByTransactionID retrieves a top-up by its generated transaction id
	//
	// Possible errors:
	// - ErrTopUpNotFound, ErrDatabaseConnection
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.TopUp, error)

	// ListByAccount returns all top-ups of one account, newest first
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.TopUp, error)
}
