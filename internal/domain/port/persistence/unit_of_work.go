package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating balance-affecting operations
// across multiple repositories so that either all related documents change or
// none do. Begin returns a context carrying the transaction; repositories
// obtained through that context are bound to it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTokenRepository returns a token repository bound to the current transaction
	GetTokenRepository(ctx context.Context) TokenRepository

	// GetMoneyRequestRepository returns a money-request repository bound to the current transaction
	GetMoneyRequestRepository(ctx context.Context) MoneyRequestRepository

	// GetTopUpRepository returns a top-up repository bound to the current transaction
	GetTopUpRepository(ctx context.Context) TopUpRepository
}
