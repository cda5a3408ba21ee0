package persistence

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account by ID holding an exclusive row lock.
	// Must be called inside a UnitOfWork transaction; the lock is released at
	// commit or rollback.
	//
	// Possible errors:
	// - ErrAccountNotFound, ErrDatabaseConnection
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByEmail retrieves an account by its unique email
	//
	// Possible errors:
	// - ErrAccountNotFound, ErrDatabaseConnection
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// GetByStudentID retrieves an account by its unique student identifier
	//
	// Possible errors:
	// - ErrAccountNotFound, ErrDatabaseConnection
	GetByStudentID(ctx context.Context, studentID string) (*entity.Account, error)

	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If email or student ID is already registered
	// - ErrDatabaseConnection
	Create(ctx context.Context, account *entity.Account) error

	// Update persists account changes, including the balance
	//
	// Possible errors:
	// - ErrAccountNotFound, ErrDatabaseConnection
	Update(ctx context.Context, account *entity.Account) error

	// List returns all accounts, newest first
	List(ctx context.Context) ([]*entity.Account, error)

	// CountStudents returns the number of non-admin accounts
	CountStudents(ctx context.Context) (int64, error)
}
