package usecase

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// RegisterRequest represents an incoming registration
type RegisterRequest struct {
	Name      string
	Email     string
	Password  string
	StudentID string
}

// AuthResult carries the issued bearer token together with the account
type AuthResult struct {
	Token   string
	Account *entity.Account
}

// TransferResult reports both sides of an admin-funded balance transfer
type TransferResult struct {
	AdminBalance int64
	UserBalance  int64
	StudentID    string
}

// AccountUseCase defines account-related business operations
type AccountUseCase interface {
	// Register creates a new account with the configured starting balance
	Register(ctx context.Context, req RegisterRequest) (*entity.Account, error)

	// Login verifies credentials and issues a bearer token
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetByID retrieves a single account
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByEmail retrieves a single account by its email
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List returns all accounts (admin view)
	List(ctx context.Context) ([]*entity.Account, error)

	// AdminTransfer moves funds from the acting admin to the target account
	AdminTransfer(ctx context.Context, adminID, targetID uint64, amount int64) (*TransferResult, error)

	// AdminTransferByStudentID resolves the target by student id, then transfers
	AdminTransferByStudentID(ctx context.Context, adminID uint64, studentID string, amount int64) (*TransferResult, error)

	// Promote grants the admin role to an account
	Promote(ctx context.Context, accountID uint64) error
}
