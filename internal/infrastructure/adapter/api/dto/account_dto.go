package dto

import (
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StudentID string `json:"studentId" binding:"required"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse represents an account in API responses. The password
// hash never leaves the server.
type AccountResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"studentId"`
	Balance   int64     `json:"balance"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAccountResponse maps an account entity to its API representation
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		StudentID: account.StudentID,
		Balance:   account.Balance(),
		IsAdmin:   account.IsAdmin,
		CreatedAt: account.CreatedAt,
	}
}

// AuthResponse carries the bearer token and the authenticated account
type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AdjustBalanceRequest represents an admin-funded transfer to an account
type AdjustBalanceRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// AdjustBalanceByStudentIDRequest targets the transfer by student id
type AdjustBalanceByStudentIDRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Amount    int64  `json:"amount" binding:"required"`
}

// TransferResponse reports both balances after an admin transfer
type TransferResponse struct {
	AdminBalance int64  `json:"adminBalance"`
	UserBalance  int64  `json:"userBalance"`
	StudentID    string `json:"studentId"`
}
