package usecase

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// InitiateTopUpResult carries the gateway redirect for a new payment session
type InitiateTopUpResult struct {
	GatewayURL    string
	TransactionID string
}

// GatewayCallback represents the fields a gateway callback posts back
type GatewayCallback struct {
	TransactionID string
	ValidationID  string
	Status        string
	RawPayload    []byte
}

// TopUpStatusResult combines the local record with the gateway's view
type TopUpStatusResult struct {
	TopUp         *entity.TopUp
	GatewayStatus string
}

// TopUpUseCase defines gateway top-up business operations
type TopUpUseCase interface {
	// Initiate creates a pending top-up and opens a gateway payment session
	Initiate(ctx context.Context, accountID uint64, amount int64) (*InitiateTopUpResult, error)

	// Complete validates the payment with the gateway and credits the
	// account exactly once, no matter how many callbacks arrive.
	Complete(ctx context.Context, cb GatewayCallback) (*entity.TopUp, error)

	// MarkFailed records a gateway failure for a pending top-up
	MarkFailed(ctx context.Context, cb GatewayCallback) error

	// MarkCancelled records a user cancellation for a pending top-up
	MarkCancelled(ctx context.Context, cb GatewayCallback) error

	// CheckStatus returns the local record plus the gateway's transaction view
	CheckStatus(ctx context.Context, transactionID string) (*TopUpStatusResult, error)
}
