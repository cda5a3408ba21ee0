package dto

import (
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// InitiateTopUpRequest represents a gateway top-up initiation payload
type InitiateTopUpRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// InitiateTopUpResponse carries the gateway redirect for the client
type InitiateTopUpResponse struct {
	GatewayURL    string `json:"gatewayUrl"`
	TransactionID string `json:"transactionId"`
}

// TopUpResponse represents a top-up record in API responses
type TopUpResponse struct {
	ID            uint64     `json:"id"`
	AccountID     uint64     `json:"accountId"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewTopUpResponse maps a top-up entity to its API representation
func NewTopUpResponse(topUp *entity.TopUp) TopUpResponse {
	return TopUpResponse{
		ID:            topUp.ID,
		AccountID:     topUp.AccountID,
		Amount:        topUp.Amount,
		Status:        string(topUp.Status),
		TransactionID: topUp.TransactionID,
		ProcessedAt:   topUp.ProcessedAt,
		CreatedAt:     topUp.CreatedAt,
	}
}

// TopUpStatusResponse combines the local record with the gateway's view
type TopUpStatusResponse struct {
	TopUp         TopUpResponse `json:"topUp"`
	GatewayStatus string        `json:"gatewayStatus,omitempty"`
}

// UploadResponse carries the hosted URL of an uploaded payment proof
type UploadResponse struct {
	URL string `json:"url"`
}
