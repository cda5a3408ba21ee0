package dto

import (
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// CreateMoneyRequestRequest represents a manual top-up claim payload
type CreateMoneyRequestRequest struct {
	Amount          int64  `json:"amount" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	PaymentNumber   string `json:"paymentNumber" binding:"required"`
	TransactionID   string `json:"transactionId" binding:"required"`
	PaymentPhotoURL string `json:"paymentPhotoUrl" binding:"required"`
	Details         string `json:"details"`
}

// ProcessMoneyRequestRequest carries the admin's decision
type ProcessMoneyRequestRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// MoneyRequestResponse represents a money request in API responses
type MoneyRequestResponse struct {
	ID              uint64     `json:"id"`
	AccountID       uint64     `json:"accountId"`
	Amount          int64      `json:"amount"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentNumber   string     `json:"paymentNumber"`
	TransactionID   string     `json:"transactionId"`
	PaymentPhotoURL string     `json:"paymentPhotoUrl"`
	Details         string     `json:"details"`
	Status          string     `json:"status"`
	ProcessedBy     *uint64    `json:"processedBy,omitempty"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// NewMoneyRequestResponse maps a money request entity to its API representation
func NewMoneyRequestResponse(request *entity.MoneyRequest) MoneyRequestResponse {
	return MoneyRequestResponse{
		ID:              request.ID,
		AccountID:       request.AccountID,
		Amount:          request.Amount,
		PaymentMethod:   string(request.PaymentMethod),
		PaymentNumber:   request.PaymentNumber,
		TransactionID:   request.TransactionID,
		PaymentPhotoURL: request.PaymentPhotoURL,
		Details:         request.Details,
		Status:          string(request.Status),
		ProcessedBy:     request.ProcessedBy,
		ProcessedAt:     request.ProcessedAt,
		CreatedAt:       request.CreatedAt,
	}
}

// NewMoneyRequestResponses maps a slice of money request entities
func NewMoneyRequestResponses(requests []*entity.MoneyRequest) []MoneyRequestResponse {
	responses := make([]MoneyRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, NewMoneyRequestResponse(request))
	}
	return responses
}

// MoneyRequestWithOwnerResponse pairs a request with its requester for admin views
type MoneyRequestWithOwnerResponse struct {
	MoneyRequestResponse
	Owner OwnerResponse `json:"owner"`
}

// NewMoneyRequestWithOwnerResponses maps requests with requester details
func NewMoneyRequestWithOwnerResponses(requests []*persistence.RequestWithAccount) []MoneyRequestWithOwnerResponse {
	responses := make([]MoneyRequestWithOwnerResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, MoneyRequestWithOwnerResponse{
			MoneyRequestResponse: NewMoneyRequestResponse(r.Request),
			Owner: OwnerResponse{
				Name:      r.Owner.Name,
				Email:     r.Owner.Email,
				StudentID: r.Owner.StudentID,
			},
		})
	}
	return responses
}
