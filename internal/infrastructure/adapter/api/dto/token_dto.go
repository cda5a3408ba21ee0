package dto

import (
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// DateLayout is the wire format for token dates
const DateLayout = "2006-01-02"

// PurchaseTokenRequest represents a meal token purchase payload
type PurchaseTokenRequest struct {
	Date   string `json:"date" binding:"required"`
	Lunch  bool   `json:"lunch"`
	Dinner bool   `json:"dinner"`
}

// TokenResponse represents a meal token in API responses
type TokenResponse struct {
	ID        uint64    `json:"id"`
	AccountID uint64    `json:"accountId"`
	Date      string    `json:"date"`
	Lunch     bool      `json:"lunch"`
	Dinner    bool      `json:"dinner"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTokenResponse maps a token entity to its API representation
func NewTokenResponse(token *entity.MealToken) TokenResponse {
	return TokenResponse{
		ID:        token.ID,
		AccountID: token.AccountID,
		Date:      token.Date.Format(DateLayout),
		Lunch:     token.Lunch,
		Dinner:    token.Dinner,
		Status:    string(token.Status),
		CreatedAt: token.CreatedAt,
	}
}

// NewTokenResponses maps a slice of token entities
func NewTokenResponses(tokens []*entity.MealToken) []TokenResponse {
	responses := make([]TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		responses = append(responses, NewTokenResponse(token))
	}
	return responses
}

// OwnerResponse carries account details shown in admin listings
type OwnerResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
}

// TokenWithOwnerResponse pairs a token with its owner for admin views
type TokenWithOwnerResponse struct {
	TokenResponse
	Owner OwnerResponse `json:"owner"`
}

// NewTokenWithOwnerResponses maps tokens with owner details
func NewTokenWithOwnerResponses(tokens []*persistence.TokenWithOwner) []TokenWithOwnerResponse {
	responses := make([]TokenWithOwnerResponse, 0, len(tokens))
	for _, t := range tokens {
		responses = append(responses, TokenWithOwnerResponse{
			TokenResponse: NewTokenResponse(t.Token),
			Owner: OwnerResponse{
				Name:      t.Owner.Name,
				Email:     t.Owner.Email,
				StudentID: t.Owner.StudentID,
			},
		})
	}
	return responses
}
