package entity

import (
	"strings"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// PaymentMethod is a mobile-payment channel accepted for manual funding
type PaymentMethod string

// Supported payment channels
const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
)

// IsValidPaymentMethod reports whether the given channel is supported
func IsValidPaymentMethod(method string) bool {
	return method == string(PaymentMethodBkash) || method == string(PaymentMethodNagad)
}

// RequestStatus represents the lifecycle status of a money request
type RequestStatus string

// Money request statuses. Approved and rejected are terminal.
const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// MoneyRequest is a user-submitted, admin-adjudicated request to receive funds,
// backed by externally hosted payment evidence.
type MoneyRequest struct {
	ID              uint64
	AccountID       uint64
	Amount          int64
	PaymentMethod   PaymentMethod
	PaymentNumber   string
	TransactionID   string // External reference, not verified programmatically
	PaymentPhotoURL string
	Details         string
	Status          RequestStatus
	ProcessedBy     *uint64
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMoneyRequest creates a pending money request with all mandatory evidence fields
func NewMoneyRequest(accountID uint64, amount int64, method, paymentNumber, transactionID, photoURL, details string, timeProvider coreport.TimeProvider) (*MoneyRequest, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !IsValidPaymentMethod(method) {
		return nil, errs.ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(paymentNumber) == "" ||
		strings.TrimSpace(transactionID) == "" ||
		strings.TrimSpace(photoURL) == "" {
		return nil, errs.ErrMissingPaymentFields
	}

	now := timeProvider.Now()
	return &MoneyRequest{
		AccountID:       accountID,
		Amount:          amount,
		PaymentMethod:   PaymentMethod(method),
		PaymentNumber:   paymentNumber,
		TransactionID:   transactionID,
		PaymentPhotoURL: photoURL,
		Details:         details,
		Status:          RequestStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsPending reports whether the request can still be processed
func (r *MoneyRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// Approve transitions pending → approved, recording the acting admin.
// A non-pending request is never re-processed.
func (r *MoneyRequest) Approve(adminID uint64, timeProvider coreport.TimeProvider) error {
	return r.process(RequestStatusApproved, adminID, timeProvider)
}

// Reject transitions pending → rejected, recording the acting admin
func (r *MoneyRequest) Reject(adminID uint64, timeProvider coreport.TimeProvider) error {
	return r.process(RequestStatusRejected, adminID, timeProvider)
}

func (r *MoneyRequest) process(status RequestStatus, adminID uint64, timeProvider coreport.TimeProvider) error {
	if !r.IsPending() {
		return errs.ErrRequestAlreadyProcessed
	}

	now := timeProvider.Now()
	r.Status = status
	r.ProcessedBy = &adminID
	r.ProcessedAt = &now
	r.UpdatedAt = now
	return nil
}
