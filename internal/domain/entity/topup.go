package entity

import (
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// DefaultMinTopUpAmount is the smallest gateway top-up accepted, in Tk
const DefaultMinTopUpAmount int64 = 200

// TopUpStatus represents the lifecycle status of a gateway top-up
type TopUpStatus string

// Top-up statuses. Completed, failed and cancelled are terminal.
const (
	TopUpStatusPending   TopUpStatus = "pending"
	TopUpStatusCompleted TopUpStatus = "completed"
	TopUpStatusFailed    TopUpStatus = "failed"
	TopUpStatusCancelled TopUpStatus = "cancelled"
)

// TopUp is a balance increase funded through the external payment gateway.
// The raw gateway payload is retained for audit.
type TopUp struct {
	ID             uint64
	AccountID      uint64
	Amount         int64
	Status         TopUpStatus
	TransactionID  string // System-generated, globally unique per attempt
	PaymentDetails []byte
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

// NewTopUp creates a pending top-up, enforcing the minimum amount threshold
func NewTopUp(accountID uint64, amount, minAmount int64, timeProvider coreport.TimeProvider) (*TopUp, error) {
	if amount < minAmount {
		return nil, errs.ErrTopUpBelowMinimum
	}

	return &TopUp{
		AccountID: accountID,
		Amount:    amount,
		Status:    TopUpStatusPending,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsCompleted reports whether the top-up has already credited the account
func (t *TopUp) IsCompleted() bool {
	return t.Status == TopUpStatusCompleted
}

// Complete transitions the top-up to completed, recording the raw gateway
// payload. Returns false without any change when the top-up is already
// completed: the gateway may deliver the success redirect and the IPN for the
// same transaction in any order, and the credit must apply exactly once.
func (t *TopUp) Complete(payload []byte, timeProvider coreport.TimeProvider) bool {
	if t.IsCompleted() {
		return false
	}

	now := timeProvider.Now()
	t.Status = TopUpStatusCompleted
	t.ProcessedAt = &now
	t.PaymentDetails = payload
	return true
}

// Fail marks a still-pending top-up as failed. A completed top-up wins over a
// late failure callback; the call is then a no-op returning false.
func (t *TopUp) Fail(payload []byte, timeProvider coreport.TimeProvider) bool {
	return t.terminate(TopUpStatusFailed, payload, timeProvider)
}

// Cancel marks a still-pending top-up as cancelled
func (t *TopUp) Cancel(payload []byte, timeProvider coreport.TimeProvider) bool {
	return t.terminate(TopUpStatusCancelled, payload, timeProvider)
}

func (t *TopUp) terminate(status TopUpStatus, payload []byte, timeProvider coreport.TimeProvider) bool {
	if t.Status != TopUpStatusPending {
		return false
	}

	now := timeProvider.Now()
	t.Status = status
	t.ProcessedAt = &now
	t.PaymentDetails = payload
	return true
}
