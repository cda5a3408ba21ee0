package gateway

import (
	"context"
)

// ValidationStatusValid is the only gateway validation status that confirms a payment
const ValidationStatusValid = "VALID"

// InitiateRequest carries everything the hosted gateway needs to open a payment session
type InitiateRequest struct {
	Amount        int64
	Currency      string
	TransactionID string

	SuccessURL string
	FailURL    string
	CancelURL  string
	IPNURL     string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Opaque references round-tripped through the gateway and returned in
	// every callback (value_a / value_b on the wire)
	AccountRef string
	TopUpRef   string
}

// PaymentSession is the gateway's answer to a successful initiation
type PaymentSession struct {
	GatewayURL string
}

// ValidationResult is the gateway's server-to-server answer for a validation id
type ValidationResult struct {
	Status        string // Must equal ValidationStatusValid to proceed
	TransactionID string
	Amount        string
	Currency      string
}

// PaymentGateway abstracts the hosted payment provider. The success redirect
// alone is never trusted; every completion re-validates server-to-server.
type PaymentGateway interface {
	// InitiatePayment opens a payment session and returns the redirect URL
	InitiatePayment(ctx context.Context, req InitiateRequest) (*PaymentSession, error)

	// ValidatePayment re-validates a payment by the gateway-issued validation id
	ValidatePayment(ctx context.Context, validationID string) (*ValidationResult, error)

	// QueryTransaction returns the gateway-side status of a transaction for reconciliation
	QueryTransaction(ctx context.Context, transactionID string) (map[string]any, error)
}
