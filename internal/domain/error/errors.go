package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance      = 4001
	CodeInsufficientAdminBalance = 4002
	CodeInvalidAmount            = 4003
	CodeDuplicateToken           = 4004
	CodeInvalidMealSelection     = 4005
	CodeInvalidTokenDate         = 4006
	CodeRequestAlreadyProcessed  = 4007
	CodeMissingPaymentFields     = 4008
	CodeTopUpBelowMinimum        = 4009
	CodeTokenAlreadyUsed         = 4010
	CodeDuplicateAccount         = 4011
	CodeNegativeBalance          = 4012
	CodeInvalidCredentials       = 4013
	CodeAlreadyAdmin             = 4014
	CodeInvalidAccountData       = 4015
	CodeUploadTooLarge           = 4016
	CodeUnsupportedMediaType     = 4017
	CodePaymentValidationFailed  = 4020
	CodeForbidden                = 4030
	CodeAccountNotFound          = 4040
	CodeTokenNotFound            = 4041
	CodeRequestNotFound          = 4042
	CodeTopUpNotFound            = 4043

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientAdminBalance is returned when the approving admin cannot fund a transfer
	ErrInsufficientAdminBalance = errors.New("insufficient admin balance")

	// ErrInvalidAmount is returned when an amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNegativeBalance is returned when an operation would leave a balance negative
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidMealSelection is returned when neither lunch nor dinner is selected
	ErrInvalidMealSelection = errors.New("at least one meal must be selected")

	// ErrInvalidTokenDate is returned when the token date is not tomorrow
	ErrInvalidTokenDate = errors.New("tokens can only be purchased for tomorrow")

	// ErrDuplicateToken is returned when the account already holds a token for the date
	ErrDuplicateToken = errors.New("a token already exists for this date")

	// ErrTokenAlreadyUsed is returned when marking a token used a second time
	ErrTokenAlreadyUsed = errors.New("token has already been used")

	// ErrRequestAlreadyProcessed is returned when a money request is no longer pending
	ErrRequestAlreadyProcessed = errors.New("request has already been processed")

	// ErrMissingPaymentFields is returned when a money request omits required payment evidence
	ErrMissingPaymentFields = errors.New("missing required payment fields")

	// ErrInvalidPaymentMethod is returned when the payment method is not a supported channel
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrTopUpBelowMinimum is returned when a top-up amount is under the configured floor
	ErrTopUpBelowMinimum = errors.New("top-up amount is below the minimum")

	// ErrPaymentValidationFailed is returned when the gateway does not confirm a payment
	ErrPaymentValidationFailed = errors.New("payment validation failed")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTokenNotFound is returned when the requested token doesn't exist
	ErrTokenNotFound = errors.New("token not found")

	// ErrRequestNotFound is returned when the requested money request doesn't exist
	ErrRequestNotFound = errors.New("money request not found")

	// ErrTopUpNotFound is returned when the requested top-up doesn't exist
	ErrTopUpNotFound = errors.New("top-up not found")

	// ErrDuplicateAccount is returned when the email or student ID is already registered
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidAccountData is returned when registration fields are missing or malformed
	ErrInvalidAccountData = errors.New("invalid account data")

	// ErrUploadTooLarge is returned when a payment proof image exceeds the size limit
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrUnsupportedMediaType is returned when a payment proof is not an accepted image type
	ErrUnsupportedMediaType = errors.New("unsupported file type")

	// ErrInvalidCredentials is returned when login email/password verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyAdmin is returned when promoting an account that is already an admin
	ErrAlreadyAdmin = errors.New("account is already an admin")

	// ErrUnauthorized is returned when no valid caller identity is present
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the caller lacks the privilege for an operation
	ErrForbidden = errors.New("not authorized for this operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientAdminBalance):
		return CodeInsufficientAdminBalance
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrNegativeBalance):
		return CodeNegativeBalance
	case errors.Is(err, ErrInvalidMealSelection):
		return CodeInvalidMealSelection
	case errors.Is(err, ErrInvalidTokenDate):
		return CodeInvalidTokenDate
	case errors.Is(err, ErrDuplicateToken):
		return CodeDuplicateToken
	case errors.Is(err, ErrTokenAlreadyUsed):
		return CodeTokenAlreadyUsed
	case errors.Is(err, ErrRequestAlreadyProcessed):
		return CodeRequestAlreadyProcessed
	case errors.Is(err, ErrMissingPaymentFields), errors.Is(err, ErrInvalidPaymentMethod):
		return CodeMissingPaymentFields
	case errors.Is(err, ErrTopUpBelowMinimum):
		return CodeTopUpBelowMinimum
	case errors.Is(err, ErrPaymentValidationFailed):
		return CodePaymentValidationFailed
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrAlreadyAdmin):
		return CodeAlreadyAdmin
	case errors.Is(err, ErrInvalidAccountData):
		return CodeInvalidAccountData
	case errors.Is(err, ErrUploadTooLarge):
		return CodeUploadTooLarge
	case errors.Is(err, ErrUnsupportedMediaType):
		return CodeUnsupportedMediaType
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTokenNotFound):
		return CodeTokenNotFound
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrTopUpNotFound):
		return CodeTopUpNotFound
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID      uint64
	Amount         int64
	CurrentBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %d: required %d, available %d",
		e.AccountID, e.Amount, e.CurrentBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID uint64, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		AccountID:      accountID,
		Amount:         amount,
		CurrentBalance: currentBalance,
	}
}

// DuplicateTokenError provides detailed information about a (account, date) uniqueness violation
type DuplicateTokenError struct {
	AccountID uint64
	Date      time.Time
}

// Error implements the error interface
func (e *DuplicateTokenError) Error() string {
	return fmt.Sprintf("duplicate token for account %d on %s",
		e.AccountID, e.Date.Format("2006-01-02"))
}

// Is checks if the target error is an ErrDuplicateToken
func (e *DuplicateTokenError) Is(target error) bool {
	return target == ErrDuplicateToken
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTokenError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_token",
		"account_id": e.AccountID,
		"date":       e.Date.Format("2006-01-02"),
		"error_code": CodeDuplicateToken,
	}
}

// NewDuplicateTokenError creates a new detailed duplicate token error
func NewDuplicateTokenError(accountID uint64, date time.Time) error {
	return &DuplicateTokenError{
		AccountID: accountID,
		Date:      date,
	}
}

// BalanceError represents a failure in a balance-affecting operation
type BalanceError struct {
	AccountID      uint64
	Amount         int64
	CurrentBalance int64
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for account %d (current balance: %d, amount: %d): %v",
		e.AccountID, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicateTokenError checks if the error is a (account, date) uniqueness violation
func IsDuplicateTokenError(err error) bool {
	return errors.Is(err, ErrDuplicateToken)
}

// IsAlreadyProcessedError checks if the error is a money-request state-machine violation
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrRequestAlreadyProcessed)
}

// IsValidationError checks if the error is a pre-mutation input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidMealSelection) ||
		errors.Is(err, ErrInvalidTokenDate) ||
		errors.Is(err, ErrMissingPaymentFields) ||
		errors.Is(err, ErrInvalidPaymentMethod) ||
		errors.Is(err, ErrTopUpBelowMinimum) ||
		errors.Is(err, ErrInvalidAccountData) ||
		errors.Is(err, ErrNegativeBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTokenNotFound) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrTopUpNotFound)
}
