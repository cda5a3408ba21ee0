package error

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{ErrInsufficientBalance, CodeInsufficientBalance},
		{ErrInsufficientAdminBalance, CodeInsufficientAdminBalance},
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrInvalidMealSelection, CodeInvalidMealSelection},
		{ErrInvalidTokenDate, CodeInvalidTokenDate},
		{ErrDuplicateToken, CodeDuplicateToken},
		{ErrTokenAlreadyUsed, CodeTokenAlreadyUsed},
		{ErrRequestAlreadyProcessed, CodeRequestAlreadyProcessed},
		{ErrMissingPaymentFields, CodeMissingPaymentFields},
		{ErrInvalidPaymentMethod, CodeMissingPaymentFields},
		{ErrTopUpBelowMinimum, CodeTopUpBelowMinimum},
		{ErrPaymentValidationFailed, CodePaymentValidationFailed},
		{ErrDuplicateAccount, CodeDuplicateAccount},
		{ErrInvalidCredentials, CodeInvalidCredentials},
		{ErrAlreadyAdmin, CodeAlreadyAdmin},
		{ErrUploadTooLarge, CodeUploadTooLarge},
		{ErrUnsupportedMediaType, CodeUnsupportedMediaType},
		{ErrAccountNotFound, CodeAccountNotFound},
		{ErrTokenNotFound, CodeTokenNotFound},
		{ErrRequestNotFound, CodeRequestNotFound},
		{ErrTopUpNotFound, CodeTopUpNotFound},
		{ErrForbidden, CodeForbidden},
		{errors.New("something else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.code, ErrorCode(tc.err), "code for %v", tc.err)
	}
}

func TestErrorCodeWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("purchase failed: %w", ErrDuplicateToken)
	assert.Equal(t, CodeDuplicateToken, ErrorCode(wrapped))
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, 80, 30)

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Equal(t, CodeInsufficientBalance, ErrorCode(err))
	assert.Contains(t, err.Error(), "account 7")
	assert.Contains(t, err.Error(), "required 80")
	assert.Contains(t, err.Error(), "available 30")

	var detailed *InsufficientBalanceError
	require.True(t, errors.As(err, &detailed))
	assert.Equal(t, int64(30), detailed.CurrentBalance)
	assert.Equal(t, CodeInsufficientBalance, detailed.LogFields()["error_code"])
}

func TestDuplicateTokenError(t *testing.T) {
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	err := NewDuplicateTokenError(7, date)

	assert.True(t, errors.Is(err, ErrDuplicateToken))
	assert.True(t, IsDuplicateTokenError(err))
	assert.Equal(t, CodeDuplicateToken, ErrorCode(err))
	assert.Contains(t, err.Error(), "2025-03-11")
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("Validation errors", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidAmount,
			ErrInvalidMealSelection,
			ErrInvalidTokenDate,
			ErrMissingPaymentFields,
			ErrInvalidPaymentMethod,
			ErrTopUpBelowMinimum,
			ErrInvalidAccountData,
			ErrNegativeBalance,
		} {
			assert.True(t, IsValidationError(err), "expected validation error: %v", err)
		}
		assert.False(t, IsValidationError(ErrAccountNotFound))
	})

	t.Run("Not found errors", func(t *testing.T) {
		for _, err := range []error{
			ErrNotFound,
			ErrAccountNotFound,
			ErrTokenNotFound,
			ErrRequestNotFound,
			ErrTopUpNotFound,
		} {
			assert.True(t, IsNotFoundError(err), "expected not found error: %v", err)
		}
		assert.False(t, IsNotFoundError(ErrDuplicateToken))
	})

	t.Run("Already processed", func(t *testing.T) {
		assert.True(t, IsAlreadyProcessedError(ErrRequestAlreadyProcessed))
		assert.False(t, IsAlreadyProcessedError(ErrTokenAlreadyUsed))
	})
}

func TestBalanceErrorUnwrap(t *testing.T) {
	inner := NewInsufficientBalanceError(7, 80, 30)
	err := &BalanceError{AccountID: 7, Amount: 80, CurrentBalance: 30, Err: inner}

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.Contains(t, err.Error(), "account 7")
	assert.Equal(t, CodeInsufficientBalance, err.LogFields()["error_code"])
}
