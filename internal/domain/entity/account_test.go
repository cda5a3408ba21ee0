package entity

import (
	"testing"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 500, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Rahim Uddin", account.Name)
		assert.Equal(t, "rahim@hall.edu", account.Email)
		assert.Equal(t, "2004037", account.StudentID)
		assert.Equal(t, int64(500), account.Balance())
		assert.False(t, account.IsAdmin)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Email is normalized", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "  Rahim@HALL.edu ", "2004037", "hashed", 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "rahim@hall.edu", account.Email)
	})

	t.Run("Blank mandatory fields", func(t *testing.T) {
		testCases := []struct {
			name, email, studentID string
		}{
			{"", "rahim@hall.edu", "2004037"},
			{"Rahim Uddin", "  ", "2004037"},
			{"Rahim Uddin", "rahim@hall.edu", ""},
		}

		for _, tc := range testCases {
			account, err := NewAccount(tc.name, tc.email, tc.studentID, "hashed", 500, mockTime)
			assert.Equal(t, errs.ErrInvalidAccountData, err)
			assert.Nil(t, account)
		}
	})

	t.Run("Negative starting balance", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", -1, mockTime)

		assert.Equal(t, errs.ErrNegativeBalance, err)
		assert.Nil(t, account)
	})
}

func TestAccountDebit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Sufficient balance", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 500, mockTime)
		require.NoError(t, err)

		require.NoError(t, account.Debit(80, mockTime))
		assert.Equal(t, int64(420), account.Balance())
	})

	t.Run("Insufficient balance leaves the account untouched", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 30, mockTime)
		require.NoError(t, err)

		err = account.Debit(40, mockTime)
		assert.True(t, errs.IsInsufficientBalanceError(err))
		assert.Equal(t, int64(30), account.Balance())
	})

	t.Run("Exact balance drains to zero", func(t *testing.T) {
		account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 40, mockTime)
		require.NoError(t, err)

		require.NoError(t, account.Debit(40, mockTime))
		assert.Equal(t, int64(0), account.Balance())
		assert.True(t, account.CanCover(0))
	})
}

func TestAccountCredit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 500, mockTime)
	require.NoError(t, err)

	account.Credit(200, mockTime)
	assert.Equal(t, int64(700), account.Balance())
}

func TestAccountPromote(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account, err := NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", 500, mockTime)
	require.NoError(t, err)

	require.NoError(t, account.Promote(mockTime))
	assert.True(t, account.IsAdmin)

	assert.Equal(t, errs.ErrAlreadyAdmin, account.Promote(mockTime))
}
