package entity

import (
	"testing"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMealToken(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Valid token for tomorrow", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow, true, true, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), token.AccountID)
		assert.Equal(t, tomorrow, token.Date)
		assert.True(t, token.Lunch)
		assert.True(t, token.Dinner)
		assert.Equal(t, TokenStatusActive, token.Status)
	})

	t.Run("Requested date carries a time-of-day", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow.Add(15*time.Hour), true, false, mockTime)

		require.NoError(t, err)
		assert.Equal(t, tomorrow, token.Date)
	})

	t.Run("No meal selected", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow, false, false, mockTime)

		assert.Equal(t, errs.ErrInvalidMealSelection, err)
		assert.Nil(t, token)
	})

	t.Run("Today is rejected", func(t *testing.T) {
		token, err := NewMealToken(7, now, true, false, mockTime)

		assert.Equal(t, errs.ErrInvalidTokenDate, err)
		assert.Nil(t, token)
	})

	t.Run("Day after tomorrow is rejected", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow.AddDate(0, 0, 1), true, false, mockTime)

		assert.Equal(t, errs.ErrInvalidTokenDate, err)
		assert.Nil(t, token)
	})

	t.Run("Past date is rejected", func(t *testing.T) {
		token, err := NewMealToken(7, now.AddDate(0, 0, -3), true, false, mockTime)

		assert.Equal(t, errs.ErrInvalidTokenDate, err)
		assert.Nil(t, token)
	})
}

func TestNewMealTokenNonUTCServer(t *testing.T) {
	// The wire format is date-only, so handlers hand over a UTC midnight.
	// The server clock runs in Bangladesh time; the calendar date must win
	// over the instant comparison.
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, dhaka)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Tomorrow parsed as UTC midnight is accepted", func(t *testing.T) {
		wireDate, err := time.Parse("2006-01-02", "2025-03-11")
		require.NoError(t, err)

		token, err := NewMealToken(7, wireDate, true, false, mockTime)

		require.NoError(t, err)
		assert.True(t, token.Date.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, dhaka)))
		assert.Equal(t, dhaka, token.Date.Location())
	})

	t.Run("Today parsed as UTC midnight is still rejected", func(t *testing.T) {
		wireDate, err := time.Parse("2006-01-02", "2025-03-10")
		require.NoError(t, err)

		token, err := NewMealToken(7, wireDate, true, false, mockTime)

		assert.Equal(t, errs.ErrInvalidTokenDate, err)
		assert.Nil(t, token)
	})
}

func TestMealTokenPrice(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Single meal", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow, true, false, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(40), token.Price(DefaultMealUnitPrice))
	})

	t.Run("Both meals", func(t *testing.T) {
		token, err := NewMealToken(7, tomorrow, true, true, mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(80), token.Price(DefaultMealUnitPrice))
	})
}

func TestMealTokenMarkUsed(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	token, err := NewMealToken(7, now.AddDate(0, 0, 1), false, true, mockTime)
	require.NoError(t, err)

	require.NoError(t, token.MarkUsed())
	assert.Equal(t, TokenStatusUsed, token.Status)

	assert.Equal(t, errs.ErrTokenAlreadyUsed, token.MarkUsed())
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	stamped := time.Date(2025, 3, 10, 23, 59, 59, 123, loc)
	normalized := NormalizeDate(stamped)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), normalized)
	assert.Equal(t, loc, normalized.Location())
}
