package entity

import (
	"testing"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopUp(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid top-up", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), topUp.AccountID)
		assert.Equal(t, int64(500), topUp.Amount)
		assert.Equal(t, TopUpStatusPending, topUp.Status)
		assert.Nil(t, topUp.ProcessedAt)
	})

	t.Run("Exactly the minimum", func(t *testing.T) {
		topUp, err := NewTopUp(7, DefaultMinTopUpAmount, DefaultMinTopUpAmount, mockTime)

		require.NoError(t, err)
		assert.Equal(t, DefaultMinTopUpAmount, topUp.Amount)
	})

	t.Run("Below the minimum", func(t *testing.T) {
		topUp, err := NewTopUp(7, 199, DefaultMinTopUpAmount, mockTime)

		assert.Equal(t, errs.ErrTopUpBelowMinimum, err)
		assert.Nil(t, topUp)
	})
}

func TestTopUpComplete(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	payload := []byte(`{"status":"VALID"}`)

	t.Run("Pending completes once", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		assert.True(t, topUp.Complete(payload, mockTime))
		assert.Equal(t, TopUpStatusCompleted, topUp.Status)
		assert.Equal(t, payload, topUp.PaymentDetails)
		require.NotNil(t, topUp.ProcessedAt)
		assert.Equal(t, fixedTime, *topUp.ProcessedAt)
	})

	t.Run("Second completion is a no-op", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		require.True(t, topUp.Complete(payload, mockTime))
		assert.False(t, topUp.Complete([]byte(`{"late":"ipn"}`), mockTime))
		assert.Equal(t, payload, topUp.PaymentDetails)
	})

	t.Run("A failed top-up can still complete", func(t *testing.T) {
		// ValidatePayment is the source of truth. A pessimistic fail
		// callback must not block a later validated completion.
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		require.True(t, topUp.Fail(nil, mockTime))
		assert.True(t, topUp.Complete(payload, mockTime))
		assert.Equal(t, TopUpStatusCompleted, topUp.Status)
	})
}

func TestTopUpTerminalCallbacks(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Fail only moves a pending top-up", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		assert.True(t, topUp.Fail([]byte(`{}`), mockTime))
		assert.Equal(t, TopUpStatusFailed, topUp.Status)

		assert.False(t, topUp.Fail(nil, mockTime))
		assert.False(t, topUp.Cancel(nil, mockTime))
	})

	t.Run("Completed wins over a late failure", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		require.True(t, topUp.Complete([]byte(`{}`), mockTime))
		assert.False(t, topUp.Fail(nil, mockTime))
		assert.False(t, topUp.Cancel(nil, mockTime))
		assert.Equal(t, TopUpStatusCompleted, topUp.Status)
		assert.True(t, topUp.IsCompleted())
	})

	t.Run("Cancel mirrors fail", func(t *testing.T) {
		topUp, err := NewTopUp(7, 500, DefaultMinTopUpAmount, mockTime)
		require.NoError(t, err)

		assert.True(t, topUp.Cancel(nil, mockTime))
		assert.Equal(t, TopUpStatusCancelled, topUp.Status)
	})
}
