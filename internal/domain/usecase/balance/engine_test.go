package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	persistencemocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func newTestAccount(t *testing.T, id uint64, balance int64, tp *coremocks.MockTimeProvider) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed", balance, tp)
	require.NoError(t, err)
	account.ID = id
	return account
}

func TestEngineExecute(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), "tx")

	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Commits on success", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		var got context.Context
		err := engine.Execute(ctx, func(c context.Context) error {
			got = c
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, txCtx, got)
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		boom := errors.New("boom")
		err := engine.Execute(ctx, func(context.Context) error { return boom })

		assert.Equal(t, boom, err)
	})

	t.Run("Rolls back when commit fails", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		commitErr := errors.New("commit failed")
		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Commit(txCtx).Return(commitErr).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		err := engine.Execute(ctx, func(context.Context) error { return nil })
		assert.Equal(t, commitErr, err)
	})

	t.Run("Begin failure stops everything", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		beginErr := errors.New("no connection")
		mockUow.EXPECT().Begin(ctx).Return(nil, beginErr).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		err := engine.Execute(ctx, func(context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.Equal(t, beginErr, err)
	})
}

func TestEngineDebit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Deducts and persists", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := newTestAccount(t, 7, 500, mockTime)

		mockUow.EXPECT().GetAccountRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, uint64(7)).Return(account, nil).Once()
		mockRepo.EXPECT().Update(ctx, account).Return(nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		got, err := engine.Debit(ctx, 7, 80)
		require.NoError(t, err)
		assert.Equal(t, int64(420), got.Balance())
	})

	t.Run("Insufficient balance is not persisted", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		account := newTestAccount(t, 7, 30, mockTime)

		mockUow.EXPECT().GetAccountRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, uint64(7)).Return(account, nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		got, err := engine.Debit(ctx, 7, 40)
		assert.True(t, errs.IsInsufficientBalanceError(err))
		assert.Nil(t, got)
		assert.Equal(t, int64(30), account.Balance())
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		_, err := engine.Debit(ctx, 7, 0)
		assert.Equal(t, errs.ErrInvalidAmount, err)
	})
}

func TestEngineCredit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockRepo := persistencemocks.NewMockAccountRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account := newTestAccount(t, 7, 420, mockTime)

	mockUow.EXPECT().GetAccountRepository(ctx).Return(mockRepo).Once()
	mockRepo.EXPECT().GetByIDForUpdate(ctx, uint64(7)).Return(account, nil).Once()
	mockRepo.EXPECT().Update(ctx, account).Return(nil).Once()

	engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

	got, err := engine.Credit(ctx, 7, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(920), got.Balance())
}

func TestEngineTransfer(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Moves funds and locks rows by ascending ID", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		admin := newTestAccount(t, 5, 1000, mockTime)
		student := newTestAccount(t, 2, 50, mockTime)

		var lockOrder []uint64
		mockUow.EXPECT().GetAccountRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, mock.Anything).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args[1].(uint64))
		}).Return(student, nil).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, mock.Anything).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args[1].(uint64))
		}).Return(admin, nil).Once()
		mockRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		from, to, err := engine.Transfer(ctx, 5, 2, 200)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 5}, lockOrder)
		assert.Equal(t, int64(800), from.Balance())
		assert.Equal(t, int64(250), to.Balance())
	})

	t.Run("Sender shortfall moves nothing", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		admin := newTestAccount(t, 1, 100, mockTime)
		student := newTestAccount(t, 2, 50, mockTime)

		mockUow.EXPECT().GetAccountRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, uint64(1)).Return(admin, nil).Once()
		mockRepo.EXPECT().GetByIDForUpdate(ctx, uint64(2)).Return(student, nil).Once()

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		_, _, err := engine.Transfer(ctx, 1, 2, 200)
		assert.True(t, errs.IsInsufficientBalanceError(err))
		assert.Equal(t, int64(100), admin.Balance())
		assert.Equal(t, int64(50), student.Balance())
	})

	t.Run("Self transfer is invalid", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		engine := NewEngine(mockUow, mockTime, logger.NewNoopLogger())

		_, _, err := engine.Transfer(ctx, 7, 7, 100)
		assert.Equal(t, errs.ErrInvalidAmount, err)
	})
}
