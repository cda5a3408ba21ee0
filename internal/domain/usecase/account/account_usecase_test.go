package account

import (
	"context"
	"testing"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	persistencemocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey string

type accountFixture struct {
	uow         *persistencemocks.MockUnitOfWork
	accountRepo *persistencemocks.MockAccountRepository
	hasher      *coremocks.MockPasswordHasher
	tokenIssuer *coremocks.MockTokenIssuer
	timeNow     *coremocks.MockTimeProvider
	useCase     *AccountUseCase
	ctx         context.Context
	txCtx       context.Context
}

func newAccountFixture(t *testing.T) *accountFixture {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), "tx")

	f := &accountFixture{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		accountRepo: persistencemocks.NewMockAccountRepository(t),
		hasher:      coremocks.NewMockPasswordHasher(t),
		tokenIssuer: coremocks.NewMockTokenIssuer(t),
		timeNow:     coremocks.NewMockTimeProvider(t),
		ctx:         ctx,
		txCtx:       txCtx,
	}
	f.timeNow.EXPECT().Now().Return(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)).Maybe()

	engine := balance.NewEngine(f.uow, f.timeNow, logger.NewNoopLogger())
	f.useCase = NewAccountUseCase(
		f.uow, engine, f.hasher, f.tokenIssuer, f.timeNow, logger.NewNoopLogger(), 500,
	)
	return f
}

func (f *accountFixture) existingAccount(t *testing.T, id uint64, balanceAmount int64) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount("Rahim Uddin", "rahim@hall.edu", "2004037", "hashed-pw", balanceAmount, f.timeNow)
	require.NoError(t, err)
	account.ID = id
	return account
}

func TestRegister(t *testing.T) {
	req := usecase.RegisterRequest{
		Name:      "Karim Hossain",
		Email:     "karim@hall.edu",
		StudentID: "2004051",
		Password:  "s3cret",
	}

	t.Run("New account starts with the configured balance", func(t *testing.T) {
		f := newAccountFixture(t)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "karim@hall.edu").Return(nil, errs.ErrAccountNotFound).Once()
		f.accountRepo.EXPECT().GetByStudentID(f.ctx, "2004051").Return(nil, errs.ErrAccountNotFound).Once()
		f.hasher.EXPECT().Hash("s3cret").Return("bcrypt-hash", nil).Once()
		f.accountRepo.EXPECT().Create(f.ctx, mock.MatchedBy(func(account *entity.Account) bool {
			return account.Email == "karim@hall.edu" &&
				account.StudentID == "2004051" &&
				account.PasswordHash == "bcrypt-hash" &&
				account.Balance() == 500 &&
				!account.IsAdmin
		})).Return(nil).Once()

		account, err := f.useCase.Register(f.ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(500), account.Balance())
	})

	t.Run("Email already in use", func(t *testing.T) {
		f := newAccountFixture(t)
		taken := f.existingAccount(t, 3, 100)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "karim@hall.edu").Return(taken, nil).Once()

		account, err := f.useCase.Register(f.ctx, req)

		assert.Equal(t, errs.ErrDuplicateAccount, err)
		assert.Nil(t, account)
	})

	t.Run("Student id already in use", func(t *testing.T) {
		f := newAccountFixture(t)
		taken := f.existingAccount(t, 3, 100)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "karim@hall.edu").Return(nil, errs.ErrAccountNotFound).Once()
		f.accountRepo.EXPECT().GetByStudentID(f.ctx, "2004051").Return(taken, nil).Once()

		account, err := f.useCase.Register(f.ctx, req)

		assert.Equal(t, errs.ErrDuplicateAccount, err)
		assert.Nil(t, account)
	})

	t.Run("Blank password is rejected before any lookup", func(t *testing.T) {
		f := newAccountFixture(t)

		blank := req
		blank.Password = "   "
		account, err := f.useCase.Register(f.ctx, blank)

		assert.Equal(t, errs.ErrInvalidAccountData, err)
		assert.Nil(t, account)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Valid credentials yield a token", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.existingAccount(t, 7, 420)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "rahim@hall.edu").Return(account, nil).Once()
		f.hasher.EXPECT().Compare("hashed-pw", "s3cret").Return(nil).Once()
		f.tokenIssuer.EXPECT().Issue(uint64(7), false).Return("signed.jwt.token", nil).Once()

		result, err := f.useCase.Login(f.ctx, "rahim@hall.edu", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", result.Token)
		assert.Equal(t, account, result.Account)
	})

	t.Run("Unknown email reads as invalid credentials", func(t *testing.T) {
		f := newAccountFixture(t)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "nobody@hall.edu").Return(nil, errs.ErrAccountNotFound).Once()

		result, err := f.useCase.Login(f.ctx, "nobody@hall.edu", "s3cret")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
		assert.Nil(t, result)
	})

	t.Run("Wrong password reads as invalid credentials", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.existingAccount(t, 7, 420)

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByEmail(f.ctx, "rahim@hall.edu").Return(account, nil).Once()
		f.hasher.EXPECT().Compare("hashed-pw", "wrong").Return(errs.ErrInvalidCredentials).Once()

		result, err := f.useCase.Login(f.ctx, "rahim@hall.edu", "wrong")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
		assert.Nil(t, result)
	})
}

func TestAdminTransfer(t *testing.T) {
	t.Run("Moves funds from admin to target", func(t *testing.T) {
		f := newAccountFixture(t)
		admin := f.existingAccount(t, 1, 1000)
		target := f.existingAccount(t, 7, 50)
		target.StudentID = "2004051"

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().GetAccountRepository(f.txCtx).Return(f.accountRepo).Once()

		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(1)).Return(admin, nil).Once()
		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(7)).Return(target, nil).Once()
		f.accountRepo.EXPECT().Update(f.txCtx, admin).Return(nil).Once()
		f.accountRepo.EXPECT().Update(f.txCtx, target).Return(nil).Once()

		result, err := f.useCase.AdminTransfer(f.ctx, 1, 7, 200)

		require.NoError(t, err)
		assert.Equal(t, int64(800), result.AdminBalance)
		assert.Equal(t, int64(250), result.UserBalance)
		assert.Equal(t, "2004051", result.StudentID)
	})

	t.Run("Admin shortfall moves nothing", func(t *testing.T) {
		f := newAccountFixture(t)
		admin := f.existingAccount(t, 1, 100)
		target := f.existingAccount(t, 7, 50)

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().GetAccountRepository(f.txCtx).Return(f.accountRepo).Once()

		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(1)).Return(admin, nil).Once()
		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(7)).Return(target, nil).Once()

		result, err := f.useCase.AdminTransfer(f.ctx, 1, 7, 200)

		assert.Equal(t, errs.ErrInsufficientAdminBalance, err)
		assert.Nil(t, result)
		assert.Equal(t, int64(100), admin.Balance())
		assert.Equal(t, int64(50), target.Balance())
	})

	t.Run("Target resolved by student id", func(t *testing.T) {
		f := newAccountFixture(t)
		admin := f.existingAccount(t, 1, 1000)
		target := f.existingAccount(t, 7, 50)
		target.StudentID = "2004051"

		f.uow.EXPECT().GetAccountRepository(f.ctx).Return(f.accountRepo).Once()
		f.accountRepo.EXPECT().GetByStudentID(f.ctx, "2004051").Return(target, nil).Once()

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().GetAccountRepository(f.txCtx).Return(f.accountRepo).Once()

		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(1)).Return(admin, nil).Once()
		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(7)).Return(target, nil).Once()
		f.accountRepo.EXPECT().Update(f.txCtx, admin).Return(nil).Once()
		f.accountRepo.EXPECT().Update(f.txCtx, target).Return(nil).Once()

		result, err := f.useCase.AdminTransferByStudentID(f.ctx, 1, "2004051", 200)

		require.NoError(t, err)
		assert.Equal(t, int64(250), result.UserBalance)
	})
}

func TestPromote(t *testing.T) {
	t.Run("Grants the admin role", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.existingAccount(t, 7, 420)

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().GetAccountRepository(f.txCtx).Return(f.accountRepo).Once()

		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(7)).Return(account, nil).Once()
		f.accountRepo.EXPECT().Update(f.txCtx, account).Return(nil).Once()

		err := f.useCase.Promote(f.ctx, 7)

		require.NoError(t, err)
		assert.True(t, account.IsAdmin)
	})

	t.Run("Promoting an admin again fails", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.existingAccount(t, 7, 420)
		require.NoError(t, account.Promote(f.timeNow))

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().GetAccountRepository(f.txCtx).Return(f.accountRepo).Once()

		f.accountRepo.EXPECT().GetByIDForUpdate(f.txCtx, uint64(7)).Return(account, nil).Once()

		err := f.useCase.Promote(f.ctx, 7)

		assert.Equal(t, errs.ErrAlreadyAdmin, err)
	})
}
