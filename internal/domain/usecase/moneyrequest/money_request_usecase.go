package moneyrequest

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
)

// MoneyRequestUseCase implements manual top-up requests and their
// admin adjudication
type MoneyRequestUseCase struct {
	uow          persistence.UnitOfWork
	engine       *balance.Engine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMoneyRequestUseCase creates a new MoneyRequestUseCase
func NewMoneyRequestUseCase(
	uow persistence.UnitOfWork,
	engine *balance.Engine,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *MoneyRequestUseCase {
	return &MoneyRequestUseCase{
		uow:          uow,
		engine:       engine,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create records a pending money request for admin review. Creation never
// touches balances; only approval moves money.
func (u *MoneyRequestUseCase) Create(
	ctx context.Context,
	accountID uint64,
	req usecase.CreateMoneyRequestRequest,
) (*entity.MoneyRequest, error) {
	request, err := entity.NewMoneyRequest(
		accountID,
		req.Amount,
		req.PaymentMethod,
		req.PaymentNumber,
		req.TransactionID,
		req.PaymentPhotoURL,
		req.Details,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	requestRepo := u.uow.GetMoneyRequestRepository(ctx)
	if err := requestRepo.Create(ctx, request); err != nil {
		u.logger.Error("Failed to create money request", map[string]any{
			"accountId": accountID,
			"amount":    req.Amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Money request created", map[string]any{
		"requestId": request.ID,
		"accountId": accountID,
		"amount":    request.Amount,
		"method":    request.PaymentMethod,
	})

	return request, nil
}

// ListForAccount returns the account's requests, newest first
func (u *MoneyRequestUseCase) ListForAccount(ctx context.Context, accountID uint64) ([]*entity.MoneyRequest, error) {
	requestRepo := u.uow.GetMoneyRequestRepository(ctx)
	return requestRepo.ListByAccount(ctx, accountID)
}

// ListAll returns every request with owner details (admin view)
func (u *MoneyRequestUseCase) ListAll(ctx context.Context) ([]*persistence.RequestWithAccount, error) {
	requestRepo := u.uow.GetMoneyRequestRepository(ctx)
	return requestRepo.ListAll(ctx)
}

// Process approves or rejects a pending request. Approval transfers the
// amount from the acting admin to the requester in the same transaction
// that flips the request status, so a shortfall on the admin side leaves
// the request pending and both balances untouched.
func (u *MoneyRequestUseCase) Process(
	ctx context.Context,
	adminID, requestID uint64,
	approve bool,
) (*entity.MoneyRequest, error) {
	var request *entity.MoneyRequest

	err := u.engine.Execute(ctx, func(txCtx context.Context) error {
		requestRepo := u.uow.GetMoneyRequestRepository(txCtx)

		var err error
		request, err = requestRepo.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}

		if !approve {
			if err := request.Reject(adminID, u.timeProvider); err != nil {
				return err
			}
			return requestRepo.Update(txCtx, request)
		}

		if err := request.Approve(adminID, u.timeProvider); err != nil {
			return err
		}

		if _, _, err := u.engine.Transfer(txCtx, adminID, request.AccountID, request.Amount); err != nil {
			if errs.IsInsufficientBalanceError(err) {
				return errs.ErrInsufficientAdminBalance
			}
			return err
		}

		return requestRepo.Update(txCtx, request)
	})
	if err != nil {
		u.logger.Warn("Money request processing failed", map[string]any{
			"requestId": requestID,
			"adminId":   adminID,
			"approve":   approve,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Money request processed", map[string]any{
		"requestId": requestID,
		"adminId":   adminID,
		"status":    request.Status,
	})

	return request, nil
}
