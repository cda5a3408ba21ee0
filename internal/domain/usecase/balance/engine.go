package balance

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// Engine executes balance mutations inside a single database transaction
// with row-level locks, so that concurrent purchases, approvals and
// gateway callbacks never observe or produce a stale balance.
type Engine struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a new balance engine
func NewEngine(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute runs fn inside a database transaction. The context passed to fn
// carries the transaction, so repositories obtained from the unit of work
// within fn are bound to it. Any error from fn rolls the transaction back.
func (e *Engine) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		e.logger.Error("Failed to begin transaction", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Failed to rollback transaction", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		e.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	committed = true

	return nil
}

// Debit locks the account row, checks funds and deducts amount. It must be
// called with a transaction-bound context (inside Execute).
func (e *Engine) Debit(txCtx context.Context, accountID uint64, amount int64) (*entity.Account, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	accountRepo := e.uow.GetAccountRepository(txCtx)

	account, err := accountRepo.GetByIDForUpdate(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.Debit(amount, e.timeProvider); err != nil {
		return nil, err
	}

	if err := accountRepo.Update(txCtx, account); err != nil {
		e.logger.Error("Failed to persist debited balance", map[string]any{
			"accountId": accountID,
			"amount":    amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Account debited", map[string]any{
		"accountId":  accountID,
		"amount":     amount,
		"newBalance": account.Balance(),
	})

	return account, nil
}

// Credit locks the account row and adds amount. It must be called with a
// transaction-bound context (inside Execute).
func (e *Engine) Credit(txCtx context.Context, accountID uint64, amount int64) (*entity.Account, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	accountRepo := e.uow.GetAccountRepository(txCtx)

	account, err := accountRepo.GetByIDForUpdate(txCtx, accountID)
	if err != nil {
		return nil, err
	}

	account.Credit(amount, e.timeProvider)

	if err := accountRepo.Update(txCtx, account); err != nil {
		e.logger.Error("Failed to persist credited balance", map[string]any{
			"accountId": accountID,
			"amount":    amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Account credited", map[string]any{
		"accountId":  accountID,
		"amount":     amount,
		"newBalance": account.Balance(),
	})

	return account, nil
}

// Transfer moves amount from one account to another. Rows are locked in
// ascending ID order to avoid deadlock between concurrent transfers.
// It must be called with a transaction-bound context (inside Execute).
func (e *Engine) Transfer(txCtx context.Context, fromID, toID uint64, amount int64) (*entity.Account, *entity.Account, error) {
	if amount <= 0 {
		return nil, nil, errs.ErrInvalidAmount
	}
	if fromID == toID {
		return nil, nil, errs.ErrInvalidAmount
	}

	accountRepo := e.uow.GetAccountRepository(txCtx)

	lockOrder := []uint64{fromID, toID}
	if toID < fromID {
		lockOrder = []uint64{toID, fromID}
	}

	locked := make(map[uint64]*entity.Account, 2)
	for _, id := range lockOrder {
		account, err := accountRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return nil, nil, err
		}
		locked[id] = account
	}

	from := locked[fromID]
	to := locked[toID]

	if err := from.Debit(amount, e.timeProvider); err != nil {
		return nil, nil, err
	}
	to.Credit(amount, e.timeProvider)

	if err := accountRepo.Update(txCtx, from); err != nil {
		return nil, nil, err
	}
	if err := accountRepo.Update(txCtx, to); err != nil {
		return nil, nil, err
	}

	e.logger.Info("Balance transferred", map[string]any{
		"fromId":      fromID,
		"toId":        toID,
		"amount":      amount,
		"fromBalance": from.Balance(),
		"toBalance":   to.Balance(),
	})

	return from, to, nil
}
