package account

import (
	"context"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// AdminTransfer moves funds from the acting admin to the target account.
// The admin's own balance funds the transfer, so a shortfall surfaces as
// an admin-side error and neither balance changes.
func (u *AccountUseCase) AdminTransfer(ctx context.Context, adminID, targetID uint64, amount int64) (*usecase.TransferResult, error) {
	var result *usecase.TransferResult

	err := u.engine.Execute(ctx, func(txCtx context.Context) error {
		from, to, err := u.engine.Transfer(txCtx, adminID, targetID, amount)
		if err != nil {
			if errs.IsInsufficientBalanceError(err) {
				return errs.ErrInsufficientAdminBalance
			}
			return err
		}

		result = &usecase.TransferResult{
			AdminBalance: from.Balance(),
			UserBalance:  to.Balance(),
			StudentID:    to.StudentID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Admin transfer completed", map[string]any{
		"adminId":  adminID,
		"targetId": targetID,
		"amount":   amount,
	})

	return result, nil
}

// AdminTransferByStudentID resolves the target account by student id,
// then performs the same admin-funded transfer.
func (u *AccountUseCase) AdminTransferByStudentID(ctx context.Context, adminID uint64, studentID string, amount int64) (*usecase.TransferResult, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)

	target, err := accountRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return u.AdminTransfer(ctx, adminID, target.ID, amount)
}

// Promote grants the admin role to an account
func (u *AccountUseCase) Promote(ctx context.Context, accountID uint64) error {
	return u.engine.Execute(ctx, func(txCtx context.Context) error {
		accountRepo := u.uow.GetAccountRepository(txCtx)

		account, err := accountRepo.GetByIDForUpdate(txCtx, accountID)
		if err != nil {
			return err
		}

		if err := account.Promote(u.timeProvider); err != nil {
			return err
		}

		if err := accountRepo.Update(txCtx, account); err != nil {
			return err
		}

		u.logger.Info("Account promoted to admin", map[string]any{
			"accountId": accountID,
		})
		return nil
	})
}
