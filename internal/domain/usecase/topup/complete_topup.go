package topup

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// Complete validates a payment with the gateway and credits the account.
// The success redirect and the IPN both land here; whichever arrives
// second finds the top-up already completed and changes nothing, so the
// credit applies exactly once.
func (u *TopUpUseCase) Complete(ctx context.Context, cb usecase.GatewayCallback) (*entity.TopUp, error) {
	if cb.TransactionID == "" || cb.ValidationID == "" {
		return nil, errs.ErrMissingPaymentFields
	}

	// Never trust the redirect alone: re-validate server to server.
	validation, err := u.gateway.ValidatePayment(ctx, cb.ValidationID)
	if err != nil {
		u.logger.Error("Gateway validation call failed", map[string]any{
			"transactionId": cb.TransactionID,
			"error":         err.Error(),
		})
		return nil, err
	}
	if validation.Status != gateway.ValidationStatusValid {
		u.logger.Warn("Gateway reported invalid payment", map[string]any{
			"transactionId": cb.TransactionID,
			"status":        validation.Status,
		})
		return nil, errs.ErrPaymentValidationFailed
	}

	var topUp *entity.TopUp

	err = u.engine.Execute(ctx, func(txCtx context.Context) error {
		topUpRepo := u.uow.GetTopUpRepository(txCtx)

		found, err := topUpRepo.GetByTransactionID(txCtx, cb.TransactionID)
		if err != nil {
			return err
		}

		// Re-read under lock so two concurrent callbacks serialize
		topUp, err = topUpRepo.GetByIDForUpdate(txCtx, found.ID)
		if err != nil {
			return err
		}

		if !topUp.Complete(cb.RawPayload, u.timeProvider) {
			u.logger.Info("Top-up already completed, callback ignored", map[string]any{
				"topUpId":       topUp.ID,
				"transactionId": cb.TransactionID,
			})
			return nil
		}

		if err := topUpRepo.Update(txCtx, topUp); err != nil {
			return err
		}

		if _, err := u.engine.Credit(txCtx, topUp.AccountID, topUp.Amount); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Top-up completed", map[string]any{
		"topUpId":       topUp.ID,
		"accountId":     topUp.AccountID,
		"transactionId": topUp.TransactionID,
		"amount":        topUp.Amount,
	})

	return topUp, nil
}

// MarkFailed records a gateway failure. Only a pending top-up moves to
// failed; a completed one is left alone.
func (u *TopUpUseCase) MarkFailed(ctx context.Context, cb usecase.GatewayCallback) error {
	return u.terminate(ctx, cb, entity.TopUpStatusFailed)
}

// MarkCancelled records a user cancellation at the gateway
func (u *TopUpUseCase) MarkCancelled(ctx context.Context, cb usecase.GatewayCallback) error {
	return u.terminate(ctx, cb, entity.TopUpStatusCancelled)
}

func (u *TopUpUseCase) terminate(ctx context.Context, cb usecase.GatewayCallback, status entity.TopUpStatus) error {
	if cb.TransactionID == "" {
		return errs.ErrMissingPaymentFields
	}

	return u.engine.Execute(ctx, func(txCtx context.Context) error {
		topUpRepo := u.uow.GetTopUpRepository(txCtx)

		found, err := topUpRepo.GetByTransactionID(txCtx, cb.TransactionID)
		if err != nil {
			return err
		}

		topUp, err := topUpRepo.GetByIDForUpdate(txCtx, found.ID)
		if err != nil {
			return err
		}

		var changed bool
		if status == entity.TopUpStatusFailed {
			changed = topUp.Fail(cb.RawPayload, u.timeProvider)
		} else {
			changed = topUp.Cancel(cb.RawPayload, u.timeProvider)
		}
		if !changed {
			u.logger.Info("Top-up not pending, terminal callback ignored", map[string]any{
				"topUpId":       topUp.ID,
				"transactionId": cb.TransactionID,
				"status":        topUp.Status,
			})
			return nil
		}

		if err := topUpRepo.Update(txCtx, topUp); err != nil {
			return err
		}

		u.logger.Info("Top-up terminated", map[string]any{
			"topUpId":       topUp.ID,
			"transactionId": cb.TransactionID,
			"status":        topUp.Status,
		})
		return nil
	})
}

// CheckStatus combines the local record with the gateway's transaction view
func (u *TopUpUseCase) CheckStatus(ctx context.Context, transactionID string) (*usecase.TopUpStatusResult, error) {
	topUpRepo := u.uow.GetTopUpRepository(ctx)

	topUp, err := topUpRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	result := &usecase.TopUpStatusResult{TopUp: topUp}

	gatewayView, err := u.gateway.QueryTransaction(ctx, transactionID)
	if err != nil {
		// The local record is still useful when the gateway is unreachable
		u.logger.Warn("Gateway transaction query failed", map[string]any{
			"transactionId": transactionID,
			"error":         err.Error(),
		})
		return result, nil
	}
	if status, ok := gatewayView["status"].(string); ok {
		result.GatewayStatus = status
	}

	return result, nil
}
