package topup

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// Initiate creates a pending top-up record and opens a hosted payment
// session at the gateway. The caller is redirected to the returned URL.
func (u *TopUpUseCase) Initiate(ctx context.Context, accountID uint64, amount int64) (*usecase.InitiateTopUpResult, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)
	account, err := accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	topUp, err := entity.NewTopUp(accountID, amount, u.cfg.MinAmount, u.timeProvider)
	if err != nil {
		return nil, err
	}
	topUp.TransactionID = newTransactionID()

	topUpRepo := u.uow.GetTopUpRepository(ctx)
	if err := topUpRepo.Create(ctx, topUp); err != nil {
		u.logger.Error("Failed to create top-up record", map[string]any{
			"accountId": accountID,
			"amount":    amount,
			"error":     err.Error(),
		})
		return nil, err
	}

	session, err := u.gateway.InitiatePayment(ctx, gateway.InitiateRequest{
		Amount:        topUp.Amount,
		Currency:      Currency,
		TransactionID: topUp.TransactionID,
		SuccessURL:    u.callbackURL("success"),
		FailURL:       u.callbackURL("fail"),
		CancelURL:     u.callbackURL("cancel"),
		IPNURL:        u.callbackURL("ipn"),
		CustomerName:  account.Name,
		CustomerEmail: account.Email,
		CustomerPhone: "N/A",
		AccountRef:    accountRef(account.ID),
		TopUpRef:      accountRef(topUp.ID),
	})
	if err != nil {
		u.logger.Error("Gateway initiation failed", map[string]any{
			"accountId":     accountID,
			"transactionId": topUp.TransactionID,
			"error":         err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Top-up initiated", map[string]any{
		"accountId":     accountID,
		"topUpId":       topUp.ID,
		"transactionId": topUp.TransactionID,
		"amount":        topUp.Amount,
	})

	return &usecase.InitiateTopUpResult{
		GatewayURL:    session.GatewayURL,
		TransactionID: topUp.TransactionID,
	}, nil
}
