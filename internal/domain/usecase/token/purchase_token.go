package token

import (
	"context"
	"errors"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/stats"
)

// Purchase buys a meal token for tomorrow. Validation happens up front,
// then balance debit, duplicate check and token creation run in one
// database transaction so a failure at any point leaves no trace.
func (u *TokenUseCase) Purchase(
	ctx context.Context,
	accountID uint64,
	req usecase.PurchaseTokenRequest,
) (*entity.MealToken, error) {
	token, err := entity.NewMealToken(accountID, req.Date, req.Lunch, req.Dinner, u.timeProvider)
	if err != nil {
		return nil, err
	}

	price := token.Price(u.unitPrice)

	err = u.engine.Execute(ctx, func(txCtx context.Context) error {
		// Debit first: this takes the row lock, so concurrent purchases
		// for the same account serialize here.
		if _, err := u.engine.Debit(txCtx, accountID, price); err != nil {
			return err
		}

		tokenRepo := u.uow.GetTokenRepository(txCtx)

		existing, err := tokenRepo.FindByAccountAndDate(txCtx, accountID, token.Date)
		if err != nil && !errors.Is(err, errs.ErrTokenNotFound) {
			return err
		}
		if existing != nil {
			return errs.NewDuplicateTokenError(accountID, token.Date)
		}

		// The unique index on (account_id, date) backstops any race the
		// lookup above could miss.
		if err := tokenRepo.Create(txCtx, token); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		u.logger.Warn("Token purchase rejected", map[string]any{
			"accountId": accountID,
			"date":      token.Date.Format("2006-01-02"),
			"error":     err.Error(),
		})
		return nil, err
	}

	u.invalidateStatsCache(ctx)

	u.logger.Info("Meal token purchased", map[string]any{
		"accountId": accountID,
		"tokenId":   token.ID,
		"date":      token.Date.Format("2006-01-02"),
		"lunch":     token.Lunch,
		"dinner":    token.Dinner,
		"price":     price,
	})

	return token, nil
}

// invalidateStatsCache drops cached admin stats after a purchase so the
// dashboard reflects the new token within one request.
func (u *TokenUseCase) invalidateStatsCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, stats.CacheKeyDashboard, stats.CacheKeyDaily, stats.CacheKeyTomorrow); err != nil {
		u.logger.Warn("Failed to invalidate stats cache", map[string]any{
			"error": err.Error(),
		})
	}
}
