package token

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// MarkUsed marks a token as consumed at the serving counter. Marking is
// terminal: a token already used cannot be marked again.
func (u *TokenUseCase) MarkUsed(ctx context.Context, tokenID uint64) (*entity.MealToken, error) {
	var token *entity.MealToken

	err := u.engine.Execute(ctx, func(txCtx context.Context) error {
		tokenRepo := u.uow.GetTokenRepository(txCtx)

		var err error
		token, err = tokenRepo.GetByID(txCtx, tokenID)
		if err != nil {
			return err
		}

		if err := token.MarkUsed(); err != nil {
			return err
		}

		return tokenRepo.Update(txCtx, token)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Meal token marked used", map[string]any{
		"tokenId":   tokenID,
		"accountId": token.AccountID,
	})

	return token, nil
}
