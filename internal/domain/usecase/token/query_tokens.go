package token

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// ListForAccount returns the account's tokens, newest first
func (u *TokenUseCase) ListForAccount(ctx context.Context, accountID uint64) ([]*entity.MealToken, error) {
	tokenRepo := u.uow.GetTokenRepository(ctx)
	return tokenRepo.ListByAccount(ctx, accountID)
}

// Get returns a single token. Non-admin callers may only read their own.
func (u *TokenUseCase) Get(ctx context.Context, caller usecase.Caller, tokenID uint64) (*entity.MealToken, error) {
	tokenRepo := u.uow.GetTokenRepository(ctx)

	token, err := tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	if token.AccountID != caller.AccountID && !caller.IsAdmin {
		u.logger.Warn("Token access denied", map[string]any{
			"tokenId":   tokenID,
			"ownerId":   token.AccountID,
			"callerId":  caller.AccountID,
		})
		return nil, errs.ErrForbidden
	}

	return token, nil
}

// ListAll returns every token with owner details (admin view)
func (u *TokenUseCase) ListAll(ctx context.Context) ([]*persistence.TokenWithOwner, error) {
	tokenRepo := u.uow.GetTokenRepository(ctx)
	return tokenRepo.ListAll(ctx)
}
