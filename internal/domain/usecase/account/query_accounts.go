package account

import (
	"context"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// GetByID retrieves a single account
func (u *AccountUseCase) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)
	return accountRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a single account by its email
func (u *AccountUseCase) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)
	return accountRepo.GetByEmail(ctx, email)
}

// List returns all accounts, newest first
func (u *AccountUseCase) List(ctx context.Context) ([]*entity.Account, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)
	return accountRepo.List(ctx)
}
