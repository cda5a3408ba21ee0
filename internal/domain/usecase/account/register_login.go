package account

import (
	"context"
	"errors"
	"strings"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// Register creates a new account seeded with the configured starting
// balance. Email and student id must both be unused.
func (u *AccountUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.Account, error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, errs.ErrInvalidAccountData
	}

	accountRepo := u.uow.GetAccountRepository(ctx)

	if _, err := accountRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, errs.ErrDuplicateAccount
	} else if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	if _, err := accountRepo.GetByStudentID(ctx, req.StudentID); err == nil {
		return nil, errs.ErrDuplicateAccount
	} else if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	account, err := entity.NewAccount(req.Name, req.Email, req.StudentID, hash, u.startingBalance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		u.logger.Error("Failed to create account", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Account registered", map[string]any{
		"accountId": account.ID,
		"studentId": account.StudentID,
		"balance":   account.Balance(),
	})

	return account, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	accountRepo := u.uow.GetAccountRepository(ctx)

	account, err := accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		u.logger.Warn("Login failed", map[string]any{
			"accountId": account.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := u.tokenIssuer.Issue(account.ID, account.IsAdmin)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"accountId": account.ID,
			"error":     err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.AuthResult{
		Token:   token,
		Account: account,
	}, nil
}
