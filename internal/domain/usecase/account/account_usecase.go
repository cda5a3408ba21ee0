package account

import (
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
)

// AccountUseCase implements account registration, authentication and
// admin-side account management
type AccountUseCase struct {
	uow             persistence.UnitOfWork
	engine          *balance.Engine
	hasher          coreport.PasswordHasher
	tokenIssuer     coreport.TokenIssuer
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	startingBalance int64
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	engine *balance.Engine,
	hasher coreport.PasswordHasher,
	tokenIssuer coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingBalance int64,
) *AccountUseCase {
	if startingBalance < 0 {
		startingBalance = entity.DefaultStartingBalance
	}
	return &AccountUseCase{
		uow:             uow,
		engine:          engine,
		hasher:          hasher,
		tokenIssuer:     tokenIssuer,
		timeProvider:    timeProvider,
		logger:          logger,
		startingBalance: startingBalance,
	}
}
