package token

import (
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
)

// TokenUseCase implements meal token operations
type TokenUseCase struct {
	uow          persistence.UnitOfWork
	engine       *balance.Engine
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	unitPrice    int64
}

// NewTokenUseCase creates a new TokenUseCase
func NewTokenUseCase(
	uow persistence.UnitOfWork,
	engine *balance.Engine,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	unitPrice int64,
) *TokenUseCase {
	if unitPrice <= 0 {
		unitPrice = entity.DefaultMealUnitPrice
	}
	return &TokenUseCase{
		uow:          uow,
		engine:       engine,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		unitPrice:    unitPrice,
	}
}
