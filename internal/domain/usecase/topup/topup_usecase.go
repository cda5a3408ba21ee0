package topup

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/usecase/balance"
)

// Currency is the only currency the gateway is charged in
const Currency = "BDT"

// Config carries the gateway-facing settings for top-ups
type Config struct {
	MinAmount       int64
	CallbackBaseURL string
}

// TopUpUseCase implements gateway-funded balance top-ups
type TopUpUseCase struct {
	uow          persistence.UnitOfWork
	engine       *balance.Engine
	gateway      gateway.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewTopUpUseCase creates a new TopUpUseCase
func NewTopUpUseCase(
	uow persistence.UnitOfWork,
	engine *balance.Engine,
	paymentGateway gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *TopUpUseCase {
	if cfg.MinAmount <= 0 {
		cfg.MinAmount = entity.DefaultMinTopUpAmount
	}
	return &TopUpUseCase{
		uow:          uow,
		engine:       engine,
		gateway:      paymentGateway,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// newTransactionID generates the system-side transaction id sent to the gateway
func newTransactionID() string {
	return "TOP-" + uuid.NewString()
}

func (u *TopUpUseCase) callbackURL(path string) string {
	return fmt.Sprintf("%s/api/topup/%s", u.cfg.CallbackBaseURL, path)
}

func accountRef(id uint64) string {
	return strconv.FormatUint(id, 10)
}
