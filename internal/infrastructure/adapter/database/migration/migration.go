package migration

import (
	"context"
	"errors"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/model"
	appconfig "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/config"
	"gorm.io/gorm"
)

// MigrationManager manages database schema migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date for every model
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.Account{},
		&model.MealToken{},
		&model.MoneyRequest{},
		&model.TopUp{},
	); err != nil {
		m.logger.Error("Failed to migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// SeedAdmin creates the initial admin account when none exists with the
// configured email. A blank admin config disables seeding.
func SeedAdmin(
	ctx context.Context,
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg appconfig.AdminConfig,
) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Debug("Admin seeding disabled, no credentials configured", nil)
		return nil
	}

	accountRepo := uow.GetAccountRepository(ctx)

	if _, err := accountRepo.GetByEmail(ctx, cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, errs.ErrAccountNotFound) {
		return err
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "Hall Admin"
	}
	studentID := cfg.StudentID
	if studentID == "" {
		studentID = "admin"
	}

	admin, err := entity.NewAccount(name, cfg.Email, studentID, hash, entity.DefaultStartingBalance, timeProvider)
	if err != nil {
		return err
	}
	admin.IsAdmin = true

	if err := accountRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Seeded initial admin account", map[string]any{
		"accountId": admin.ID,
		"email":     admin.Email,
	})
	return nil
}
