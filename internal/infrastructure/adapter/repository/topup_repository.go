package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TopUpRepository implements TopUpRepository interface using GORM
type TopUpRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTopUpRepository creates a new TopUpRepository instance
func NewTopUpRepository(db *gorm.DB, logger coreport.Logger) *TopUpRepository {
	return &TopUpRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a top-up model to an entity
func (r *TopUpRepository) modelToEntity(topUpModel *model.TopUp) *entity.TopUp {
	return &entity.TopUp{
		ID:             topUpModel.ID,
		AccountID:      topUpModel.AccountID,
		Amount:         topUpModel.Amount,
		Status:         entity.TopUpStatus(topUpModel.Status),
		TransactionID:  topUpModel.TransactionID,
		PaymentDetails: topUpModel.PaymentDetails,
		CreatedAt:      topUpModel.CreatedAt,
		ProcessedAt:    topUpModel.ProcessedAt,
	}
}

// entityToModel converts a top-up entity to its database model
func (r *TopUpRepository) entityToModel(topUp *entity.TopUp) model.TopUp {
	return model.TopUp{
		ID:             topUp.ID,
		AccountID:      topUp.AccountID,
		Amount:         topUp.Amount,
		Status:         string(topUp.Status),
		TransactionID:  topUp.TransactionID,
		PaymentDetails: topUp.PaymentDetails,
		CreatedAt:      topUp.CreatedAt,
		ProcessedAt:    topUp.ProcessedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TopUpRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTopUpNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), mergeFields(fields, map[string]any{
		"error": err.Error(),
	}))

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new pending top-up
func (r *TopUpRepository) Create(ctx context.Context, topUp *entity.TopUp) error {
	topUpModel := r.entityToModel(topUp)

	result := r.db.WithContext(ctx).Create(&topUpModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating top-up", result.Error, map[string]any{
			"accountId":     topUp.AccountID,
			"transactionId": topUp.TransactionID,
		})
	}

	topUp.ID = topUpModel.ID
	return nil
}

// Update persists top-up changes
func (r *TopUpRepository) Update(ctx context.Context, topUp *entity.TopUp) error {
	topUpModel := r.entityToModel(topUp)

	result := r.db.WithContext(ctx).Save(&topUpModel)
	if result.Error != nil {
		return r.handleDatabaseError("updating top-up", result.Error, map[string]any{
			"topUpId": topUp.ID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrTopUpNotFound
	}

	return nil
}

// GetByID retrieves a top-up by internal ID
func (r *TopUpRepository) GetByID(ctx context.Context, id uint64) (*entity.TopUp, error) {
	var topUpModel model.TopUp
	result := r.db.WithContext(ctx).First(&topUpModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting top-up", result.Error, map[string]any{
			"topUpId": id,
		})
	}

	return r.modelToEntity(&topUpModel), nil
}

// GetByIDForUpdate retrieves a top-up by ID with an exclusive row lock
func (r *TopUpRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.TopUp, error) {
	var topUpModel model.TopUp
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&topUpModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking top-up", result.Error, map[string]any{
			"topUpId": id,
		})
	}

	return r.modelToEntity(&topUpModel), nil
}

// GetByTransactionID retrieves a top-up by its generated transaction id
func (r *TopUpRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.TopUp, error) {
	var topUpModel model.TopUp
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&topUpModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting top-up by transaction id", result.Error, map[string]any{
			"transactionId": transactionID,
		})
	}

	return r.modelToEntity(&topUpModel), nil
}

// ListByAccount returns all top-ups of one account, newest first
func (r *TopUpRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.TopUp, error) {
	var topUpModels []model.TopUp
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&topUpModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing top-ups", result.Error, map[string]any{
			"accountId": accountID,
		})
	}

	topUps := make([]*entity.TopUp, 0, len(topUpModels))
	for i := range topUpModels {
		topUps = append(topUps, r.modelToEntity(&topUpModels[i]))
	}
	return topUps, nil
}
