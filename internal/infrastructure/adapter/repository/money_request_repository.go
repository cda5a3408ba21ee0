package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MoneyRequestRepository implements MoneyRequestRepository interface using GORM
type MoneyRequestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMoneyRequestRepository creates a new MoneyRequestRepository instance
func NewMoneyRequestRepository(db *gorm.DB, logger coreport.Logger) *MoneyRequestRepository {
	return &MoneyRequestRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a money request model to an entity
func (r *MoneyRequestRepository) modelToEntity(requestModel *model.MoneyRequest) *entity.MoneyRequest {
	return &entity.MoneyRequest{
		ID:              requestModel.ID,
		AccountID:       requestModel.AccountID,
		Amount:          requestModel.Amount,
		PaymentMethod:   entity.PaymentMethod(requestModel.PaymentMethod),
		PaymentNumber:   requestModel.PaymentNumber,
		TransactionID:   requestModel.TransactionID,
		PaymentPhotoURL: requestModel.PaymentPhotoURL,
		Details:         requestModel.Details,
		Status:          entity.RequestStatus(requestModel.Status),
		ProcessedBy:     requestModel.ProcessedBy,
		ProcessedAt:     requestModel.ProcessedAt,
		CreatedAt:       requestModel.CreatedAt,
	}
}

// entityToModel converts a money request entity to its database model
func (r *MoneyRequestRepository) entityToModel(request *entity.MoneyRequest) model.MoneyRequest {
	return model.MoneyRequest{
		ID:              request.ID,
		AccountID:       request.AccountID,
		Amount:          request.Amount,
		PaymentMethod:   string(request.PaymentMethod),
		PaymentNumber:   request.PaymentNumber,
		TransactionID:   request.TransactionID,
		PaymentPhotoURL: request.PaymentPhotoURL,
		Details:         request.Details,
		Status:          string(request.Status),
		ProcessedBy:     request.ProcessedBy,
		ProcessedAt:     request.ProcessedAt,
		CreatedAt:       request.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *MoneyRequestRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRequestNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), mergeFields(fields, map[string]any{
		"error": err.Error(),
	}))

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new pending request
func (r *MoneyRequestRepository) Create(ctx context.Context, request *entity.MoneyRequest) error {
	requestModel := r.entityToModel(request)

	result := r.db.WithContext(ctx).Create(&requestModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating money request", result.Error, map[string]any{
			"accountId": request.AccountID,
		})
	}

	request.ID = requestModel.ID
	return nil
}

// Update persists request changes
func (r *MoneyRequestRepository) Update(ctx context.Context, request *entity.MoneyRequest) error {
	requestModel := r.entityToModel(request)

	result := r.db.WithContext(ctx).Save(&requestModel)
	if result.Error != nil {
		return r.handleDatabaseError("updating money request", result.Error, map[string]any{
			"requestId": request.ID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrRequestNotFound
	}

	return nil
}

// GetByID retrieves a request by ID
func (r *MoneyRequestRepository) GetByID(ctx context.Context, id uint64) (*entity.MoneyRequest, error) {
	var requestModel model.MoneyRequest
	result := r.db.WithContext(ctx).First(&requestModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting money request", result.Error, map[string]any{
			"requestId": id,
		})
	}

	return r.modelToEntity(&requestModel), nil
}

// GetByIDForUpdate retrieves a request by ID with an exclusive row lock
func (r *MoneyRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.MoneyRequest, error) {
	var requestModel model.MoneyRequest
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&requestModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking money request", result.Error, map[string]any{
			"requestId": id,
		})
	}

	return r.modelToEntity(&requestModel), nil
}

// ListByAccount returns all requests of one account, newest first
func (r *MoneyRequestRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MoneyRequest, error) {
	var requestModels []model.MoneyRequest
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&requestModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing money requests", result.Error, map[string]any{
			"accountId": accountID,
		})
	}

	requests := make([]*entity.MoneyRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, r.modelToEntity(&requestModels[i]))
	}
	return requests, nil
}

// ListAll returns all requests with requester details, newest first
func (r *MoneyRequestRepository) ListAll(ctx context.Context) ([]*persistence.RequestWithAccount, error) {
	var requestModels []model.MoneyRequest
	result := r.db.WithContext(ctx).
		Preload("Account").
		Order("created_at DESC").
		Find(&requestModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing money requests with accounts", result.Error, nil)
	}

	requests := make([]*persistence.RequestWithAccount, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, &persistence.RequestWithAccount{
			Request: r.modelToEntity(&requestModels[i]),
			Owner: persistence.TokenOwner{
				Name:      requestModels[i].Account.Name,
				Email:     requestModels[i].Account.Email,
				StudentID: requestModels[i].Account.StudentID,
			},
		})
	}
	return requests, nil
}
