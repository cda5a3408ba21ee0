package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	account := &entity.Account{
		ID:           accountModel.ID,
		Name:         accountModel.Name,
		Email:        accountModel.Email,
		StudentID:    accountModel.StudentID,
		PasswordHash: accountModel.PasswordHash,
		IsAdmin:      accountModel.IsAdmin,
		CreatedAt:    accountModel.CreatedAt,
		UpdatedAt:    accountModel.UpdatedAt,
	}
	account.SetBalance(accountModel.Balance, r.timeProvider)
	account.UpdatedAt = accountModel.UpdatedAt
	return account
}

// entityToModel converts an account entity to its database model
func (r *AccountRepository) entityToModel(account *entity.Account) model.Account {
	return model.Account{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		StudentID:    account.StudentID,
		PasswordHash: account.PasswordHash,
		Balance:      account.Balance(),
		IsAdmin:      account.IsAdmin,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), mergeFields(fields, map[string]any{
		"error": err.Error(),
	}))

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// mergeFields combines two log field maps, the second winning on conflict
func mergeFields(a, b map[string]any) map[string]any {
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, map[string]any{
			"accountId": id,
		})
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByIDForUpdate retrieves an account by ID with an exclusive row lock
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, map[string]any{
			"accountId": id,
		})
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByEmail retrieves an account by its unique email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&accountModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account by email", result.Error, map[string]any{
			"email": email,
		})
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByStudentID retrieves an account by its unique student identifier
func (r *AccountRepository) GetByStudentID(ctx context.Context, studentID string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Where("student_id = ?", strings.TrimSpace(studentID)).
		First(&accountModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account by student id", result.Error, map[string]any{
			"studentId": studentID,
		})
	}

	return r.modelToEntity(&accountModel), nil
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := r.entityToModel(account)

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, map[string]any{
			"email":     account.Email,
			"studentId": account.StudentID,
		})
	}

	account.ID = accountModel.ID

	r.logger.Info("Account created", map[string]any{
		"accountId": account.ID,
		"studentId": account.StudentID,
	})
	return nil
}

// Update persists account changes, including the balance
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := r.entityToModel(account)

	result := r.db.WithContext(ctx).Save(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, map[string]any{
			"accountId": account.ID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

// List returns all accounts, newest first
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&accountModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, nil)
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, r.modelToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// CountStudents returns the number of non-admin accounts
func (r *AccountRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("is_admin = ?", false).
		Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting students", result.Error, nil)
	}

	return count, nil
}
