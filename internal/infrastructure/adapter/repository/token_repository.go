package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TokenRepository implements TokenRepository interface using GORM
type TokenRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB, logger coreport.Logger) *TokenRepository {
	return &TokenRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// queryDate rebuilds the calendar date at midnight in the server's zone.
// Stored token dates are server-zone midnights; a query date parsed from the
// wire arrives as a UTC midnight, and comparing those as instants would miss
// every row on a non-UTC server.
func queryDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// modelToEntity converts a meal token model to an entity
func (r *TokenRepository) modelToEntity(tokenModel *model.MealToken) *entity.MealToken {
	return &entity.MealToken{
		ID:        tokenModel.ID,
		AccountID: tokenModel.AccountID,
		Date:      entity.NormalizeDate(tokenModel.Date),
		Lunch:     tokenModel.Lunch,
		Dinner:    tokenModel.Dinner,
		Status:    entity.TokenStatus(tokenModel.Status),
		CreatedAt: tokenModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TokenRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTokenNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), mergeFields(fields, map[string]any{
		"error": err.Error(),
	}))

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateToken
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new token. A duplicate key on (account, date) surfaces
// as ErrDuplicateToken.
func (r *TokenRepository) Create(ctx context.Context, token *entity.MealToken) error {
	tokenModel := model.MealToken{
		AccountID: token.AccountID,
		Date:      token.Date,
		Lunch:     token.Lunch,
		Dinner:    token.Dinner,
		Status:    string(token.Status),
		CreatedAt: token.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&tokenModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating token", result.Error, map[string]any{
			"accountId": token.AccountID,
			"date":      token.Date.Format("2006-01-02"),
		})
	}

	token.ID = tokenModel.ID
	return nil
}

// Update persists token changes
func (r *TokenRepository) Update(ctx context.Context, token *entity.MealToken) error {
	result := r.db.WithContext(ctx).
		Model(&model.MealToken{}).
		Where("id = ?", token.ID).
		Update("status", string(token.Status))

	if result.Error != nil {
		return r.handleDatabaseError("updating token", result.Error, map[string]any{
			"tokenId": token.ID,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrTokenNotFound
	}

	return nil
}

// GetByID retrieves a token by ID
func (r *TokenRepository) GetByID(ctx context.Context, id uint64) (*entity.MealToken, error) {
	var tokenModel model.MealToken
	result := r.db.WithContext(ctx).First(&tokenModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting token", result.Error, map[string]any{
			"tokenId": id,
		})
	}

	return r.modelToEntity(&tokenModel), nil
}

// FindByAccountAndDate retrieves the token an account holds for a date
func (r *TokenRepository) FindByAccountAndDate(ctx context.Context, accountID uint64, date time.Time) (*entity.MealToken, error) {
	var tokenModel model.MealToken
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND date = ?", accountID, queryDate(date)).
		First(&tokenModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("finding token by date", result.Error, map[string]any{
			"accountId": accountID,
			"date":      date.Format("2006-01-02"),
		})
	}

	return r.modelToEntity(&tokenModel), nil
}

// ListByAccount returns all tokens of one account, newest date first
func (r *TokenRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MealToken, error) {
	var tokenModels []model.MealToken
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC").
		Find(&tokenModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing tokens", result.Error, map[string]any{
			"accountId": accountID,
		})
	}

	tokens := make([]*entity.MealToken, 0, len(tokenModels))
	for i := range tokenModels {
		tokens = append(tokens, r.modelToEntity(&tokenModels[i]))
	}
	return tokens, nil
}

// ListAll returns all tokens with owner details, newest date first
func (r *TokenRepository) ListAll(ctx context.Context) ([]*persistence.TokenWithOwner, error) {
	return r.listWithOwner(ctx, r.db.WithContext(ctx).Order("date DESC, id DESC"))
}

// ListByDate returns all tokens for one calendar date with owner details
func (r *TokenRepository) ListByDate(ctx context.Context, date time.Time) ([]*persistence.TokenWithOwner, error) {
	query := r.db.WithContext(ctx).
		Where("date = ?", queryDate(date)).
		Order("id ASC")
	return r.listWithOwner(ctx, query)
}

// listWithOwner runs a token query with the owning account preloaded
func (r *TokenRepository) listWithOwner(ctx context.Context, query *gorm.DB) ([]*persistence.TokenWithOwner, error) {
	var tokenModels []model.MealToken
	result := query.Preload("Account").Find(&tokenModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing tokens with owners", result.Error, nil)
	}

	tokens := make([]*persistence.TokenWithOwner, 0, len(tokenModels))
	for i := range tokenModels {
		tokens = append(tokens, &persistence.TokenWithOwner{
			Token: r.modelToEntity(&tokenModels[i]),
			Owner: persistence.TokenOwner{
				Name:      tokenModels[i].Account.Name,
				Email:     tokenModels[i].Account.Email,
				StudentID: tokenModels[i].Account.StudentID,
			},
		})
	}
	return tokens, nil
}

// CountAll returns the total number of tokens
func (r *TokenRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MealToken{}).Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting tokens", result.Error, nil)
	}
	return count, nil
}

// CountByDate returns the number of tokens for one calendar date
func (r *TokenRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MealToken{}).
		Where("date = ?", queryDate(date)).
		Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting tokens by date", result.Error, map[string]any{
			"date": date.Format("2006-01-02"),
		})
	}
	return count, nil
}

// dailyCountRow is the scan target for the per-day aggregate query
type dailyCountRow struct {
	Date        time.Time
	LunchCount  int64
	DinnerCount int64
}

// CountDailyInRange aggregates lunch/dinner counts per date over [from, to]
func (r *TokenRepository) CountDailyInRange(ctx context.Context, from, to time.Time) ([]persistence.DailyTokenCount, error) {
	var rows []dailyCountRow
	result := r.db.WithContext(ctx).
		Model(&model.MealToken{}).
		Select("date, COUNT(*) FILTER (WHERE lunch) AS lunch_count, COUNT(*) FILTER (WHERE dinner) AS dinner_count").
		Where("date BETWEEN ? AND ?", queryDate(from), queryDate(to)).
		Group("date").
		Order("date ASC").
		Scan(&rows)

	if result.Error != nil {
		return nil, r.handleDatabaseError("aggregating daily counts", result.Error, nil)
	}

	counts := make([]persistence.DailyTokenCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, persistence.DailyTokenCount{
			Date:        entity.NormalizeDate(row.Date),
			LunchCount:  row.LunchCount,
			DinnerCount: row.DinnerCount,
		})
	}
	return counts, nil
}
