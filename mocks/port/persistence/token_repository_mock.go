package persistence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// MockTokenRepository is a testify mock for the TokenRepository port
type MockTokenRepository struct {
	mock.Mock
}

// NewMockTokenRepository creates a new MockTokenRepository and registers
// expectation checks with the test's cleanup
func NewMockTokenRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenRepository {
	m := &MockTokenRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenRepository) Create(ctx context.Context, token *entity.MealToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) Update(ctx context.Context, token *entity.MealToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByID(ctx context.Context, id uint64) (*entity.MealToken, error) {
	args := m.Called(ctx, id)
	return tokenResult(args)
}

func (m *MockTokenRepository) FindByAccountAndDate(ctx context.Context, accountID uint64, date time.Time) (*entity.MealToken, error) {
	args := m.Called(ctx, accountID, date)
	return tokenResult(args)
}

func (m *MockTokenRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MealToken, error) {
	args := m.Called(ctx, accountID)
	var tokens []*entity.MealToken
	if v := args.Get(0); v != nil {
		tokens = v.([]*entity.MealToken)
	}
	return tokens, args.Error(1)
}

func (m *MockTokenRepository) ListAll(ctx context.Context) ([]*persistence.TokenWithOwner, error) {
	args := m.Called(ctx)
	return tokenWithOwnerResult(args)
}

func (m *MockTokenRepository) ListByDate(ctx context.Context, date time.Time) ([]*persistence.TokenWithOwner, error) {
	args := m.Called(ctx, date)
	return tokenWithOwnerResult(args)
}

func (m *MockTokenRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) CountDailyInRange(ctx context.Context, from, to time.Time) ([]persistence.DailyTokenCount, error) {
	args := m.Called(ctx, from, to)
	var counts []persistence.DailyTokenCount
	if v := args.Get(0); v != nil {
		counts = v.([]persistence.DailyTokenCount)
	}
	return counts, args.Error(1)
}

func tokenResult(args mock.Arguments) (*entity.MealToken, error) {
	var token *entity.MealToken
	if v := args.Get(0); v != nil {
		token = v.(*entity.MealToken)
	}
	return token, args.Error(1)
}

func tokenWithOwnerResult(args mock.Arguments) ([]*persistence.TokenWithOwner, error) {
	var tokens []*persistence.TokenWithOwner
	if v := args.Get(0); v != nil {
		tokens = v.([]*persistence.TokenWithOwner)
	}
	return tokens, args.Error(1)
}

// MockTokenRepositoryExpecter provides a fluent expectation API
type MockTokenRepositoryExpecter struct {
	m *mock.Mock
}

func (m *MockTokenRepository) EXPECT() *MockTokenRepositoryExpecter {
	return &MockTokenRepositoryExpecter{m: &m.Mock}
}

func (e *MockTokenRepositoryExpecter) Create(ctx, token any) *mock.Call {
	return e.m.On("Create", ctx, token)
}

func (e *MockTokenRepositoryExpecter) Update(ctx, token any) *mock.Call {
	return e.m.On("Update", ctx, token)
}

func (e *MockTokenRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.m.On("GetByID", ctx, id)
}

func (e *MockTokenRepositoryExpecter) FindByAccountAndDate(ctx, accountID, date any) *mock.Call {
	return e.m.On("FindByAccountAndDate", ctx, accountID, date)
}

func (e *MockTokenRepositoryExpecter) ListByAccount(ctx, accountID any) *mock.Call {
	return e.m.On("ListByAccount", ctx, accountID)
}

func (e *MockTokenRepositoryExpecter) ListAll(ctx any) *mock.Call {
	return e.m.On("ListAll", ctx)
}

func (e *MockTokenRepositoryExpecter) ListByDate(ctx, date any) *mock.Call {
	return e.m.On("ListByDate", ctx, date)
}

func (e *MockTokenRepositoryExpecter) CountAll(ctx any) *mock.Call {
	return e.m.On("CountAll", ctx)
}

func (e *MockTokenRepositoryExpecter) CountByDate(ctx, date any) *mock.Call {
	return e.m.On("CountByDate", ctx, date)
}

func (e *MockTokenRepositoryExpecter) CountDailyInRange(ctx, from, to any) *mock.Call {
	return e.m.On("CountDailyInRange", ctx, from, to)
}
