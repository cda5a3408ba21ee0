package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// MockTopUpRepository is a testify mock for the TopUpRepository port
type MockTopUpRepository struct {
	mock.Mock
}

// NewMockTopUpRepository creates a new MockTopUpRepository and registers
// expectation checks with the test's cleanup
func NewMockTopUpRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTopUpRepository {
	m := &MockTopUpRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTopUpRepository) Create(ctx context.Context, topUp *entity.TopUp) error {
	args := m.Called(ctx, topUp)
	return args.Error(0)
}

func (m *MockTopUpRepository) Update(ctx context.Context, topUp *entity.TopUp) error {
	args := m.Called(ctx, topUp)
	return args.Error(0)
}

func (m *MockTopUpRepository) GetByID(ctx context.Context, id uint64) (*entity.TopUp, error) {
	args := m.Called(ctx, id)
	return topUpResult(args)
}

func (m *MockTopUpRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.TopUp, error) {
	args := m.Called(ctx, id)
	return topUpResult(args)
}

func (m *MockTopUpRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.TopUp, error) {
	args := m.Called(ctx, transactionID)
	return topUpResult(args)
}

func (m *MockTopUpRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.TopUp, error) {
	args := m.Called(ctx, accountID)
	var topUps []*entity.TopUp
	if v := args.Get(0); v != nil {
		topUps = v.([]*entity.TopUp)
	}
	return topUps, args.Error(1)
}

func topUpResult(args mock.Arguments) (*entity.TopUp, error) {
	var topUp *entity.TopUp
	if v := args.Get(0); v != nil {
		topUp = v.(*entity.TopUp)
	}
	return topUp, args.Error(1)
}

// MockTopUpRepositoryExpecter provides a fluent expectation API
type MockTopUpRepositoryExpecter struct {
	m *mock.Mock
}

func (m *MockTopUpRepository) EXPECT() *MockTopUpRepositoryExpecter {
	return &MockTopUpRepositoryExpecter{m: &m.Mock}
}

func (e *MockTopUpRepositoryExpecter) Create(ctx, topUp any) *mock.Call {
	return e.m.On("Create", ctx, topUp)
}

func (e *MockTopUpRepositoryExpecter) Update(ctx, topUp any) *mock.Call {
	return e.m.On("Update", ctx, topUp)
}

func (e *MockTopUpRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.m.On("GetByID", ctx, id)
}

func (e *MockTopUpRepositoryExpecter) GetByIDForUpdate(ctx, id any) *mock.Call {
	return e.m.On("GetByIDForUpdate", ctx, id)
}

func (e *MockTopUpRepositoryExpecter) GetByTransactionID(ctx, transactionID any) *mock.Call {
	return e.m.On("GetByTransactionID", ctx, transactionID)
}

func (e *MockTopUpRepositoryExpecter) ListByAccount(ctx, accountID any) *mock.Call {
	return e.m.On("ListByAccount", ctx, accountID)
}
