package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// MockMoneyRequestRepository is a testify mock for the MoneyRequestRepository port
type MockMoneyRequestRepository struct {
	mock.Mock
}

// NewMockMoneyRequestRepository creates a new MockMoneyRequestRepository and
// registers expectation checks with the test's cleanup
func NewMockMoneyRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMoneyRequestRepository {
	m := &MockMoneyRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMoneyRequestRepository) Create(ctx context.Context, request *entity.MoneyRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMoneyRequestRepository) Update(ctx context.Context, request *entity.MoneyRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMoneyRequestRepository) GetByID(ctx context.Context, id uint64) (*entity.MoneyRequest, error) {
	args := m.Called(ctx, id)
	return moneyRequestResult(args)
}

func (m *MockMoneyRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.MoneyRequest, error) {
	args := m.Called(ctx, id)
	return moneyRequestResult(args)
}

func (m *MockMoneyRequestRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.MoneyRequest, error) {
	args := m.Called(ctx, accountID)
	var requests []*entity.MoneyRequest
	if v := args.Get(0); v != nil {
		requests = v.([]*entity.MoneyRequest)
	}
	return requests, args.Error(1)
}

func (m *MockMoneyRequestRepository) ListAll(ctx context.Context) ([]*persistence.RequestWithAccount, error) {
	args := m.Called(ctx)
	var requests []*persistence.RequestWithAccount
	if v := args.Get(0); v != nil {
		requests = v.([]*persistence.RequestWithAccount)
	}
	return requests, args.Error(1)
}

func moneyRequestResult(args mock.Arguments) (*entity.MoneyRequest, error) {
	var request *entity.MoneyRequest
	if v := args.Get(0); v != nil {
		request = v.(*entity.MoneyRequest)
	}
	return request, args.Error(1)
}

// MockMoneyRequestRepositoryExpecter provides a fluent expectation API
type MockMoneyRequestRepositoryExpecter struct {
	m *mock.Mock
}

func (m *MockMoneyRequestRepository) EXPECT() *MockMoneyRequestRepositoryExpecter {
	return &MockMoneyRequestRepositoryExpecter{m: &m.Mock}
}

func (e *MockMoneyRequestRepositoryExpecter) Create(ctx, request any) *mock.Call {
	return e.m.On("Create", ctx, request)
}

func (e *MockMoneyRequestRepositoryExpecter) Update(ctx, request any) *mock.Call {
	return e.m.On("Update", ctx, request)
}

func (e *MockMoneyRequestRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.m.On("GetByID", ctx, id)
}

func (e *MockMoneyRequestRepositoryExpecter) GetByIDForUpdate(ctx, id any) *mock.Call {
	return e.m.On("GetByIDForUpdate", ctx, id)
}

func (e *MockMoneyRequestRepositoryExpecter) ListByAccount(ctx, accountID any) *mock.Call {
	return e.m.On("ListByAccount", ctx, accountID)
}

func (e *MockMoneyRequestRepositoryExpecter) ListAll(ctx any) *mock.Call {
	return e.m.On("ListAll", ctx)
}
