package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/persistence"
)

// MockUnitOfWork is a testify mock for the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a new MockUnitOfWork and registers expectation
// checks with the test's cleanup
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	var txCtx context.Context
	if v := args.Get(0); v != nil {
		txCtx = v.(context.Context)
	}
	return txCtx, args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.AccountRepository)
}

func (m *MockUnitOfWork) GetTokenRepository(ctx context.Context) persistence.TokenRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TokenRepository)
}

func (m *MockUnitOfWork) GetMoneyRequestRepository(ctx context.Context) persistence.MoneyRequestRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.MoneyRequestRepository)
}

func (m *MockUnitOfWork) GetTopUpRepository(ctx context.Context) persistence.TopUpRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TopUpRepository)
}

// MockUnitOfWorkExpecter provides a fluent expectation API
type MockUnitOfWorkExpecter struct {
	m *mock.Mock
}

func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkExpecter {
	return &MockUnitOfWorkExpecter{m: &m.Mock}
}

func (e *MockUnitOfWorkExpecter) Begin(ctx any) *mock.Call {
	return e.m.On("Begin", ctx)
}

func (e *MockUnitOfWorkExpecter) Commit(ctx any) *mock.Call {
	return e.m.On("Commit", ctx)
}

func (e *MockUnitOfWorkExpecter) Rollback(ctx any) *mock.Call {
	return e.m.On("Rollback", ctx)
}

func (e *MockUnitOfWorkExpecter) GetAccountRepository(ctx any) *mock.Call {
	return e.m.On("GetAccountRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetTokenRepository(ctx any) *mock.Call {
	return e.m.On("GetTokenRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetMoneyRequestRepository(ctx any) *mock.Call {
	return e.m.On("GetMoneyRequestRepository", ctx)
}

func (e *MockUnitOfWorkExpecter) GetTopUpRepository(ctx any) *mock.Call {
	return e.m.On("GetTopUpRepository", ctx)
}
