package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
)

// MockAccountRepository is a testify mock for the AccountRepository port
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a new MockAccountRepository and registers
// expectation checks with the test's cleanup
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	return accountResult(args)
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	return accountResult(args)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	return accountResult(args)
}

func (m *MockAccountRepository) GetByStudentID(ctx context.Context, studentID string) (*entity.Account, error) {
	args := m.Called(ctx, studentID)
	return accountResult(args)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	var accounts []*entity.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]*entity.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func accountResult(args mock.Arguments) (*entity.Account, error) {
	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}
	return account, args.Error(1)
}

// MockAccountRepositoryExpecter provides a fluent expectation API
type MockAccountRepositoryExpecter struct {
	m *mock.Mock
}

func (m *MockAccountRepository) EXPECT() *MockAccountRepositoryExpecter {
	return &MockAccountRepositoryExpecter{m: &m.Mock}
}

func (e *MockAccountRepositoryExpecter) GetByID(ctx, id any) *mock.Call {
	return e.m.On("GetByID", ctx, id)
}

func (e *MockAccountRepositoryExpecter) GetByIDForUpdate(ctx, id any) *mock.Call {
	return e.m.On("GetByIDForUpdate", ctx, id)
}

func (e *MockAccountRepositoryExpecter) GetByEmail(ctx, email any) *mock.Call {
	return e.m.On("GetByEmail", ctx, email)
}

func (e *MockAccountRepositoryExpecter) GetByStudentID(ctx, studentID any) *mock.Call {
	return e.m.On("GetByStudentID", ctx, studentID)
}

func (e *MockAccountRepositoryExpecter) Create(ctx, account any) *mock.Call {
	return e.m.On("Create", ctx, account)
}

func (e *MockAccountRepositoryExpecter) Update(ctx, account any) *mock.Call {
	return e.m.On("Update", ctx, account)
}

func (e *MockAccountRepositoryExpecter) List(ctx any) *mock.Call {
	return e.m.On("List", ctx)
}

func (e *MockAccountRepositoryExpecter) CountStudents(ctx any) *mock.Call {
	return e.m.On("CountStudents", ctx)
}
