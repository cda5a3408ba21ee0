package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
)

// MockAccountUseCase is a testify mock for the AccountUseCase port
type MockAccountUseCase struct {
	mock.Mock
}

// NewMockAccountUseCase creates a new MockAccountUseCase and registers
// expectation checks with the test's cleanup
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	m := &MockAccountUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func accountResult(args mock.Arguments) (*entity.Account, error) {
	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.Account, error) {
	return accountResult(m.Called(ctx, req))
}

func (m *MockAccountUseCase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	args := m.Called(ctx, email, password)
	var result *usecase.AuthResult
	if v := args.Get(0); v != nil {
		result = v.(*usecase.AuthResult)
	}
	return result, args.Error(1)
}

func (m *MockAccountUseCase) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	return accountResult(m.Called(ctx, id))
}

func (m *MockAccountUseCase) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return accountResult(m.Called(ctx, email))
}

func (m *MockAccountUseCase) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	var accounts []*entity.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]*entity.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountUseCase) AdminTransfer(ctx context.Context, adminID, targetID uint64, amount int64) (*usecase.TransferResult, error) {
	return transferResult(m.Called(ctx, adminID, targetID, amount))
}

func (m *MockAccountUseCase) AdminTransferByStudentID(ctx context.Context, adminID uint64, studentID string, amount int64) (*usecase.TransferResult, error) {
	return transferResult(m.Called(ctx, adminID, studentID, amount))
}

func transferResult(args mock.Arguments) (*usecase.TransferResult, error) {
	var result *usecase.TransferResult
	if v := args.Get(0); v != nil {
		result = v.(*usecase.TransferResult)
	}
	return result, args.Error(1)
}

func (m *MockAccountUseCase) Promote(ctx context.Context, accountID uint64) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockAccountUseCaseExpecter provides a fluent expectation API
type MockAccountUseCaseExpecter struct {
	m *mock.Mock
}

func (m *MockAccountUseCase) EXPECT() *MockAccountUseCaseExpecter {
	return &MockAccountUseCaseExpecter{m: &m.Mock}
}

func (e *MockAccountUseCaseExpecter) Register(ctx, req any) *mock.Call {
	return e.m.On("Register", ctx, req)
}

func (e *MockAccountUseCaseExpecter) Login(ctx, email, password any) *mock.Call {
	return e.m.On("Login", ctx, email, password)
}

func (e *MockAccountUseCaseExpecter) GetByID(ctx, id any) *mock.Call {
	return e.m.On("GetByID", ctx, id)
}

func (e *MockAccountUseCaseExpecter) GetByEmail(ctx, email any) *mock.Call {
	return e.m.On("GetByEmail", ctx, email)
}

func (e *MockAccountUseCaseExpecter) List(ctx any) *mock.Call {
	return e.m.On("List", ctx)
}

func (e *MockAccountUseCaseExpecter) AdminTransfer(ctx, adminID, targetID, amount any) *mock.Call {
	return e.m.On("AdminTransfer", ctx, adminID, targetID, amount)
}

func (e *MockAccountUseCaseExpecter) AdminTransferByStudentID(ctx, adminID, studentID, amount any) *mock.Call {
	return e.m.On("AdminTransferByStudentID", ctx, adminID, studentID, amount)
}

func (e *MockAccountUseCaseExpecter) Promote(ctx, accountID any) *mock.Call {
	return e.m.On("Promote", ctx, accountID)
}
