package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
)

// MockPaymentGateway is a testify mock for the PaymentGateway port
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a new MockPaymentGateway and registers
// expectation checks with the test's cleanup
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentGateway) InitiatePayment(ctx context.Context, req gateway.InitiateRequest) (*gateway.PaymentSession, error) {
	args := m.Called(ctx, req)
	var session *gateway.PaymentSession
	if v := args.Get(0); v != nil {
		session = v.(*gateway.PaymentSession)
	}
	return session, args.Error(1)
}

func (m *MockPaymentGateway) ValidatePayment(ctx context.Context, validationID string) (*gateway.ValidationResult, error) {
	args := m.Called(ctx, validationID)
	var result *gateway.ValidationResult
	if v := args.Get(0); v != nil {
		result = v.(*gateway.ValidationResult)
	}
	return result, args.Error(1)
}

func (m *MockPaymentGateway) QueryTransaction(ctx context.Context, transactionID string) (map[string]any, error) {
	args := m.Called(ctx, transactionID)
	var view map[string]any
	if v := args.Get(0); v != nil {
		view = v.(map[string]any)
	}
	return view, args.Error(1)
}

// MockPaymentGatewayExpecter provides a fluent expectation API
type MockPaymentGatewayExpecter struct {
	m *mock.Mock
}

func (m *MockPaymentGateway) EXPECT() *MockPaymentGatewayExpecter {
	return &MockPaymentGatewayExpecter{m: &m.Mock}
}

func (e *MockPaymentGatewayExpecter) InitiatePayment(ctx, req any) *mock.Call {
	return e.m.On("InitiatePayment", ctx, req)
}

func (e *MockPaymentGatewayExpecter) ValidatePayment(ctx, validationID any) *mock.Call {
	return e.m.On("ValidatePayment", ctx, validationID)
}

func (e *MockPaymentGatewayExpecter) QueryTransaction(ctx, transactionID any) *mock.Call {
	return e.m.On("QueryTransaction", ctx, transactionID)
}

// MockMediaStorage is a testify mock for the MediaStorage port
type MockMediaStorage struct {
	mock.Mock
}

// NewMockMediaStorage creates a new MockMediaStorage and registers
// expectation checks with the test's cleanup
func NewMockMediaStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaStorage {
	m := &MockMediaStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMediaStorage) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, filename, contentType, data)
	return args.String(0), args.Error(1)
}

// MockMediaStorageExpecter provides a fluent expectation API
type MockMediaStorageExpecter struct {
	m *mock.Mock
}

func (m *MockMediaStorage) EXPECT() *MockMediaStorageExpecter {
	return &MockMediaStorageExpecter{m: &m.Mock}
}

func (e *MockMediaStorageExpecter) Upload(ctx, filename, contentType, data any) *mock.Call {
	return e.m.On("Upload", ctx, filename, contentType, data)
}
