package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// MockTimeProvider is a testify mock for the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

// NewMockTimeProvider creates a new MockTimeProvider and registers
// expectation checks with the test's cleanup
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) Until(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

// MockTimeProviderExpecter provides a fluent expectation API
type MockTimeProviderExpecter struct {
	m *mock.Mock
}

func (m *MockTimeProvider) EXPECT() *MockTimeProviderExpecter {
	return &MockTimeProviderExpecter{m: &m.Mock}
}

func (e *MockTimeProviderExpecter) Now() *mock.Call {
	return e.m.On("Now")
}

func (e *MockTimeProviderExpecter) Since(t any) *mock.Call {
	return e.m.On("Since", t)
}

func (e *MockTimeProviderExpecter) Until(t any) *mock.Call {
	return e.m.On("Until", t)
}

func (e *MockTimeProviderExpecter) WithTimeout(ctx, timeout any) *mock.Call {
	return e.m.On("WithTimeout", ctx, timeout)
}
