package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// MockLogger is a testify mock for the Logger port
type MockLogger struct {
	mock.Mock
}

// NewMockLogger creates a new MockLogger and registers expectation checks
// with the test's cleanup
func NewMockLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

// MockLoggerExpecter provides a fluent expectation API
type MockLoggerExpecter struct {
	m *mock.Mock
}

func (m *MockLogger) EXPECT() *MockLoggerExpecter {
	return &MockLoggerExpecter{m: &m.Mock}
}

func (e *MockLoggerExpecter) SetLevel(level any) *mock.Call {
	return e.m.On("SetLevel", level)
}

func (e *MockLoggerExpecter) GetLevel() *mock.Call {
	return e.m.On("GetLevel")
}

func (e *MockLoggerExpecter) Debug(message, fields any) *mock.Call {
	return e.m.On("Debug", message, fields)
}

func (e *MockLoggerExpecter) Info(message, fields any) *mock.Call {
	return e.m.On("Info", message, fields)
}

func (e *MockLoggerExpecter) Warn(message, fields any) *mock.Call {
	return e.m.On("Warn", message, fields)
}

func (e *MockLoggerExpecter) Error(message, fields any) *mock.Call {
	return e.m.On("Error", message, fields)
}

func (e *MockLoggerExpecter) Flush() *mock.Call {
	return e.m.On("Flush")
}
