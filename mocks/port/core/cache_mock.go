package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCache is a testify mock for the Cache port
type MockCache struct {
	mock.Mock
}

// NewMockCache creates a new MockCache and registers expectation checks
// with the test's cleanup
func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	callArgs := make([]any, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

// MockCacheExpecter provides a fluent expectation API
type MockCacheExpecter struct {
	m *mock.Mock
}

func (m *MockCache) EXPECT() *MockCacheExpecter {
	return &MockCacheExpecter{m: &m.Mock}
}

func (e *MockCacheExpecter) Get(ctx, key, dest any) *mock.Call {
	return e.m.On("Get", ctx, key, dest)
}

func (e *MockCacheExpecter) Set(ctx, key, value, ttl any) *mock.Call {
	return e.m.On("Set", ctx, key, value, ttl)
}

func (e *MockCacheExpecter) Delete(ctx any, keys ...any) *mock.Call {
	callArgs := make([]any, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	callArgs = append(callArgs, keys...)
	return e.m.On("Delete", callArgs...)
}
