package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// MockPasswordHasher is a testify mock for the PasswordHasher port
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new MockPasswordHasher and registers
// expectation checks with the test's cleanup
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) error {
	args := m.Called(hash, plain)
	return args.Error(0)
}

// MockPasswordHasherExpecter provides a fluent expectation API
type MockPasswordHasherExpecter struct {
	m *mock.Mock
}

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{m: &m.Mock}
}

func (e *MockPasswordHasherExpecter) Hash(plain any) *mock.Call {
	return e.m.On("Hash", plain)
}

func (e *MockPasswordHasherExpecter) Compare(hash, plain any) *mock.Call {
	return e.m.On("Compare", hash, plain)
}

// MockTokenIssuer is a testify mock for the TokenIssuer port
type MockTokenIssuer struct {
	mock.Mock
}

// NewMockTokenIssuer creates a new MockTokenIssuer and registers
// expectation checks with the test's cleanup
func NewMockTokenIssuer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenIssuer {
	m := &MockTokenIssuer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenIssuer) Issue(accountID uint64, isAdmin bool) (string, error) {
	args := m.Called(accountID, isAdmin)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (*coreport.TokenClaims, error) {
	args := m.Called(token)
	var claims *coreport.TokenClaims
	if v := args.Get(0); v != nil {
		claims = v.(*coreport.TokenClaims)
	}
	return claims, args.Error(1)
}

// MockTokenIssuerExpecter provides a fluent expectation API
type MockTokenIssuerExpecter struct {
	m *mock.Mock
}

func (m *MockTokenIssuer) EXPECT() *MockTokenIssuerExpecter {
	return &MockTokenIssuerExpecter{m: &m.Mock}
}

func (e *MockTokenIssuerExpecter) Issue(accountID, isAdmin any) *mock.Call {
	return e.m.On("Issue", accountID, isAdmin)
}

func (e *MockTokenIssuerExpecter) Verify(token any) *mock.Call {
	return e.m.On("Verify", token)
}
