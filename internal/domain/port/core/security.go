package core

// PasswordHasher abstracts credential hashing so the domain never sees bcrypt directly
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(plain string) (string, error)
	// Compare verifies a plaintext password against a stored hash
	Compare(hash, plain string) error
}

// TokenClaims is the authenticated identity carried by a bearer token
type TokenClaims struct {
	AccountID uint64
	IsAdmin   bool
}

// TokenIssuer issues and verifies stateless bearer tokens for authenticated accounts
type TokenIssuer interface {
	// Issue creates a signed token for the given account
	Issue(accountID uint64, isAdmin bool) (string, error)
	// Verify parses and validates a token, returning its claims
	Verify(token string) (*TokenClaims, error)
}
