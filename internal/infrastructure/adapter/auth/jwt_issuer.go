package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
)

// Claims carries the signed identity of an authenticated account
type Claims struct {
	AccountID uint64 `json:"accountId"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// JWTIssuer implements the TokenIssuer interface using HMAC-signed JWTs
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a new JWT issuer
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider core.TimeProvider) core.TokenIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a bearer token for the given account
func (i *JWTIssuer) Issue(accountID uint64, isAdmin bool) (string, error) {
	now := i.timeProvider.Now()

	claims := Claims{
		AccountID: accountID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a bearer token, returning its claims
func (i *JWTIssuer) Verify(tokenStr string) (*core.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthorized
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.ErrUnauthorized
	}

	return &core.TokenClaims{
		AccountID: claims.AccountID,
		IsAdmin:   claims.IsAdmin,
	}, nil
}
