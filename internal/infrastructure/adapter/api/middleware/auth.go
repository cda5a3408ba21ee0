package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextAccountID = "accountId"
	ContextIsAdmin   = "isAdmin"
)

// RequireAuth verifies the bearer token and stores the caller identity in
// the request context
func RequireAuth(tokenIssuer coreport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Authentication required",
			})
			return
		}

		claims, err := tokenIssuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("Token verification failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated account id from the request context
func CallerID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextAccountID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// CallerIsAdmin reports whether the authenticated caller is an admin
func CallerIsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}
