package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	coremocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(t *testing.T, adminOnly bool) (*gin.Engine, *coremocks.MockTokenIssuer) {
	t.Helper()
	tokenIssuer := coremocks.NewMockTokenIssuer(t)

	router := gin.New()
	group := router.Group("/", RequireAuth(tokenIssuer, logger.NewNoopLogger()))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"accountId": CallerID(c),
			"isAdmin":   CallerIsAdmin(c),
		})
	})
	return router, tokenIssuer
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("Valid bearer token passes the caller identity through", func(t *testing.T) {
		router, tokenIssuer := newAuthTestRouter(t, false)

		tokenIssuer.EXPECT().Verify("good-token").
			Return(&coreport.TokenClaims{AccountID: 7, IsAdmin: false}, nil).Once()

		rec := get(router, "Bearer good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accountId":7,"isAdmin":false}`, rec.Body.String())
	})

	t.Run("Missing header", func(t *testing.T) {
		router, _ := newAuthTestRouter(t, false)

		rec := get(router, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Header without the bearer scheme", func(t *testing.T) {
		router, _ := newAuthTestRouter(t, false)

		rec := get(router, "Basic dXNlcjpwdw==")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rejected token", func(t *testing.T) {
		router, tokenIssuer := newAuthTestRouter(t, false)

		tokenIssuer.EXPECT().Verify("expired-token").
			Return(nil, errs.ErrUnauthorized).Once()

		rec := get(router, "Bearer expired-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Admin claims pass", func(t *testing.T) {
		router, tokenIssuer := newAuthTestRouter(t, true)

		tokenIssuer.EXPECT().Verify("admin-token").
			Return(&coreport.TokenClaims{AccountID: 1, IsAdmin: true}, nil).Once()

		rec := get(router, "Bearer admin-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Regular account is forbidden", func(t *testing.T) {
		router, tokenIssuer := newAuthTestRouter(t, true)

		tokenIssuer.EXPECT().Verify("user-token").
			Return(&coreport.TokenClaims{AccountID: 7, IsAdmin: false}, nil).Once()

		rec := get(router, "Bearer user-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
