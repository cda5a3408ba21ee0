package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/entity"
	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/logger"
	timeadapter "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/time"
	usecasemocks "github.com/shoisob2004037/Hall-Food-Token-Booking/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockAccountUseCase) {
	t.Helper()
	accountUseCase := usecasemocks.NewMockAccountUseCase(t)
	h := NewAuthHandler(accountUseCase, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	return router, accountUseCase
}

func testAccount(t *testing.T) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount(
		"Rahim Uddin", "rahim@hall.edu", "2004037", "hashed-pw", 500,
		timeadapter.NewRealTimeProvider(),
	)
	require.NoError(t, err)
	account.ID = 7
	return account
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Run("Returns 201 with the created account", func(t *testing.T) {
		router, accountUseCase := newAuthRouter(t)
		account := testAccount(t)

		accountUseCase.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
			Name:      "Rahim Uddin",
			Email:     "rahim@hall.edu",
			Password:  "s3cret",
			StudentID: "2004037",
		}).Return(account, nil).Once()

		rec := postJSON(t, router, "/api/auth/register", gin.H{
			"name":      "Rahim Uddin",
			"email":     "rahim@hall.edu",
			"password":  "s3cret",
			"studentId": "2004037",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.AccountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.ID)
		assert.Equal(t, int64(500), resp.Balance)
		assert.False(t, resp.IsAdmin)
	})

	t.Run("Duplicate account maps to 409", func(t *testing.T) {
		router, accountUseCase := newAuthRouter(t)

		accountUseCase.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errs.ErrDuplicateAccount).Once()

		rec := postJSON(t, router, "/api/auth/register", gin.H{
			"name":      "Rahim Uddin",
			"email":     "rahim@hall.edu",
			"password":  "s3cret",
			"studentId": "2004037",
		})

		require.Equal(t, http.StatusConflict, rec.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrDuplicateAccount), resp.Code)
	})

	t.Run("Malformed payload never reaches the use case", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := postJSON(t, router, "/api/auth/register", gin.H{
			"email": "not-an-email",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("Returns the token and the account", func(t *testing.T) {
		router, accountUseCase := newAuthRouter(t)
		account := testAccount(t)

		accountUseCase.EXPECT().Login(mock.Anything, "rahim@hall.edu", "s3cret").
			Return(&usecase.AuthResult{Token: "signed.jwt.token", Account: account}, nil).Once()

		rec := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "rahim@hall.edu",
			"password": "s3cret",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.Equal(t, "rahim@hall.edu", resp.Account.Email)
	})

	t.Run("Bad credentials map to 401", func(t *testing.T) {
		router, accountUseCase := newAuthRouter(t)

		accountUseCase.EXPECT().Login(mock.Anything, "rahim@hall.edu", "wrong").
			Return(nil, errs.ErrInvalidCredentials).Once()

		rec := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "rahim@hall.edu",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
