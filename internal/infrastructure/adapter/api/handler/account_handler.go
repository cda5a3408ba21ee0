package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Me handles the GET /api/users/me endpoint
func (h *AccountHandler) Me(c *gin.Context) {
	account, err := h.accountUseCase.GetByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// List handles the GET /api/users endpoint (admin)
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, dto.NewAccountResponse(account))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByEmail handles the GET /api/users/by-email endpoint (admin)
func (h *AccountHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountData),
			Message: "Query parameter 'email' is required",
		})
		return
	}

	account, err := h.accountUseCase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// AdjustBalance handles the PUT /api/users/:id/balance endpoint (admin).
// The transfer is funded from the acting admin's own balance.
func (h *AccountHandler) AdjustBalance(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountData),
			Message: "Invalid account ID format",
		})
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.accountUseCase.AdminTransfer(c.Request.Context(), middleware.CallerID(c), targetID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		AdminBalance: result.AdminBalance,
		UserBalance:  result.UserBalance,
		StudentID:    result.StudentID,
	})
}

// AdjustBalanceByStudentID handles the PUT /api/users/balance-by-student-id endpoint (admin)
func (h *AccountHandler) AdjustBalanceByStudentID(c *gin.Context) {
	var req dto.AdjustBalanceByStudentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.accountUseCase.AdminTransferByStudentID(c.Request.Context(), middleware.CallerID(c), req.StudentID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		AdminBalance: result.AdminBalance,
		UserBalance:  result.UserBalance,
		StudentID:    result.StudentID,
	})
}
