package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin reporting and account promotion requests
type AdminHandler struct {
	statsUseCase   usecase.StatsUseCase
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(statsUseCase usecase.StatsUseCase, accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		statsUseCase:   statsUseCase,
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Dashboard handles the GET /api/admin/stats endpoint
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DailyStats handles the GET /api/admin/daily-stats endpoint
func (h *AdminHandler) DailyStats(c *gin.Context) {
	stats, err := h.statsUseCase.DailyStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// TomorrowTokens handles the GET /api/admin/tomorrow-tokens endpoint
func (h *AdminHandler) TomorrowTokens(c *gin.Context) {
	tokens, err := h.statsUseCase.TomorrowTokens(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenWithOwnerResponses(tokens))
}

// Promote handles the PUT /api/admin/promote/:id endpoint
func (h *AdminHandler) Promote(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrAccountNotFound),
			Message: "Invalid account ID format",
		})
		return
	}

	if err := h.accountUseCase.Promote(c.Request.Context(), accountID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	account, err := h.accountUseCase.GetByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}
