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

// MoneyRequestHandler handles money request HTTP requests
type MoneyRequestHandler struct {
	moneyRequestUseCase usecase.MoneyRequestUseCase
	logger              coreport.Logger
}

// NewMoneyRequestHandler creates a new money request handler instance
func NewMoneyRequestHandler(moneyRequestUseCase usecase.MoneyRequestUseCase, logger coreport.Logger) *MoneyRequestHandler {
	return &MoneyRequestHandler{
		moneyRequestUseCase: moneyRequestUseCase,
		logger:              logger,
	}
}

// Create handles the POST /api/money-requests endpoint
func (h *MoneyRequestHandler) Create(c *gin.Context) {
	var req dto.CreateMoneyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.moneyRequestUseCase.Create(c.Request.Context(), middleware.CallerID(c), usecase.CreateMoneyRequestRequest{
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		PaymentNumber:   req.PaymentNumber,
		TransactionID:   req.TransactionID,
		PaymentPhotoURL: req.PaymentPhotoURL,
		Details:         req.Details,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMoneyRequestResponse(request))
}

// ListMine handles the GET /api/money-requests/user endpoint
func (h *MoneyRequestHandler) ListMine(c *gin.Context) {
	requests, err := h.moneyRequestUseCase.ListForAccount(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyRequestResponses(requests))
}

// ListAll handles the GET /api/money-requests endpoint (admin)
func (h *MoneyRequestHandler) ListAll(c *gin.Context) {
	requests, err := h.moneyRequestUseCase.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyRequestWithOwnerResponses(requests))
}

// Process handles the PUT /api/money-requests/:id endpoint (admin)
func (h *MoneyRequestHandler) Process(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrRequestNotFound),
			Message: "Invalid request ID format",
		})
		return
	}

	var req dto.ProcessMoneyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.moneyRequestUseCase.Process(c.Request.Context(), middleware.CallerID(c), requestID, req.Action == "approve")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyRequestResponse(request))
}
