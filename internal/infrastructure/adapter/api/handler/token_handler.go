package handler

import (
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TokenHandler handles meal token HTTP requests
type TokenHandler struct {
	tokenUseCase usecase.TokenUseCase
	logger       coreport.Logger
}

// NewTokenHandler creates a new token handler instance
func NewTokenHandler(tokenUseCase usecase.TokenUseCase, logger coreport.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// Purchase handles the POST /api/tokens/buy endpoint
func (h *TokenHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTokenDate),
			Message: "Date must be in YYYY-MM-DD format",
		})
		return
	}

	token, err := h.tokenUseCase.Purchase(c.Request.Context(), middleware.CallerID(c), usecase.PurchaseTokenRequest{
		Date:   date,
		Lunch:  req.Lunch,
		Dinner: req.Dinner,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTokenResponse(token))
}

// ListMine handles the GET /api/tokens/user endpoint
func (h *TokenHandler) ListMine(c *gin.Context) {
	tokens, err := h.tokenUseCase.ListForAccount(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponses(tokens))
}

// ListAll handles the GET /api/tokens/all endpoint (admin)
func (h *TokenHandler) ListAll(c *gin.Context) {
	tokens, err := h.tokenUseCase.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenWithOwnerResponses(tokens))
}

// Get handles the GET /api/tokens/:id endpoint
func (h *TokenHandler) Get(c *gin.Context) {
	tokenID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenNotFound),
			Message: "Invalid token ID format",
		})
		return
	}

	caller := usecase.Caller{
		AccountID: middleware.CallerID(c),
		IsAdmin:   middleware.CallerIsAdmin(c),
	}

	token, err := h.tokenUseCase.Get(c.Request.Context(), caller, tokenID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(token))
}

// MarkUsed handles the PUT /api/tokens/:id/mark-used endpoint (admin)
func (h *TokenHandler) MarkUsed(c *gin.Context) {
	tokenID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTokenNotFound),
			Message: "Invalid token ID format",
		})
		return
	}

	token, err := h.tokenUseCase.MarkUsed(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(token))
}
