package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/usecase"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TopUpHandler handles gateway top-up HTTP requests and callbacks
type TopUpHandler struct {
	topUpUseCase usecase.TopUpUseCase
	frontendURL  string
	logger       coreport.Logger
}

// NewTopUpHandler creates a new top-up handler instance
func NewTopUpHandler(topUpUseCase usecase.TopUpUseCase, frontendURL string, logger coreport.Logger) *TopUpHandler {
	return &TopUpHandler{
		topUpUseCase: topUpUseCase,
		frontendURL:  frontendURL,
		logger:       logger,
	}
}

// Initiate handles the POST /api/topup/initiate endpoint
func (h *TopUpHandler) Initiate(c *gin.Context) {
	var req dto.InitiateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.topUpUseCase.Initiate(c.Request.Context(), middleware.CallerID(c), req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.InitiateTopUpResponse{
		GatewayURL:    result.GatewayURL,
		TransactionID: result.TransactionID,
	})
}

// Success handles the gateway's success callback. The gateway posts the
// browser here, so the response is a redirect back to the frontend.
func (h *TopUpHandler) Success(c *gin.Context) {
	cb := h.callbackFromForm(c)
	topUp, err := h.topUpUseCase.Complete(c.Request.Context(), cb)
	if err != nil {
		h.logger.Error("Top-up completion failed", map[string]any{
			"transactionId": cb.TransactionID,
			"error":         err.Error(),
		})
		c.Redirect(http.StatusFound, h.frontendPage("payment-failed", url.Values{
			"transactionId": {cb.TransactionID},
			"reason":        {"validation_failed"},
		}))
		return
	}

	c.Redirect(http.StatusFound, h.frontendPage("payment-success", url.Values{
		"transactionId": {topUp.TransactionID},
		"amount":        {strconv.FormatInt(topUp.Amount, 10)},
	}))
}

// Fail handles the gateway's failure callback
func (h *TopUpHandler) Fail(c *gin.Context) {
	cb := h.callbackFromForm(c)
	if err := h.topUpUseCase.MarkFailed(c.Request.Context(), cb); err != nil {
		h.logger.Warn("Top-up failure callback not applied", map[string]any{
			"transactionId": cb.TransactionID,
			"error":         err.Error(),
		})
	}

	c.Redirect(http.StatusFound, h.frontendPage("payment-failed", url.Values{
		"transactionId": {cb.TransactionID},
		"reason":        {"gateway_failed"},
	}))
}

// Cancel handles the gateway's cancellation callback
func (h *TopUpHandler) Cancel(c *gin.Context) {
	cb := h.callbackFromForm(c)
	if err := h.topUpUseCase.MarkCancelled(c.Request.Context(), cb); err != nil {
		h.logger.Warn("Top-up cancellation callback not applied", map[string]any{
			"transactionId": cb.TransactionID,
			"error":         err.Error(),
		})
	}

	c.Redirect(http.StatusFound, h.frontendPage("payment-cancelled", url.Values{
		"transactionId": {cb.TransactionID},
	}))
}

// IPN handles the gateway's server-to-server instant payment notification.
// It shares the completion path with the success callback, so a duplicate
// notification is a no-op.
func (h *TopUpHandler) IPN(c *gin.Context) {
	cb := h.callbackFromForm(c)
	topUp, err := h.topUpUseCase.Complete(c.Request.Context(), cb)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopUpResponse(topUp))
}

// CheckStatus handles the GET /api/topup/check/:transactionId endpoint
func (h *TopUpHandler) CheckStatus(c *gin.Context) {
	result, err := h.topUpUseCase.CheckStatus(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TopUpStatusResponse{
		TopUp:         dto.NewTopUpResponse(result.TopUp),
		GatewayStatus: result.GatewayStatus,
	})
}

func (h *TopUpHandler) frontendPage(page string, query url.Values) string {
	target := h.frontendURL + "/" + page
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (h *TopUpHandler) callbackFromForm(c *gin.Context) usecase.GatewayCallback {
	// value_a / value_b round-trip the account and top-up ids, but the
	// transaction id is what resolves the record; the raw payload keeps
	// everything else for the audit trail.
	cb := usecase.GatewayCallback{
		TransactionID: c.PostForm("tran_id"),
		ValidationID:  c.PostForm("val_id"),
		Status:        c.PostForm("status"),
	}

	if c.Request.PostForm != nil {
		if raw, err := json.Marshal(c.Request.PostForm); err == nil {
			cb.RawPayload = raw
		}
	}
	return cb
}
