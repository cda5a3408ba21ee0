package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateToken),
		errors.Is(err, domainerr.ErrDuplicateAccount),
		errors.Is(err, domainerr.ErrRequestAlreadyProcessed),
		errors.Is(err, domainerr.ErrTokenAlreadyUsed),
		errors.Is(err, domainerr.ErrAlreadyAdmin):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnauthorized),
		errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domainerr.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domainerr.ErrPaymentValidationFailed):
		return http.StatusBadGateway
	case domainerr.IsValidationError(err),
		domainerr.IsInsufficientBalanceError(err),
		errors.Is(err, domainerr.ErrInsufficientAdminBalance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response. Server-side failures
// are logged with their real cause; the client sees a generic message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes a 400 for malformed request payloads
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountData),
		Message: "Invalid request payload: " + err.Error(),
	})
}
