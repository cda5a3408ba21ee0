package handler

import (
	"io"
	"net/http"

	domainerr "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles payment proof image uploads
type UploadHandler struct {
	mediaStorage gateway.MediaStorage
	maxBytes     int64
	logger       coreport.Logger
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(mediaStorage gateway.MediaStorage, maxBytes int64, logger coreport.Logger) *UploadHandler {
	return &UploadHandler{
		mediaStorage: mediaStorage,
		maxBytes:     maxBytes,
		logger:       logger,
	}
}

// Upload handles the POST /api/upload endpoint. The file arrives as the
// "image" multipart field and the hosted URL comes back for the client to
// attach to a money request.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondBindError(c, err)
		return
	}

	if fileHeader.Size > h.maxBytes {
		respondError(c, h.logger, domainerr.ErrUploadTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if int64(len(data)) > h.maxBytes {
		respondError(c, h.logger, domainerr.ErrUploadTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.mediaStorage.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}
