package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/error"
	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	appconfig "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/infrastructure/config"
)

// allowedContentTypes are the image types accepted as payment proof
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImgBBStorage implements the MediaStorage interface against the imgbb
// image hosting API. Uploaded proof images are hosted externally; only the
// returned URL is stored.
type ImgBBStorage struct {
	apiKey     string
	uploadURL  string
	maxBytes   int64
	httpClient *http.Client
	logger     coreport.Logger
}

// NewImgBBStorage creates a new imgbb-backed media storage
func NewImgBBStorage(cfg appconfig.MediaConfig, logger coreport.Logger) *ImgBBStorage {
	return &ImgBBStorage{
		apiKey:     cfg.APIKey,
		uploadURL:  cfg.UploadURL,
		maxBytes:   cfg.MaxUploadBytes,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// uploadResponse is the subset of the imgbb answer we use
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload sends the image to the hosting service and returns its public URL
func (s *ImgBBStorage) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", errs.ErrUploadTooLarge
	}
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", errs.ErrUnsupportedMediaType
	}

	form := url.Values{}
	form.Set("key", s.apiKey)
	form.Set("name", filename)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Media upload request failed", map[string]any{
			"filename": filename,
			"error":    err.Error(),
		})
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var uploadResp uploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !uploadResp.Success || uploadResp.Data.URL == "" {
		s.logger.Warn("Media host rejected upload", map[string]any{
			"filename":   filename,
			"statusCode": resp.StatusCode,
		})
		return "", fmt.Errorf("media host rejected upload (status %d)", resp.StatusCode)
	}

	return uploadResp.Data.URL, nil
}
