package gateway

import (
	"context"
)

// MediaStorage abstracts the external image host that serves payment evidence.
// The returned URL is treated as an opaque string by the rest of the system.
type MediaStorage interface {
	// Upload stores an image and returns its stable public URL
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
