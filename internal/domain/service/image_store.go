package service

import "context"

// ImageStore defines the interface for persisting uploaded project images.
// Implementations return the public URL under which the image is served.
type ImageStore interface {
	// Save writes the image bytes under the given key and returns its URL.
	Save(ctx context.Context, key string, contentType string, data []byte) (string, error)
}
