// Package storage persists uploaded project images through the Go CDK
// blob API backed by the local filesystem.
package storage

import (
	"context"
	"os"

	"wchub/config"
	"wchub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// blobImageStore implements the service.ImageStore interface on top of a
// gocloud blob bucket.
type blobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewImageStore opens a fileblob bucket rooted at the configured upload
// directory and registers its closer with the fx lifecycle.
func NewImageStore(lc fx.Lifecycle, cfg *config.Config) (service.ImageStore, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	bucket, err := fileblob.OpenBucket(cfg.Upload.Dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:  bucket,
		baseURL: cfg.Upload.BaseURL,
	}, nil
}

// Save writes the image bytes under the given key and returns the public
// URL the router serves the upload directory at.
func (s *blobImageStore) Save(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	writeOpts := &blob.WriterOptions{ContentType: contentType}

	if err := s.bucket.WriteAll(ctx, key, data, writeOpts); err != nil {
		return "", errors.Wrap(err, "failed to write image")
	}

	return s.baseURL + "/" + key, nil
}
