package ports

import (
	"context"

	"github.com/lexluc/lexluc-platform/internal/core/domain/media"
)

// ImageStore hosts uploaded images and serves them from a public URL.
type ImageStore interface {
	Put(ctx context.Context, publicID, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, publicID string) error
}

type UploadService interface {
	UploadImage(ctx context.Context, kind media.Kind, filename, contentType string, data []byte) (*media.Image, error)
	DeleteImage(ctx context.Context, publicID string) error
}
