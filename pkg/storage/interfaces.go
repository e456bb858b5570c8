package storage

import (
	"context"
	"io"
)

type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
