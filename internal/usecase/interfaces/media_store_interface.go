package interfaces

import (
	"context"
	"io"
)

// IMediaStore stores issue-evidence images and returns their public URL.
type IMediaStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
