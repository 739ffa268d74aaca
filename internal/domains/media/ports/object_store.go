package ports

import (
	"context"
	"io"
)

// ObjectStore writes image blobs to object storage and returns a public URL.
type ObjectStore interface {
	Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
}
