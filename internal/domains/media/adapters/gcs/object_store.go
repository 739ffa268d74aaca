package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/nexashop/storefront/internal/domains/media/ports"
)

var _ ports.ObjectStore = (*ObjectStore)(nil)

// ObjectStore writes product images to a Google Cloud Storage bucket.
// Objects are expected to be publicly readable via the bucket policy.
type ObjectStore struct {
	client *storage.Client
	bucket string
}

// New wires a GCS-backed object store. Caller owns the client lifecycle.
func New(client *storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

func (s *ObjectStore) Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("gcs object store not configured")
	}
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", objectName, err)
	}
	return publicURL(s.bucket, objectName), nil
}

// publicURL returns the public HTTPS URL for an object.
func publicURL(bucket, object string) string {
	object = strings.TrimLeft(object, "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}
