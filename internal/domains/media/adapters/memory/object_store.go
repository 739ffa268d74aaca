package memory

import (
	"context"
	"io"
	"sync"

	"github.com/nexashop/storefront/internal/domains/media/ports"
)

// ObjectStore keeps uploaded blobs in process memory, for tests and dev runs
// without a storage bucket.
type ObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: make(map[string][]byte)}
}

func (s *ObjectStore) Put(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return "memory://" + objectName, nil
}

// Get returns a stored blob, for test assertions.
func (s *ObjectStore) Get(objectName string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[objectName]
	return data, ok
}

// Len reports how many objects were stored.
func (s *ObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ ports.ObjectStore = (*ObjectStore)(nil)
