package store

import (
	"context"
	"sync"
)

// MemoryBlobStore is an in-memory [BlobStore] used in tests and anywhere a
// throwaway persistence surface is acceptable. It mirrors the SQLite
// repository's previous-blob retention.
type MemoryBlobStore struct {
	mu       sync.RWMutex
	blob     string
	previous string
	hasBlob  bool
}

// NewMemoryBlobStore returns an empty in-memory store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{}
}

// Load implements [BlobStore].
func (s *MemoryBlobStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasBlob {
		return "", ErrNoVault
	}
	return s.blob, nil
}

// Save implements [BlobStore].
func (s *MemoryBlobStore) Save(_ context.Context, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasBlob {
		s.previous = s.blob
	}
	s.blob = blob
	s.hasBlob = true
	return nil
}

// LoadPrevious implements [BlobStore].
func (s *MemoryBlobStore) LoadPrevious(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.previous == "" {
		return "", ErrNoVault
	}
	return s.previous, nil
}
