package docstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

// Get returns a copy of the document stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return doc.Clone(), nil
}

// Set stores a copy of doc under key.
func (m *MemoryStore) Set(_ context.Context, key string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[key] = doc.Clone()
	return nil
}
