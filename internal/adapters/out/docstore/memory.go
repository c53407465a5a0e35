package docstore

import (
	"context"
	"maps"
	"reflect"
	"slices"
	"sync"

	"logiflow/internal/core/ports"

	"github.com/google/uuid"
)

// MemoryStore is an in-process DocumentStore. Documents are shallow copies of
// what callers pass in, kept per collection in insertion order. It backs the
// "memory://" connection string and the tests.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]ports.Document
}

// NewMemoryStore creates an empty store reporting name as its database name.
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]ports.Document),
	}
}

// CreateDocument stores a copy of doc under a new UUID identifier.
func (s *MemoryStore) CreateDocument(ctx context.Context, collection string, doc ports.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	stored := maps.Clone(doc)
	if stored == nil {
		stored = ports.Document{}
	}
	stored[IDField] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

// GetDocuments returns copies of the matching documents.
func (s *MemoryStore) GetDocuments(
	ctx context.Context,
	collection string,
	filter ports.Filter,
	limit int,
) ([]ports.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ports.Document, 0)
	for _, doc := range s.collections[collection] {
		if limit > 0 && len(result) >= limit {
			break
		}
		if matches(doc, filter) {
			result = append(result, maps.Clone(doc))
		}
	}
	return result, nil
}

// DatabaseName implements ports.StoreInspector.
func (s *MemoryStore) DatabaseName() string {
	return s.name
}

// Ping implements ports.StoreInspector.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ListCollections implements ports.StoreInspector. Names are sorted.
func (s *MemoryStore) ListCollections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.collections)), nil
}

func matches(doc ports.Document, filter ports.Filter) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
