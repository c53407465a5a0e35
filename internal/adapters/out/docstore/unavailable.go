package docstore

import (
	"context"

	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"
)

// IDField is the document key holding the store-assigned identifier.
const IDField = "_id"

// UnavailableStore is the DocumentStore of degraded mode: no connection
// string was configured, or the store could not be reached at startup.
// Every call fails with errs.ErrStorageUnavailable.
type UnavailableStore struct {
	cause error
}

// NewUnavailableStore creates a degraded store. cause may be nil when no store was configured.
func NewUnavailableStore(cause error) UnavailableStore {
	return UnavailableStore{cause: cause}
}

// CreateDocument always fails.
func (s UnavailableStore) CreateDocument(_ context.Context, collection string, _ ports.Document) (string, error) {
	return "", s.err("create document in " + collection)
}

// GetDocuments always fails.
func (s UnavailableStore) GetDocuments(_ context.Context, collection string, _ ports.Filter, _ int) ([]ports.Document, error) {
	return nil, s.err("get documents from " + collection)
}

func (s UnavailableStore) err(operation string) error {
	if s.cause == nil {
		return errs.NewStorageUnavailableError(operation)
	}
	return errs.NewStorageUnavailableErrorWithCause(operation, s.cause)
}
