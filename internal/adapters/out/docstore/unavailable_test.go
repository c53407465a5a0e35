package docstore_test

import (
	"context"
	"errors"
	"testing"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableStore_EveryCallFails(t *testing.T) {
	ctx := context.Background()
	var store ports.DocumentStore = docstore.NewUnavailableStore(nil)

	id, err := store.CreateDocument(ctx, "quote", ports.Document{"origin": "Oslo"})
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Empty(t, id)

	docs, err := store.GetDocuments(ctx, "quote", nil, 10)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Nil(t, docs)
}

func TestUnavailableStore_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	store := docstore.NewUnavailableStore(cause)

	_, err := store.GetDocuments(context.Background(), "shipment", nil, 0)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "shipment")
}

func TestUnavailableStore_IsNotAnInspector(t *testing.T) {
	_, ok := any(docstore.NewUnavailableStore(nil)).(ports.StoreInspector)
	assert.False(t, ok)
}
