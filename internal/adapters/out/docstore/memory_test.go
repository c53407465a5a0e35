package docstore_test

import (
	"context"
	"testing"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateDocument_AssignsID(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore("logiflow")

	doc := ports.Document{"origin": "Oslo"}
	id, err := store.CreateDocument(ctx, "quote", doc)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(id)
	require.NoError(t, parseErr)
	assert.NotContains(t, doc, docstore.IDField, "caller's document must not be modified")

	docs, err := store.GetDocuments(ctx, "quote", nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0][docstore.IDField])
	assert.Equal(t, "Oslo", docs[0]["origin"])
}

func TestMemoryStore_GetDocuments_FilterLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore("logiflow")

	for i, tn := range []string{"A", "B", "A", "A"} {
		_, err := store.CreateDocument(ctx, "trackingevent", ports.Document{"tracking_number": tn, "seq": i})
		require.NoError(t, err)
	}

	all, err := store.GetDocuments(ctx, "trackingevent", ports.Filter{"tracking_number": "A"}, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0]["seq"])
	assert.Equal(t, 2, all[1]["seq"])
	assert.Equal(t, 3, all[2]["seq"])

	limited, err := store.GetDocuments(ctx, "trackingevent", ports.Filter{"tracking_number": "A"}, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := store.GetDocuments(ctx, "trackingevent", ports.Filter{"tracking_number": "C"}, 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	empty, err := store.GetDocuments(ctx, "missing", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_ReturnedDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore("logiflow")

	_, err := store.CreateDocument(ctx, "shipment", ports.Document{"status": "created"})
	require.NoError(t, err)

	docs, err := store.GetDocuments(ctx, "shipment", nil, 0)
	require.NoError(t, err)
	docs[0]["status"] = "delivered"

	again, err := store.GetDocuments(ctx, "shipment", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "created", again[0]["status"])
}

func TestMemoryStore_Inspector(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore("freight")

	var inspector ports.StoreInspector = store
	assert.Equal(t, "freight", inspector.DatabaseName())
	require.NoError(t, inspector.Ping(ctx))

	_, err := store.CreateDocument(ctx, "shipment", ports.Document{})
	require.NoError(t, err)
	_, err = store.CreateDocument(ctx, "quote", ports.Document{})
	require.NoError(t, err)

	names, err := inspector.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"quote", "shipment"}, names)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := docstore.NewMemoryStore("logiflow")
	_, err := store.CreateDocument(ctx, "quote", ports.Document{})
	require.ErrorIs(t, err, context.Canceled)
}
