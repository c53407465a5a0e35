// Package ports defines the contracts between the application core and its adapters.
package ports

import "context"

// Collection names of the document store, one per persisted entity.
const (
	QuoteCollection         = "quote"
	ShipmentCollection      = "shipment"
	TrackingEventCollection = "trackingevent"
)

// DefaultListLimit is the number of documents returned when a caller does not choose a limit.
const DefaultListLimit = 50

// Document is a loosely typed stored record. Values are whatever the backend
// decodes (strings, numeric kinds, times, nested maps); callers must decode
// explicitly and tolerate missing keys. Backends expose the store-assigned
// identifier under the "_id" key.
type Document map[string]any

// Filter selects documents whose fields equal the given values.
// An empty filter matches every document of the collection.
type Filter map[string]any

// DocumentStore is a schema-less store of documents grouped into named collections.
type DocumentStore interface {
	// CreateDocument inserts doc into the collection and returns the generated identifier.
	// Fails with errs.ErrStorageUnavailable when no store is configured or reachable.
	CreateDocument(ctx context.Context, collection string, doc Document) (string, error)

	// GetDocuments returns up to limit documents of the collection matching filter,
	// in insertion order. A limit <= 0 returns every match.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
}

// StoreInspector is implemented by stores able to describe themselves for diagnostics.
type StoreInspector interface {
	// DatabaseName returns the name of the underlying database.
	DatabaseName() string

	// Ping checks that the database answers.
	Ping(ctx context.Context) error

	// ListCollections returns the names of the collections holding documents.
	ListCollections(ctx context.Context) ([]string, error)
}
