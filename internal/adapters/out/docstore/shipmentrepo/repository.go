package shipmentrepo

import (
	"context"

	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/ports"
)

var _ ports.ShipmentRepository = (*DocumentShipmentRepository)(nil)

// DocumentShipmentRepository implements ShipmentRepository over a DocumentStore.
type DocumentShipmentRepository struct {
	store ports.DocumentStore
}

// NewDocumentShipmentRepository creates a new shipment repository.
func NewDocumentShipmentRepository(store ports.DocumentStore) *DocumentShipmentRepository {
	return &DocumentShipmentRepository{store: store}
}

// Add saves a new shipment.
func (r *DocumentShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	return r.store.CreateDocument(ctx, ports.ShipmentCollection, fromDomain(aggregate))
}

// ListRaw retrieves up to limit shipment documents without decoding them.
func (r *DocumentShipmentRepository) ListRaw(ctx context.Context, limit int) ([]ports.Document, error) {
	return r.store.GetDocuments(ctx, ports.ShipmentCollection, nil, limit)
}
