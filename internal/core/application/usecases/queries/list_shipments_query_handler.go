package queries

import (
	"context"

	"logiflow/internal/core/ports"
)

// ListShipmentsQueryHandler returns shipments exactly as stored, store identifier included.
type ListShipmentsQueryHandler struct {
	shipmentRepo ports.ShipmentRepository
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
func NewListShipmentsQueryHandler(shipmentRepo ports.ShipmentRepository) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{shipmentRepo: shipmentRepo}
}

// Handle returns up to query.Limit() raw shipment documents.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ports.Document, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ListShipments")
	defer span.End()

	docs, err := h.shipmentRepo.ListRaw(ctx, query.Limit())
	if err != nil {
		return nil, failSpan(span, err)
	}
	return docs, nil
}
