package ports

import (
	"context"

	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/domain/model/tracking"
)

// QuoteRepository persists priced quotes.
type QuoteRepository interface {
	// Add stores the quote and returns its store identifier.
	Add(ctx context.Context, aggregate *quote.Quote) (string, error)

	// List returns up to limit stored quotes rebuilt as aggregates.
	// Records that cannot be rebuilt are skipped.
	List(ctx context.Context, limit int) ([]*quote.Quote, error)
}

// ShipmentRepository persists booked shipments.
type ShipmentRepository interface {
	// Add stores the shipment and returns its store identifier.
	Add(ctx context.Context, aggregate *shipment.Shipment) (string, error)

	// ListRaw returns up to limit stored shipment documents exactly as the store returns them.
	ListRaw(ctx context.Context, limit int) ([]Document, error)
}

// TrackingEventRepository persists tracking events.
type TrackingEventRepository interface {
	// Add stores the event and returns its store identifier.
	Add(ctx context.Context, event *tracking.Event) (string, error)

	// FindByTrackingNumber returns every stored event of the tracking number in store order.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) ([]*tracking.Event, error)
}
