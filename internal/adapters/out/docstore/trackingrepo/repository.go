package trackingrepo

import (
	"context"
	"log/slog"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/domain/model/tracking"
	"logiflow/internal/core/ports"
)

var _ ports.TrackingEventRepository = (*DocumentTrackingEventRepository)(nil)

// DocumentTrackingEventRepository implements TrackingEventRepository over a DocumentStore.
type DocumentTrackingEventRepository struct {
	store  ports.DocumentStore
	logger *slog.Logger
}

// NewDocumentTrackingEventRepository creates a new tracking event repository.
func NewDocumentTrackingEventRepository(
	store ports.DocumentStore,
	logger *slog.Logger,
) *DocumentTrackingEventRepository {
	return &DocumentTrackingEventRepository{
		store:  store,
		logger: logger.With("component", "tracking-event-repository"),
	}
}

// Add saves a new tracking event.
func (r *DocumentTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) (string, error) {
	if err := event.Validate(); err != nil {
		return "", err
	}

	return r.store.CreateDocument(ctx, ports.TrackingEventCollection, fromDomain(event))
}

// FindByTrackingNumber retrieves every event of the tracking number in store order.
// Documents that do not decode into an event are skipped.
func (r *DocumentTrackingEventRepository) FindByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) ([]*tracking.Event, error) {
	docs, err := r.store.GetDocuments(
		ctx,
		ports.TrackingEventCollection,
		ports.Filter{fieldTrackingNumber: trackingNumber},
		0,
	)
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(docs))
	for _, doc := range docs {
		e, decodeErr := toDomain(doc)
		if decodeErr != nil {
			r.logger.WarnContext(ctx, "skipping undecodable tracking event",
				"id", doc[docstore.IDField],
				"error", decodeErr,
			)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}
