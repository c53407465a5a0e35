package queries

import (
	"context"

	"logiflow/internal/core/domain/model/tracking"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
)

// GetTrackingQueryHandler assembles the tracking history of a shipment.
type GetTrackingQueryHandler struct {
	eventRepo ports.TrackingEventRepository
}

// NewGetTrackingQueryHandler creates a handler for tracking lookups.
func NewGetTrackingQueryHandler(eventRepo ports.TrackingEventRepository) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{eventRepo: eventRepo}
}

// Handle returns every event of the tracking number.
// Events are sorted oldest first when all of them carry a timestamp and are
// left in store order otherwise. A number without events yields an
// errs.ObjectNotFoundError.
func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	ctx, span := tracer.Start(ctx, "GetTracking")
	defer span.End()
	span.SetAttributes(attribute.String("shipment.tracking_number", query.TrackingNumber()))

	events, err := h.eventRepo.FindByTrackingNumber(ctx, query.TrackingNumber())
	if err != nil {
		return GetTrackingQueryResponse{}, failSpan(span, err)
	}
	if len(events) == 0 {
		return GetTrackingQueryResponse{}, errs.NewObjectNotFoundError("tracking_number", query.TrackingNumber())
	}

	ordered := tracking.Chronological(events)
	result := GetTrackingQueryResponse{
		TrackingNumber: query.TrackingNumber(),
		Events:         make([]TrackingEventResponse, 0, len(ordered)),
	}
	for _, e := range ordered {
		item := TrackingEventResponse{
			TrackingNumber: e.TrackingNumber(),
			Status:         e.Status(),
			Location:       e.Location(),
			Note:           e.Note(),
		}
		if ts, ok := e.Timestamp(); ok {
			item.Timestamp = &ts
		}
		result.Events = append(result.Events, item)
	}

	return result, nil
}
