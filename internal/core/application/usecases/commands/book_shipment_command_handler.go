package commands

import (
	"context"
	"log/slog"
	"time"

	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/domain/model/tracking"
	"logiflow/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// InitialEventStatus is the status of the tracking event written when a shipment is booked.
const InitialEventStatus = "created"

// BookShipmentCommandHandler books shipments: it assigns a tracking number,
// stores the shipment and records its first tracking event at the origin.
//
// Example:
//
//	handler := NewBookShipmentCommandHandler(shipmentRepo, eventRepo, logger)
//	cmd, _ := NewBookShipmentCommand("Hamburg", "Oslo", "road", 250, 1.5, "Acme Freight", "ops@acme.test")
//
//	s, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// GET /api/track/<s.TrackingNumber()> now returns one "created" event at Hamburg
type BookShipmentCommandHandler struct {
	shipmentRepo ports.ShipmentRepository
	eventRepo    ports.TrackingEventRepository
	newNumber    func() shipment.TrackingNumber
	now          func() time.Time
	logger       *slog.Logger
}

// BookShipmentOption customizes a BookShipmentCommandHandler.
type BookShipmentOption func(*BookShipmentCommandHandler)

// WithTrackingNumberGenerator replaces shipment.NewTrackingNumber.
func WithTrackingNumberGenerator(generate func() shipment.TrackingNumber) BookShipmentOption {
	return func(h *BookShipmentCommandHandler) {
		h.newNumber = generate
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(now func() time.Time) BookShipmentOption {
	return func(h *BookShipmentCommandHandler) {
		h.now = now
	}
}

// NewBookShipmentCommandHandler creates a handler for shipment booking.
func NewBookShipmentCommandHandler(
	shipmentRepo ports.ShipmentRepository,
	eventRepo ports.TrackingEventRepository,
	logger *slog.Logger,
	opts ...BookShipmentOption,
) BookShipmentCommandHandler {
	h := BookShipmentCommandHandler{
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		newNumber:    shipment.NewTrackingNumber,
		now:          time.Now,
		logger:       logger.With("component", "book-shipment-handler"),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle books the shipment described by cmd.
//
// The shipment is written before its initial event. If the event write fails
// the shipment stays stored without history; the failure is logged with the
// tracking number and returned.
func (h BookShipmentCommandHandler) Handle(ctx context.Context, cmd BookShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "BookShipment")
	defer span.End()

	number := h.newNumber()
	span.SetAttributes(attribute.String("shipment.tracking_number", number.String()))

	s, err := shipment.NewShipment(number, cmd.Route(), cmd.Mode(), cmd.Cargo(), cmd.ShipperName(), cmd.ShipperEmail())
	if err != nil {
		return nil, failSpan(span, err)
	}

	origin := s.Route().Origin()
	event, err := tracking.NewEvent(number.String(), InitialEventStatus, &origin, nil, h.now())
	if err != nil {
		return nil, failSpan(span, err)
	}

	shipmentID, err := h.shipmentRepo.Add(ctx, s)
	if err != nil {
		return nil, failSpan(span, err)
	}

	if _, err = h.eventRepo.Add(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "shipment stored without initial tracking event",
			"tracking_number", number.String(),
			"shipment_id", shipmentID,
			"error", err,
		)
		return nil, failSpan(span, err)
	}

	h.logger.InfoContext(ctx, "shipment booked",
		"tracking_number", number.String(),
		"shipment_id", shipmentID,
		"mode", s.Mode().String(),
	)
	return s, nil
}
