// Package trackingrepo maps tracking events to documents of the trackingevent collection and back.
package trackingrepo

import (
	"time"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/domain/model/tracking"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"
)

const (
	fieldTrackingNumber = "tracking_number"
	fieldStatus         = "status"
	fieldLocation       = "location"
	fieldNote           = "note"
	fieldTimestamp      = "timestamp"
)

// fromDomain converts an event to its stored representation.
// Absent optional values are stored as null.
func fromDomain(e *tracking.Event) ports.Document {
	doc := ports.Document{
		fieldTrackingNumber: e.TrackingNumber(),
		fieldStatus:         e.Status(),
		fieldLocation:       nil,
		fieldNote:           nil,
		fieldTimestamp:      nil,
	}
	if loc := e.Location(); loc != nil {
		doc[fieldLocation] = *loc
	}
	if note := e.Note(); note != nil {
		doc[fieldNote] = *note
	}
	if ts, ok := e.Timestamp(); ok {
		doc[fieldTimestamp] = ts
	}
	return doc
}

// toDomain rebuilds an event from a stored document.
// Missing optional strings stay absent; a missing or unparsable timestamp leaves the event without one.
func toDomain(doc ports.Document) (*tracking.Event, error) {
	trackingNumber, ok, err := docstore.String(doc, fieldTrackingNumber)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewValueIsRequiredError(fieldTrackingNumber)
	}

	status, ok, err := docstore.String(doc, fieldStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewValueIsRequiredError(fieldStatus)
	}

	location, err := docstore.OptionalString(doc, fieldLocation)
	if err != nil {
		return nil, err
	}
	note, err := docstore.OptionalString(doc, fieldNote)
	if err != nil {
		return nil, err
	}

	var timestamp *time.Time
	if ts, found := docstore.Time(doc, fieldTimestamp); found {
		timestamp = &ts
	}

	return tracking.RestoreEvent(trackingNumber, status, location, note, timestamp)
}
