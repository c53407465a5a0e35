package tracking

import (
	"errors"
	"strings"
	"time"

	"logiflow/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event was not created through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event records something that happened to a shipment at a point in time.
//
// Invariants:
//   - tracking number and status are not blank; status is free-form text
//   - location and note are optional
//   - events created by NewEvent always carry a UTC timestamp; restored
//     events may lack one when the stored record has none
type Event struct {
	trackingNumber string
	status         string
	location       *string
	note           *string
	timestamp      *time.Time

	isConstructed bool
}

// NewEvent creates an event stamped with occurredAt converted to UTC.
// A zero occurredAt stamps the event with the current time.
//
// Example:
//
//	origin := "Hamburg"
//	e, err := tracking.NewEvent("LGF-7Q2ZK91D", "created", &origin, nil, time.Time{})
func NewEvent(trackingNumber, status string, location, note *string, occurredAt time.Time) (*Event, error) {
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	ts := occurredAt.UTC()
	return RestoreEvent(trackingNumber, status, location, note, &ts)
}

// RestoreEvent rebuilds an event from stored values. timestamp may be nil.
func RestoreEvent(trackingNumber, status string, location, note *string, timestamp *time.Time) (*Event, error) {
	e := &Event{
		location:      location,
		note:          note,
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setTrackingNumber(trackingNumber),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// TrackingNumber returns the tracking number the event belongs to.
func (e *Event) TrackingNumber() string {
	return e.trackingNumber
}

// Status returns the free-form status text.
func (e *Event) Status() string {
	return e.status
}

// Location returns where the event happened, or nil.
func (e *Event) Location() *string {
	return e.location
}

// Note returns the free-form note, or nil.
func (e *Event) Note() *string {
	return e.note
}

// Timestamp returns when the event happened and whether that is known.
func (e *Event) Timestamp() (time.Time, bool) {
	if e.timestamp == nil {
		return time.Time{}, false
	}
	return *e.timestamp, true
}

func (e *Event) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	e.trackingNumber = trackingNumber
	return nil
}

func (e *Event) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	e.status = status
	return nil
}
