package queries

import (
	"errors"
	"strings"
	"time"

	"logiflow/internal/pkg/errs"
	"logiflow/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the tracking history of a shipment.
// The tracking number is matched exactly; it is not checked against the
// LGF- format so that histories of any stored number can be read.
//
// Example:
//
//	query, _ := NewGetTrackingQuery("LGF-7Q2ZK91D")
//	history, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking number
//	}
type GetTrackingQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a tracking query. trackingNumber must not be blank.
func NewGetTrackingQuery(trackingNumber string) (GetTrackingQuery, error) {
	if strings.TrimSpace(trackingNumber) == "" {
		return GetTrackingQuery{}, errs.NewValueIsRequiredError("tracking_number")
	}

	return GetTrackingQuery{trackingNumber: trackingNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetTrackingQuery) TrackingNumber() string {
	return q.trackingNumber
}

// GetTrackingQueryResponse is the tracking history of one shipment.
type GetTrackingQueryResponse struct {
	TrackingNumber string
	Events         []TrackingEventResponse
}

// TrackingEventResponse is the read model of a tracking event.
// Timestamp is nil when the stored event has none.
type TrackingEventResponse struct {
	TrackingNumber string
	Status         string
	Location       *string
	Note           *string
	Timestamp      *time.Time
}
