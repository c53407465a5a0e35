package shipment

import (
	"fmt"

	"logiflow/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment. Values are the lower-case
// strings used on the wire and in stored documents.
//
// Lifecycle:
//
//	created -> booked -> in_transit -> customs -> out_for_delivery -> delivered
//
// No operation moves a shipment past Created yet.
type Status string

const (
	Created        Status = "created"
	Booked         Status = "booked"
	InTransit      Status = "in_transit"
	Customs        Status = "customs"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Booked, InTransit, Customs, OutForDelivery, Delivered}
}

// Validate checks that the status is one of Statuses().
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
