package shipment

import (
	"errors"
	"strings"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created through NewShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is a booked consignment. It is the aggregate the tracking events
// of a tracking number refer to.
//
// Shipment follows these invariants:
//   - tracking number matches "LGF-" + 8 upper-case alphanumerics
//   - route and cargo are constructed value objects
//   - mode is air, sea or road
//   - shipper name and email are not blank
//   - status is one of Statuses(), Created on booking
type Shipment struct {
	trackingNumber TrackingNumber
	route          kernel.Route
	mode           kernel.Mode
	cargo          kernel.Cargo
	shipperName    string
	shipperEmail   string
	status         Status
	quoteID        *string

	isConstructed bool
}

// NewShipment books a shipment in the Created status.
//
// Parameters:
//   - trackingNumber: a number from NewTrackingNumber or ParseTrackingNumber
//   - route, mode, cargo: the freight request being booked
//   - shipperName, shipperEmail: the booking party (both required)
//
// Returns:
//   - *Shipment: the booked shipment, without a quote reference
//   - error: every violated invariant, joined
//
// Example:
//
//	route, _ := kernel.NewRoute("Hamburg", "Oslo")
//	cargo, _ := kernel.NewCargo(250, 1.5)
//	s, err := shipment.NewShipment(shipment.NewTrackingNumber(), route, kernel.ModeRoad, cargo,
//	    "Acme Freight", "ops@acme.test")
func NewShipment(
	trackingNumber TrackingNumber,
	route kernel.Route,
	mode kernel.Mode,
	cargo kernel.Cargo,
	shipperName string,
	shipperEmail string,
) (*Shipment, error) {
	s := &Shipment{
		trackingNumber: trackingNumber,
		route:          route,
		mode:           mode,
		cargo:          cargo,
		status:         Created,
		isConstructed:  true,
	}

	if err := errors.Join(
		trackingNumber.Validate(),
		route.Validate(),
		mode.Validate(),
		cargo.Validate(),
		s.setShipperName(shipperName),
		s.setShipperEmail(shipperEmail),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the shipment was created through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// TrackingNumber returns the public identifier of the shipment.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// Route returns the origin and destination.
func (s *Shipment) Route() kernel.Route {
	return s.route
}

// Mode returns the transport mode.
func (s *Shipment) Mode() kernel.Mode {
	return s.mode
}

// Cargo returns the weight and volume.
func (s *Shipment) Cargo() kernel.Cargo {
	return s.cargo
}

// ShipperName returns the booking party's name.
func (s *Shipment) ShipperName() string {
	return s.shipperName
}

// ShipperEmail returns the booking party's email.
func (s *Shipment) ShipperEmail() string {
	return s.shipperEmail
}

// Status returns the lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// QuoteID returns the id of the quote the shipment was booked from.
// Bookings do not link quotes yet, so this is always nil.
func (s *Shipment) QuoteID() *string {
	return s.quoteID
}

func (s *Shipment) setShipperName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("shipper_name")
	}
	s.shipperName = name
	return nil
}

func (s *Shipment) setShipperEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("shipper_email")
	}
	s.shipperEmail = email
	return nil
}
