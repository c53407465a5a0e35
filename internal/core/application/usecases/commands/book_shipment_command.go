package commands

import (
	"errors"
	"strings"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/pkg/errs"
	"logiflow/internal/pkg/guard"
)

var ErrBookShipmentCommandIsNotConstructed = errors.New(
	"BookShipmentCommand must be created via NewBookShipmentCommand constructor",
)

// BookShipmentCommand represents a request to book a shipment.
// It carries the same freight fields as a quote request plus the booking party.
//
// Example:
//
//	cmd, err := NewBookShipmentCommand("Hamburg", "Oslo", "road", 250, 1.5, "Acme Freight", "ops@acme.test")
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	s, err := handler.Handle(ctx, cmd)
//	fmt.Println(s.TrackingNumber()) // LGF-XXXXXXXX
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	route        kernel.Route
	mode         kernel.Mode
	cargo        kernel.Cargo
	shipperName  string
	shipperEmail string

	guard guard.ConstructorGuard
}

// NewBookShipmentCommand creates a command to book a shipment.
// Validates the freight fields like NewCreateQuoteCommand and requires
// non-blank shipper name and email.
func NewBookShipmentCommand(
	origin, destination, mode string,
	weightKg, volumeCbm float64,
	shipperName, shipperEmail string,
) (BookShipmentCommand, error) {
	cmd := BookShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	route, routeErr := kernel.NewRoute(origin, destination)
	parsedMode, modeErr := kernel.ParseMode(mode)
	cargo, cargoErr := kernel.NewCargo(weightKg, volumeCbm)

	if err := errors.Join(
		routeErr,
		modeErr,
		cargoErr,
		cmd.setShipperName(shipperName),
		cmd.setShipperEmail(shipperEmail),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	cmd.route = route
	cmd.mode = parsedMode
	cmd.cargo = cargo
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

// Route returns origin and destination.
func (c BookShipmentCommand) Route() kernel.Route {
	return c.route
}

// Mode returns the transport mode.
func (c BookShipmentCommand) Mode() kernel.Mode {
	return c.mode
}

// Cargo returns weight and volume.
func (c BookShipmentCommand) Cargo() kernel.Cargo {
	return c.cargo
}

// ShipperName returns the booking party's name.
func (c BookShipmentCommand) ShipperName() string {
	return c.shipperName
}

// ShipperEmail returns the booking party's contact email.
func (c BookShipmentCommand) ShipperEmail() string {
	return c.shipperEmail
}

func (c *BookShipmentCommand) setShipperName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("shipper_name")
	}

	c.shipperName = name
	return nil
}

func (c *BookShipmentCommand) setShipperEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("shipper_email")
	}

	c.shipperEmail = email
	return nil
}
