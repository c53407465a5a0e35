package commands

import (
	"errors"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/pkg/guard"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// CreateQuoteCommand represents a request to price a freight movement.
//
// Example:
//
//	cmd, err := NewCreateQuoteCommand("Shanghai", "Rotterdam", "sea", 10, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	q, err := handler.Handle(ctx, cmd)
//	// q.PriceUSD() == 98.0, q.ETADays() == 21
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	route kernel.Route
	mode  kernel.Mode
	cargo kernel.Cargo

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand creates a command to price a freight request.
// An empty mode means sea. Every invalid field is reported, joined.
func NewCreateQuoteCommand(
	origin, destination, mode string,
	weightKg, volumeCbm float64,
) (CreateQuoteCommand, error) {
	cmd := CreateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoute(origin, destination),
		cmd.setMode(mode),
		cmd.setCargo(weightKg, volumeCbm),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// Route returns origin and destination.
func (c CreateQuoteCommand) Route() kernel.Route {
	return c.route
}

// Mode returns the transport mode.
func (c CreateQuoteCommand) Mode() kernel.Mode {
	return c.mode
}

// Cargo returns weight and volume.
func (c CreateQuoteCommand) Cargo() kernel.Cargo {
	return c.cargo
}

func (c *CreateQuoteCommand) setRoute(origin, destination string) error {
	route, err := kernel.NewRoute(origin, destination)
	if err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateQuoteCommand) setMode(raw string) error {
	mode, err := kernel.ParseMode(raw)
	if err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateQuoteCommand) setCargo(weightKg, volumeCbm float64) error {
	cargo, err := kernel.NewCargo(weightKg, volumeCbm)
	if err != nil {
		return err
	}

	c.cargo = cargo
	return nil
}
