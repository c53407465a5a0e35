package quote

import (
	"errors"
	"fmt"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/core/domain/services"
	"logiflow/internal/pkg/errs"
)

// ErrQuoteIsNotConstructed is returned when a Quote was not created through NewQuote or RestoreQuote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

// Pricer turns a mode and a cargo into a price and a transit time.
// services.QuoteEngine is the production implementation.
type Pricer interface {
	Compute(mode kernel.Mode, cargo kernel.Cargo) (services.Estimate, error)
}

// Quote is the offer made for moving a cargo along a route with a given mode.
// Quotes are immutable once created.
type Quote struct {
	route    kernel.Route
	mode     kernel.Mode
	cargo    kernel.Cargo
	priceUSD float64
	etaDays  int

	isConstructed bool
}

// NewQuote prices a freight request and returns the resulting Quote.
//
// Parameters:
//   - route: origin and destination (must be constructed)
//   - mode: transport mode (must be air, sea or road)
//   - cargo: weight and volume (must be constructed)
//   - pricer: computes price and ETA; its result is the only source of both
//
// Returns:
//   - *Quote: the priced quote
//   - error: validation errors of the inputs, or the pricer's error
//
// Example:
//
//	route, _ := kernel.NewRoute("Shanghai", "Rotterdam")
//	cargo, _ := kernel.NewCargo(10, 2)
//	q, err := quote.NewQuote(route, kernel.ModeSea, cargo, services.NewQuoteEngine())
//	// q.PriceUSD() == 98.0, q.ETADays() == 21
func NewQuote(route kernel.Route, mode kernel.Mode, cargo kernel.Cargo, pricer Pricer) (*Quote, error) {
	if err := errors.Join(route.Validate(), mode.Validate(), cargo.Validate()); err != nil {
		return nil, err
	}

	estimate, err := pricer.Compute(mode, cargo)
	if err != nil {
		return nil, err
	}

	return RestoreQuote(route, mode, cargo, estimate.PriceUSD, estimate.ETADays)
}

// RestoreQuote rebuilds a Quote from persisted values.
// All invariants of NewQuote are checked again, so corrupt records are rejected.
func RestoreQuote(route kernel.Route, mode kernel.Mode, cargo kernel.Cargo, priceUSD float64, etaDays int) (*Quote, error) {
	q := &Quote{
		route:         route,
		mode:          mode,
		cargo:         cargo,
		isConstructed: true,
	}

	if err := errors.Join(
		route.Validate(),
		mode.Validate(),
		cargo.Validate(),
		q.setPriceUSD(priceUSD),
		q.setETADays(etaDays),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate ensures the quote was created through a constructor.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// Route returns the origin and destination.
func (q *Quote) Route() kernel.Route {
	return q.route
}

// Mode returns the transport mode.
func (q *Quote) Mode() kernel.Mode {
	return q.mode
}

// Cargo returns the weight and volume.
func (q *Quote) Cargo() kernel.Cargo {
	return q.cargo
}

// PriceUSD returns the quoted price in US dollars.
func (q *Quote) PriceUSD() float64 {
	return q.priceUSD
}

// ETADays returns the estimated transit time in days.
func (q *Quote) ETADays() int {
	return q.etaDays
}

func (q *Quote) setPriceUSD(priceUSD float64) error {
	if !(priceUSD > 0) {
		return errs.NewValueIsInvalidErrorWithCause("price_usd", fmt.Errorf("%v is not greater than 0", priceUSD))
	}
	q.priceUSD = priceUSD
	return nil
}

func (q *Quote) setETADays(etaDays int) error {
	if etaDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("eta_days", fmt.Errorf("%d is not greater than 0", etaDays))
	}
	q.etaDays = etaDays
	return nil
}
