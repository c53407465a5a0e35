// Package quoterepo maps quote aggregates to documents of the quote collection and back.
package quoterepo

import (
	"errors"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/core/domain/model/quote"
	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"
)

// Document keys of a stored quote.
const (
	fieldOrigin      = "origin"
	fieldDestination = "destination"
	fieldMode        = "mode"
	fieldWeightKg    = "weight_kg"
	fieldVolumeCbm   = "volume_cbm"
	fieldPriceUSD    = "price_usd"
	fieldETADays     = "eta_days"
)

// fromDomain converts a quote aggregate to its stored representation.
func fromDomain(q *quote.Quote) ports.Document {
	return ports.Document{
		fieldOrigin:      q.Route().Origin(),
		fieldDestination: q.Route().Destination(),
		fieldMode:        q.Mode().String(),
		fieldWeightKg:    q.Cargo().WeightKg(),
		fieldVolumeCbm:   q.Cargo().VolumeCbm(),
		fieldPriceUSD:    q.PriceUSD(),
		fieldETADays:     q.ETADays(),
	}
}

// toDomain rebuilds a quote from a stored document.
// A missing mode defaults to sea; every other field is mandatory.
func toDomain(doc ports.Document) (*quote.Quote, error) {
	origin, err := requiredString(doc, fieldOrigin)
	if err != nil {
		return nil, err
	}
	destination, err := requiredString(doc, fieldDestination)
	if err != nil {
		return nil, err
	}

	rawMode, _, err := docstore.String(doc, fieldMode)
	if err != nil {
		return nil, err
	}
	mode, err := kernel.ParseMode(rawMode)
	if err != nil {
		return nil, err
	}

	weight, err := requiredFloat(doc, fieldWeightKg)
	if err != nil {
		return nil, err
	}
	volume, err := requiredFloat(doc, fieldVolumeCbm)
	if err != nil {
		return nil, err
	}
	price, err := requiredFloat(doc, fieldPriceUSD)
	if err != nil {
		return nil, err
	}
	eta, ok, err := docstore.Int(doc, fieldETADays)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewValueIsRequiredError(fieldETADays)
	}

	route, routeErr := kernel.NewRoute(origin, destination)
	cargo, cargoErr := kernel.NewCargo(weight, volume)
	if err = errors.Join(routeErr, cargoErr); err != nil {
		return nil, err
	}

	return quote.RestoreQuote(route, mode, cargo, price, eta)
}

func requiredString(doc ports.Document, key string) (string, error) {
	value, ok, err := docstore.String(doc, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.NewValueIsRequiredError(key)
	}
	return value, nil
}

func requiredFloat(doc ports.Document, key string) (float64, error) {
	value, ok, err := docstore.Float(doc, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errs.NewValueIsRequiredError(key)
	}
	return value, nil
}
