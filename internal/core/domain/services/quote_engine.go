package services

import (
	"math"

	"logiflow/internal/core/domain/model/kernel"
)

const (
	// BasePriceUSD is the flat handling fee added to every quote.
	BasePriceUSD = 50.0

	// WeightRateUSDPerKg is charged per kilogram before the mode multiplier.
	WeightRateUSDPerKg = 0.8

	// VolumeRateUSDPerCbm is charged per cubic metre before the mode multiplier.
	VolumeRateUSDPerCbm = 20.0

	// fallbackMultiplier and fallbackETADays apply to modes outside the tariff table.
	fallbackMultiplier = 1.0
	fallbackETADays    = 14
)

// tariff is the per-mode part of the pricing table.
type tariff struct {
	multiplier float64
	etaDays    int
}

func tariffs() map[kernel.Mode]tariff {
	return map[kernel.Mode]tariff{
		kernel.ModeSea:  {multiplier: 1.0, etaDays: 21},
		kernel.ModeRoad: {multiplier: 1.2, etaDays: 7},
		kernel.ModeAir:  {multiplier: 2.0, etaDays: 3},
	}
}

// Estimate is the outcome of pricing a freight request.
type Estimate struct {
	// PriceUSD is rounded to cents, exact half-cent ties to the even cent.
	PriceUSD float64

	// ETADays is the estimated transit time in whole days.
	ETADays int
}

// QuoteEngine prices freight requests.
//
// The formula is:
//
//	price = round(50 + multiplier(mode) × (weight_kg × 0.8 + volume_cbm × 20), 2)
//	eta   = sea 21, road 7, air 3 days
//
// with multipliers sea 1.0, road 1.2 and air 2.0. A mode outside the table is
// priced with multiplier 1.0 and an ETA of 14 days. Exact half-cent ties round
// to the even cent. Origin and destination do not influence the result. The
// engine holds no state and never performs I/O, so the same input always
// yields the same Estimate.
//
// Example:
//
//	cargo, _ := kernel.NewCargo(10, 2)
//	estimate, err := services.NewQuoteEngine().Compute(kernel.ModeSea, cargo)
//	// estimate.PriceUSD == 98.0, estimate.ETADays == 21
type QuoteEngine struct{}

// NewQuoteEngine creates a QuoteEngine.
func NewQuoteEngine() QuoteEngine {
	return QuoteEngine{}
}

// Compute prices the cargo for the given mode.
//
// Returns an error only when cargo was not built through kernel.NewCargo;
// weight and volume positivity is guaranteed by the Cargo constructor.
func (QuoteEngine) Compute(mode kernel.Mode, cargo kernel.Cargo) (Estimate, error) {
	if err := cargo.Validate(); err != nil {
		return Estimate{}, err
	}

	t, ok := tariffs()[mode]
	if !ok {
		t = tariff{multiplier: fallbackMultiplier, etaDays: fallbackETADays}
	}

	raw := BasePriceUSD + t.multiplier*(cargo.WeightKg()*WeightRateUSDPerKg+cargo.VolumeCbm()*VolumeRateUSDPerCbm)

	return Estimate{
		PriceUSD: roundCents(raw),
		ETADays:  t.etaDays,
	}, nil
}

func roundCents(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
