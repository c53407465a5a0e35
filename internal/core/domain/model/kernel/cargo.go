package kernel

import (
	"errors"
	"fmt"
	"math"

	"logiflow/internal/pkg/errs"
	"logiflow/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when a Cargo was not created through NewCargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Cargo is the chargeable size of a consignment: gross weight in kilograms
// and volume in cubic metres. Both must be finite and strictly positive.
//
// Example:
//
//	cargo, err := kernel.NewCargo(120.5, 2.4)
//	if err != nil {
//	    // weight or volume rejected
//	}
type Cargo struct { //nolint:recvcheck //using for validation
	weightKg  float64
	volumeCbm float64

	guard guard.ConstructorGuard
}

// NewCargo creates a Cargo from a weight (kg) and a volume (cbm).
// Returns the joined validation errors when either value is not a
// finite number greater than zero.
func NewCargo(weightKg, volumeCbm float64) (Cargo, error) {
	cargo := Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setWeightKg(weightKg),
		cargo.setVolumeCbm(volumeCbm),
	); err != nil {
		return Cargo{}, err
	}

	return cargo, nil
}

// Validate ensures the cargo was created through NewCargo.
func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// WeightKg returns the gross weight in kilograms.
func (c Cargo) WeightKg() float64 {
	return c.weightKg
}

// VolumeCbm returns the volume in cubic metres.
func (c Cargo) VolumeCbm() float64 {
	return c.volumeCbm
}

func (c *Cargo) setWeightKg(weightKg float64) error {
	if err := requirePositive("weight_kg", weightKg); err != nil {
		return err
	}
	c.weightKg = weightKg
	return nil
}

func (c *Cargo) setVolumeCbm(volumeCbm float64) error {
	if err := requirePositive("volume_cbm", volumeCbm); err != nil {
		return err
	}
	c.volumeCbm = volumeCbm
	return nil
}

func requirePositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}
