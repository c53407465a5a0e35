package kernel

import (
	"fmt"

	"logiflow/internal/pkg/errs"
)

// Mode is the transport method of a freight request. It drives both the
// price multiplier and the estimated transit time of a quote.
type Mode string

const (
	// ModeAir is air freight: fastest and most expensive.
	ModeAir Mode = "air"

	// ModeSea is ocean freight. It is the default mode when none is given.
	ModeSea Mode = "sea"

	// ModeRoad is truck freight.
	ModeRoad Mode = "road"

	// DefaultMode is used when a request leaves the mode empty.
	DefaultMode = ModeSea
)

// Modes lists every supported transport mode.
func Modes() []Mode {
	return []Mode{ModeAir, ModeSea, ModeRoad}
}

// ParseMode converts raw input into a Mode.
//
// An empty string yields DefaultMode. Any other value must be one of
// "air", "sea" or "road".
//
// Example:
//
//	mode, err := kernel.ParseMode("air")
//	if err != nil {
//	    // reject the request
//	}
func ParseMode(raw string) (Mode, error) {
	if raw == "" {
		return DefaultMode, nil
	}

	mode := Mode(raw)
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// Validate checks that the mode is one of the supported transport modes.
func (m Mode) Validate() error {
	switch m {
	case ModeAir, ModeSea, ModeRoad:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"mode",
			fmt.Errorf("%q is not one of air, sea, road", string(m)),
		)
	}
}

// String returns the wire representation of the mode.
func (m Mode) String() string {
	return string(m)
}
