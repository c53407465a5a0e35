package shipment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"logiflow/internal/pkg/errs"
)

const (
	// TrackingNumberPrefix starts every tracking number.
	TrackingNumberPrefix = "LGF-"

	// TrackingNumberSuffixLength is the number of random characters after the prefix.
	TrackingNumberSuffixLength = 8

	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var trackingNumberPattern = regexp.MustCompile(`^LGF-[A-Z0-9]{8}$`)

// TrackingNumber identifies a shipment publicly, e.g. "LGF-7Q2ZK91D".
//
// Numbers are drawn at random and not checked for uniqueness: with 36^8
// possible suffixes a collision is unlikely but possible.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber draws a fresh tracking number: the prefix followed by
// eight characters chosen uniformly from A-Z and 0-9.
func NewTrackingNumber() TrackingNumber {
	var b strings.Builder
	b.Grow(len(TrackingNumberPrefix) + TrackingNumberSuffixLength)
	b.WriteString(TrackingNumberPrefix)
	for range TrackingNumberSuffixLength {
		b.WriteByte(trackingNumberAlphabet[rand.IntN(len(trackingNumberAlphabet))]) //nolint:gosec // not a secret
	}
	return TrackingNumber{value: b.String()}
}

// Validate checks the "LGF-" + 8 upper-case alphanumerics format.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	if !trackingNumberPattern.MatchString(t.value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking_number",
			fmt.Errorf("%q does not match %s", t.value, trackingNumberPattern),
		)
	}
	return nil
}

// String returns the tracking number.
func (t TrackingNumber) String() string {
	return t.value
}
