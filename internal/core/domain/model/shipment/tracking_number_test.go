package shipment_test

import (
	"regexp"
	"strings"
	"testing"

	"logiflow/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingNumberFormat = regexp.MustCompile(`^LGF-[A-Z0-9]{8}$`)

func TestNewTrackingNumber_Format(t *testing.T) {
	for range 1000 {
		tn := shipment.NewTrackingNumber()

		require.Regexp(t, trackingNumberFormat, tn.String())
		require.NoError(t, tn.Validate())
	}
}

func TestNewTrackingNumber_UsesWholeAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for range 2000 {
		suffix := strings.TrimPrefix(shipment.NewTrackingNumber().String(), shipment.TrackingNumberPrefix)
		for _, r := range suffix {
			seen[r] = true
		}
	}

	// 16000 draws over 36 symbols: missing one is practically impossible.
	assert.Len(t, seen, 36)
}

func TestTrackingNumber_Validate_ZeroValue(t *testing.T) {
	var tn shipment.TrackingNumber

	err := tn.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracking_number")
}
