package queries

import (
	"math"

	"logiflow/internal/pkg/errs"
)

// validateLimit rejects page sizes below one.
func validateLimit(limit int) error {
	if limit < 1 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt)
	}
	return nil
}
