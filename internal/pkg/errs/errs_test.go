package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"logiflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("tracking_number", "LGF-7Q2ZK91D")

	assert.Equal(t, "object not found: tracking_number LGF-7Q2ZK91D", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, errs.IsValidation(err))
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("limit", 0, 1, 100)

	assert.Equal(t, "value is out of range: limit is 0, min value is 1, max value is 100", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, errs.IsValidation(err))
}

func TestValueIsOutOfRangeError_FlattensMultilineValues(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("origin", "Oslo\nBergen", "A", "Z")

	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "Oslo Bergen")
}

func TestValueIsInvalidError_KeepsCauseInMessage(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("mode", errors.New(`"rail" is not one of air, sea, road`))

	assert.Equal(t, `value is invalid: mode (cause: "rail" is not one of air, sea, road)`, err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestIsValidation_JoinedConstructorErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("origin"),
		errs.NewValueIsInvalidErrorWithCause("weight_kg", errors.New("-1 is not greater than 0")),
	)

	assert.True(t, errs.IsValidation(err))
	assert.True(t, errs.IsValidation(fmt.Errorf("create quote: %w", err)))

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "origin", required.ParamName)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "weight_kg", invalid.ParamName)
}

func TestIsValidation_RejectsOtherErrors(t *testing.T) {
	assert.False(t, errs.IsValidation(errors.New("boom")))
	assert.False(t, errs.IsValidation(errs.NewStorageUnavailableError("get documents from quote")))
	assert.False(t, errs.IsValidation(nil))
}

func TestStorageUnavailableError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStorageUnavailableError("create document in shipment")

		assert.Equal(t, "storage is unavailable: create document in shipment", err.Error())
		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})

	t.Run("cause chain stays reachable", func(t *testing.T) {
		cause := fmt.Errorf("dial: %w", errors.ErrUnsupported)
		err := fmt.Errorf("list quotes: %w",
			errs.NewStorageUnavailableErrorWithCause("get documents from quote", cause))

		assert.Equal(t,
			"list quotes: storage is unavailable: get documents from quote (cause: dial: unsupported operation)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		require.ErrorIs(t, err, errors.ErrUnsupported)

		var unavailable *errs.StorageUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "get documents from quote", unavailable.Operation)
	})
}
