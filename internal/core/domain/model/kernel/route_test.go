package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logiflow/internal/core/domain/model/kernel"
	"logiflow/internal/pkg/errs"
)

func TestNewRoute(t *testing.T) {
	t.Run("valid route keeps values as given", func(t *testing.T) {
		route, err := kernel.NewRoute("Shanghai", " Rotterdam ")

		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.Equal(t, "Shanghai", route.Origin())
		assert.Equal(t, " Rotterdam ", route.Destination())
	})

	t.Run("blank origin", func(t *testing.T) {
		_, err := kernel.NewRoute("   ", "Rotterdam")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "origin")
	})

	t.Run("both ends missing are reported together", func(t *testing.T) {
		_, err := kernel.NewRoute("", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var route kernel.Route

		require.ErrorIs(t, route.Validate(), kernel.ErrRouteIsNotConstructed)
	})
}
