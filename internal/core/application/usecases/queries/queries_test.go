package queries_test

import (
	"testing"

	"logiflow/internal/core/application/usecases/queries"
	"logiflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListQuotesQuery_Valid(t *testing.T) {
	query, err := queries.NewListQuotesQuery(50)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 50, query.Limit())
}

func TestNewListQueries_RejectLimitBelowOne(t *testing.T) {
	for _, limit := range []int{0, -5} {
		_, err := queries.NewListQuotesQuery(limit)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsValidation(err))

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "limit", rangeErr.ParamName)
		assert.Equal(t, limit, rangeErr.Value)

		_, err = queries.NewListShipmentsQuery(limit)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewGetTrackingQuery(t *testing.T) {
	query, err := queries.NewGetTrackingQuery("LGF-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "LGF-AAAA1111", query.TrackingNumber())

	_, err = queries.NewGetTrackingQuery("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.ListQuotesQuery{}.Validate(), queries.ErrListQuotesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListShipmentsQuery{}.Validate(), queries.ErrListShipmentsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTrackingQuery{}.Validate(), queries.ErrGetTrackingQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetDiagnosticsQuery{}.Validate(), queries.ErrGetDiagnosticsQueryIsNotConstructed)
	require.NoError(t, queries.NewGetDiagnosticsQuery().Validate())
}
