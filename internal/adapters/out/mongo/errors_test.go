package mongo

import (
	"errors"
	"testing"

	"logiflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

func TestStoreError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "server selection", err: topology.ServerSelectionError{Wrapped: topology.ErrServerSelectionTimeout}, unavailable: true},
		{name: "client disconnected", err: mongo.ErrClientDisconnected, unavailable: true},
		{name: "duplicate key", err: mongo.CommandError{Code: 11000, Message: "E11000 duplicate key error"}},
		{name: "other", err: errors.New("no encoder found for chan int")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := storeError("create document in quote", tc.err)

			require.ErrorContains(t, err, tc.err.Error())
			assert.Equal(t, tc.unavailable, errors.Is(err, errs.ErrStorageUnavailable))
		})
	}
}
