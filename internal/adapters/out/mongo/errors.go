package mongo

import (
	"errors"

	"logiflow/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// storeError marks failures to reach the server as errs.ErrStorageUnavailable.
// Other errors are returned unchanged.
func storeError(operation string, err error) error {
	if unreachable(err) {
		return errs.NewStorageUnavailableErrorWithCause(operation, err)
	}
	return err
}

func unreachable(err error) bool {
	var selection topology.ServerSelectionError
	return errors.As(err, &selection) ||
		errors.Is(err, topology.ErrServerSelectionTimeout) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsNetworkError(err)
}
