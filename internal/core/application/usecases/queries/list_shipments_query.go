package queries

import (
	"errors"

	"logiflow/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves stored shipment documents without decoding them.
type ListShipmentsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query returning at most limit shipments. limit must be at least 1.
func NewListShipmentsQuery(limit int) (ListShipmentsQuery, error) {
	if err := validateLimit(limit); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Limit returns the maximum number of shipments to return.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}
