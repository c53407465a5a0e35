// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP layer.
package queries

import (
	"errors"

	"logiflow/internal/pkg/guard"
)

var ErrListQuotesQueryIsNotConstructed = errors.New(
	"ListQuotesQuery must be created via NewListQuotesQuery constructor",
)

// ListQuotesQuery retrieves stored quotes, oldest first.
//
// Example:
//
//	query, err := NewListQuotesQuery(ports.DefaultListLimit)
//	if err != nil {
//	    return err
//	}
//
//	quotes, err := handler.Handle(ctx, query)
//	for _, q := range quotes {
//	    fmt.Printf("%s -> %s: $%.2f in %d days\n", q.Origin, q.Destination, q.PriceUSD, q.ETADays)
//	}
type ListQuotesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListQuotesQuery creates a query returning at most limit quotes. limit must be at least 1.
func NewListQuotesQuery(limit int) (ListQuotesQuery, error) {
	if err := validateLimit(limit); err != nil {
		return ListQuotesQuery{}, err
	}

	return ListQuotesQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListQuotesQuery) Validate() error {
	return q.guard.Validate(ErrListQuotesQueryIsNotConstructed)
}

// Limit returns the maximum number of quotes to return.
func (q ListQuotesQuery) Limit() int {
	return q.limit
}

// ListQuotesQueryResponse is the read model of a stored quote.
type ListQuotesQueryResponse struct {
	Origin      string
	Destination string
	Mode        string
	WeightKg    float64
	VolumeCbm   float64
	PriceUSD    float64
	ETADays     int
}
