package kernel

import (
	"errors"
	"strings"

	"logiflow/internal/pkg/errs"
	"logiflow/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through NewRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is the origin and destination pair of a freight request.
// Both ends are free-form place names (port, city, address); they are
// stored as given and only required to be non-blank.
type Route struct { //nolint:recvcheck //using for validation
	origin      string
	destination string

	guard guard.ConstructorGuard
}

// NewRoute creates a Route.
//
// Parameters:
//   - origin: where the cargo is picked up (must not be blank)
//   - destination: where the cargo is delivered (must not be blank)
//
// Returns:
//   - Route: the validated route
//   - error: every violated rule, joined
func NewRoute(origin, destination string) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setOrigin(origin),
		route.setDestination(destination),
	); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate ensures the route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Origin returns the pick-up place.
func (r Route) Origin() string {
	return r.origin
}

// Destination returns the delivery place.
func (r Route) Destination() string {
	return r.destination
}

func (r *Route) setOrigin(origin string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}
