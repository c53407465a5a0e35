// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell a constructor-built value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// Example:
//
//	var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo")
//
//	type Cargo struct {
//	    weightKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c Cargo) Validate() error {
//	    return c.guard.Validate(ErrCargoIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
