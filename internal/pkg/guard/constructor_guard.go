// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities, commands and queries so that zero values created with a struct
// literal can be told apart from values built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example usage:
//
//	var ErrWarehouseNotConstructed = errors.New("Warehouse must be created via NewWarehouse")
//
//	type Warehouse struct {
//	    location string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewWarehouse(location string) *Warehouse {
//	    return &Warehouse{location: location, guard: guard.NewConstructorGuard()}
//	}
//
//	func (w *Warehouse) Validate() error {
//	    return w.guard.Validate(ErrWarehouseNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
