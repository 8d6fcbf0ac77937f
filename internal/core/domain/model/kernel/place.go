package kernel

import (
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPlaceIsNotConstructed is returned when a zero value Place is used.
var ErrPlaceIsNotConstructed = errs.NewValueIsRequiredError(
	"place must be created via NewPlace constructor")

// Place is a named location such as a city, a port or a warehouse address.
// Places are not geocoded and the name is kept exactly as given; input rules
// such as "non-empty" belong to the transport that accepts the name.
//
// Example:
//
//	origin := kernel.NewPlace("Port")
//	fmt.Println(origin) // Port
type Place struct {
	name  string
	guard guard.ConstructorGuard
}

// NewPlace wraps name in a constructed Place.
func NewPlace(name string) Place {
	return Place{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate reports whether the Place was built by NewPlace.
func (p Place) Validate() error {
	return p.guard.Validate(ErrPlaceIsNotConstructed)
}

// Name returns the place name.
func (p Place) Name() string {
	return p.name
}

func (p Place) String() string {
	return p.name
}
