package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReroutePackageCommandIsNotConstructed = errors.New(
	"ReroutePackageCommand must be created via NewReroutePackageCommand constructor",
)

// ReroutePackageCommand changes where a package is delivered.
type ReroutePackageCommand struct { //nolint:recvcheck //using for validation
	packageID   kernel.ID
	destination kernel.Place

	guard guard.ConstructorGuard
}

func NewReroutePackageCommand(packageID kernel.ID, destination string) ReroutePackageCommand {
	return ReroutePackageCommand{
		packageID:   packageID,
		destination: kernel.NewPlace(destination),
		guard:       guard.NewConstructorGuard(),
	}
}

func (c ReroutePackageCommand) Validate() error {
	return c.guard.Validate(ErrReroutePackageCommandIsNotConstructed)
}

func (c ReroutePackageCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c ReroutePackageCommand) Destination() kernel.Place {
	return c.destination
}
