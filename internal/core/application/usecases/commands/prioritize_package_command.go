package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrPrioritizePackageCommandIsNotConstructed = errors.New(
	"PrioritizePackageCommand must be created via NewPrioritizePackageCommand constructor",
)

// PrioritizePackageCommand upgrades a package to Express delivery.
type PrioritizePackageCommand struct {
	packageID kernel.ID

	guard guard.ConstructorGuard
}

func NewPrioritizePackageCommand(packageID kernel.ID) PrioritizePackageCommand {
	return PrioritizePackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c PrioritizePackageCommand) Validate() error {
	return c.guard.Validate(ErrPrioritizePackageCommandIsNotConstructed)
}

func (c PrioritizePackageCommand) PackageID() kernel.ID {
	return c.packageID
}
