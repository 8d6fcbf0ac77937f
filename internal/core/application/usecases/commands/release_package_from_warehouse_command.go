package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReleasePackageFromWarehouseCommandIsNotConstructed = errors.New(
	"ReleasePackageFromWarehouseCommand must be created via NewReleasePackageFromWarehouseCommand constructor",
)

// ReleasePackageFromWarehouseCommand removes a package from a warehouse,
// freeing one slot of its capacity.
type ReleasePackageFromWarehouseCommand struct {
	packageID   kernel.ID
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

func NewReleasePackageFromWarehouseCommand(packageID, warehouseID kernel.ID) ReleasePackageFromWarehouseCommand {
	return ReleasePackageFromWarehouseCommand{
		packageID:   packageID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c ReleasePackageFromWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReleasePackageFromWarehouseCommandIsNotConstructed)
}

func (c ReleasePackageFromWarehouseCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c ReleasePackageFromWarehouseCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}
