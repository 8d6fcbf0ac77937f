package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignPackageToWarehouseCommandIsNotConstructed = errors.New(
	"AssignPackageToWarehouseCommand must be created via NewAssignPackageToWarehouseCommand constructor",
)

// AssignPackageToWarehouseCommand stores a package in a warehouse.
type AssignPackageToWarehouseCommand struct {
	packageID   kernel.ID
	warehouseID kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignPackageToWarehouseCommand(packageID, warehouseID kernel.ID) AssignPackageToWarehouseCommand {
	return AssignPackageToWarehouseCommand{
		packageID:   packageID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c AssignPackageToWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageToWarehouseCommandIsNotConstructed)
}

func (c AssignPackageToWarehouseCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c AssignPackageToWarehouseCommand) WarehouseID() kernel.ID {
	return c.warehouseID
}
