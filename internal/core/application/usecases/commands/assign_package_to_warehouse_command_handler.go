package commands

import (
	"context"
)

// AssignPackageToWarehouseCommandHandler appends a package to a warehouse's
// stored list and records the warehouse on the package.
//
// Example:
//
//	handler := NewAssignPackageToWarehouseCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewAssignPackageToWarehouseCommand(pkgID, whID))
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    // warehouse is full
//	}
type AssignPackageToWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignPackageToWarehouseCommandHandler(uowFactory UoWFactory) AssignPackageToWarehouseCommandHandler {
	return AssignPackageToWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an ObjectNotFoundError for an unknown package or warehouse
// and a CapacityExceededError when the warehouse is full. A package that is
// listed by another warehouse stays listed there.
func (h AssignPackageToWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPackageToWarehouseCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	warehouseRepo := uow.WarehouseRepository()

	p, err := parcelRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	w, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	if err = w.Store(p.ID()); err != nil {
		return err
	}
	p.PlaceInWarehouse(w.ID())

	if err = warehouseRepo.Update(ctx, w); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
