package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// AddWarehouseCommandHandler creates empty warehouses.
//
// Example:
//
//	handler := NewAddWarehouseCommandHandler(uowFactory)
//	cmd, _ := NewAddWarehouseCommand("North Depot", 100)
//	id, err := handler.Handle(ctx, cmd)
type AddWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewAddWarehouseCommandHandler(uowFactory WarehouseUoWFactory) AddWarehouseCommandHandler {
	return AddWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reserves the next warehouse id and stores an empty warehouse under it.
func (h AddWarehouseCommandHandler) Handle(ctx context.Context, cmd AddWarehouseCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WarehouseRepository()

	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	w, err := warehouse.NewWarehouse(id, cmd.Location(), cmd.Capacity())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, w); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
