package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// RegisterDriverCommandHandler creates available drivers with no route history.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (kernel.ID, error) {
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

	repo := uow.DriverRepository()

	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	d, err := driver.NewDriver(id, cmd.Name(), cmd.VehicleType())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, d); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
