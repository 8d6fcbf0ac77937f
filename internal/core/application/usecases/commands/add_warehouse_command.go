package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddWarehouseCommandIsNotConstructed = errors.New(
	"AddWarehouseCommand must be created via NewAddWarehouseCommand constructor",
)

// AddWarehouseCommand registers a new warehouse with a fixed capacity.
//
// Example:
//
//	cmd, err := NewAddWarehouseCommand("North Depot", 100)
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type AddWarehouseCommand struct { //nolint:recvcheck //using for validation
	location kernel.Place
	capacity int

	guard guard.ConstructorGuard
}

// NewAddWarehouseCommand accepts any location. Capacity is a count of slots
// and cannot be negative.
func NewAddWarehouseCommand(location string, capacity int) (AddWarehouseCommand, error) {
	cmd := AddWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	cmd.setLocation(location)

	if err := cmd.setCapacity(capacity); err != nil {
		return AddWarehouseCommand{}, err
	}

	return cmd, nil
}

func (c AddWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrAddWarehouseCommandIsNotConstructed)
}

func (c AddWarehouseCommand) Location() kernel.Place {
	return c.location
}

func (c AddWarehouseCommand) Capacity() int {
	return c.capacity
}

func (c *AddWarehouseCommand) setLocation(location string) {
	c.location = kernel.NewPlace(location)
}

func (c *AddWarehouseCommand) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, "unbounded")
	}
	c.capacity = capacity
	return nil
}
