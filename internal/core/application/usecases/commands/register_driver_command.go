package commands

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
)

// RegisterDriverCommand adds a driver to the registry.
//
// Example:
//
//	cmd, err := NewRegisterDriverCommand("Ann", driver.Van)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	name        string
	vehicleType driver.VehicleType

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(name string, vehicleType driver.VehicleType) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	cmd.setName(name)

	if err := cmd.setVehicleType(vehicleType); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c RegisterDriverCommand) VehicleType() driver.VehicleType {
	return c.vehicleType
}

func (c *RegisterDriverCommand) setName(name string) {
	c.name = name
}

func (c *RegisterDriverCommand) setVehicleType(vehicleType driver.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}
