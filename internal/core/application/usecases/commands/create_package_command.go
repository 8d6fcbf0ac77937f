package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand registers a package with caller-supplied status and
// priority.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(2.5, "Port", "Airport",
//	    parcel.InWarehouse, parcel.Standard, "+15550100")
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	weight        float64
	origin        kernel.Place
	destination   kernel.Place
	status        parcel.Status
	priority      parcel.Priority
	customerPhone string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates status and priority. Weight, places and
// phone are taken as given.
func NewCreatePackageCommand(
	weight float64,
	origin string,
	destination string,
	status parcel.Status,
	priority parcel.Priority,
	customerPhone string,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}

	cmd.setOrigin(origin)
	cmd.setDestination(destination)
	cmd.setCustomerPhone(customerPhone)

	if err := errors.Join(
		cmd.setStatus(status),
		cmd.setPriority(priority),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Weight() float64 {
	return c.weight
}

func (c CreatePackageCommand) Origin() kernel.Place {
	return c.origin
}

func (c CreatePackageCommand) Destination() kernel.Place {
	return c.destination
}

func (c CreatePackageCommand) Status() parcel.Status {
	return c.status
}

func (c CreatePackageCommand) Priority() parcel.Priority {
	return c.priority
}

func (c CreatePackageCommand) CustomerPhone() string {
	return c.customerPhone
}

func (c *CreatePackageCommand) setOrigin(origin string) {
	c.origin = kernel.NewPlace(origin)
}

func (c *CreatePackageCommand) setDestination(destination string) {
	c.destination = kernel.NewPlace(destination)
}

func (c *CreatePackageCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreatePackageCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreatePackageCommand) setCustomerPhone(phone string) {
	c.customerPhone = phone
}
