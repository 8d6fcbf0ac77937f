package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSendDeliveryNotificationCommandIsNotConstructed = errors.New(
	"SendDeliveryNotificationCommand must be created via NewSendDeliveryNotificationCommand constructor",
)

// SendDeliveryNotificationCommand tells the customer where their package is.
type SendDeliveryNotificationCommand struct {
	packageID kernel.ID

	guard guard.ConstructorGuard
}

func NewSendDeliveryNotificationCommand(packageID kernel.ID) SendDeliveryNotificationCommand {
	return SendDeliveryNotificationCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c SendDeliveryNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryNotificationCommandIsNotConstructed)
}

func (c SendDeliveryNotificationCommand) PackageID() kernel.ID {
	return c.packageID
}
