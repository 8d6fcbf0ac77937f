package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/ports"
)

// SendDeliveryNotificationCommandHandler builds a status message for a package
// and hands it to the Notifier. Nothing is persisted and failed notifications
// are not retried.
type SendDeliveryNotificationCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
}

func NewSendDeliveryNotificationCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
) SendDeliveryNotificationCommandHandler {
	return SendDeliveryNotificationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle returns the id of the notification handed to the Notifier.
func (h SendDeliveryNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd SendDeliveryNotificationCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	// Read-only: the repository is used outside a transaction.
	p, err := h.uowFactory.Create().ParcelRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return kernel.UUID{}, err
	}

	n, err := notification.NewDeliveryNotification(kernel.NewUUID(), p, h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.notifier.Notify(ctx, n); err != nil {
		return kernel.UUID{}, err
	}

	return n.ID(), nil
}
