// Package notify holds the outbound adapter for customer notifications.
//
// No real delivery channel (SMS, push) is wired: LoggingNotifier records every
// notification in the service log and reports success.
package notify

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/ports"
)

var _ ports.Notifier = (*LoggingNotifier)(nil)

type LoggingNotifier struct {
	logger *slog.Logger
}

func NewLoggingNotifier(logger *slog.Logger) *LoggingNotifier {
	return &LoggingNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify logs n. It fails only for a notification that was not constructed.
func (n *LoggingNotifier) Notify(ctx context.Context, msg notification.Notification) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "Delivery notification sent",
		"notification_id", msg.ID().String(),
		"package_id", uint64(msg.PackageID()),
		"phone", msg.Phone(),
		"message", msg.Message(),
		"created_at", msg.CreatedAt(),
	)
	return nil
}
