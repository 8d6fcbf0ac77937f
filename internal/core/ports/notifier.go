package ports

import (
	"context"

	"logistics/internal/core/domain/model/notification"
)

// Notifier hands a notification to the outside world. Delivery is best effort;
// callers do not retry.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}
