// Package notification provides the message sent to a customer about a
// package's delivery.
package notification

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewDeliveryNotification constructor")

// Notification is a single delivery message addressed to a customer phone.
type Notification struct {
	id        kernel.UUID
	packageID kernel.ID
	phone     string
	message   string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewDeliveryNotification builds the message describing p's current status.
func NewDeliveryNotification(id kernel.UUID, p *parcel.Parcel, at time.Time) (Notification, error) {
	if err := errors.Join(id.Validate(), p.Validate()); err != nil {
		return Notification{}, err
	}

	return Notification{
		id:        id,
		packageID: p.ID(),
		phone:     p.CustomerPhone(),
		message:   deliveryMessage(p),
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (n Notification) Validate() error {
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n Notification) ID() kernel.UUID {
	return n.id
}

func (n Notification) PackageID() kernel.ID {
	return n.packageID
}

func (n Notification) Phone() string {
	return n.phone
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) CreatedAt() time.Time {
	return n.createdAt
}

func deliveryMessage(p *parcel.Parcel) string {
	switch p.Status() {
	case parcel.Delivered:
		return fmt.Sprintf("Your package %s has been delivered to %s.", p.ID(), p.Destination())
	case parcel.InTransit:
		return fmt.Sprintf("Your package %s is on its way to %s.", p.ID(), p.Destination())
	default:
		return fmt.Sprintf("Your package %s for %s is waiting at the warehouse.", p.ID(), p.Destination())
	}
}
