package parcel

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
// NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is a package tracked by the registry. It is the aggregate root for
// everything the registry knows about a single shipment: what it weighs, where
// it goes, which warehouse holds it, which route carries it and whether it has
// been delivered.
//
// Parcel follows these invariants:
//   - Weight and customer phone are stored as given
//   - Origin and destination are constructed places
//   - Status and priority are valid enumeration values
//   - A delivered parcel always carries its delivery time once delivered through MarkDelivered
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// id is the registry-issued identifier
	id kernel.ID

	// weight in kilograms
	weight float64

	origin      kernel.Place
	destination kernel.Place

	status   Status
	priority Priority

	// warehouseID is the warehouse currently listing the parcel (nil if none)
	warehouseID *kernel.ID

	// routeID is the delivery route carrying the parcel (nil if none)
	routeID *kernel.ID

	customerPhone string

	createdAt time.Time

	// deliveredAt is stamped when the carrying route completes
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel with caller-supplied status and priority. The
// parcel starts without a warehouse and without a route.
//
// Parameters:
//   - id: registry-issued identifier
//   - weight: kilograms
//   - origin, destination: constructed places
//   - status, priority: initial lifecycle values
//   - customerPhone: number notified on delivery
//   - createdAt: creation timestamp, normally the registry clock
//
// Example:
//
//	p, err := parcel.NewParcel(0, 2.5, origin, destination,
//	    parcel.InWarehouse, parcel.Standard, "+15550100", clock.Now())
func NewParcel(
	id kernel.ID,
	weight float64,
	origin kernel.Place,
	destination kernel.Place,
	status Status,
	priority Priority,
	customerPhone string,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	p.weight = weight
	p.customerPhone = customerPhone

	if err := errors.Join(
		p.setOrigin(origin),
		p.setDestination(destination),
		p.setStatus(status),
		p.setPriority(priority),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a parcel from persisted state, including its
// warehouse, route and delivery data.
func RestoreParcel(
	id kernel.ID,
	weight float64,
	origin kernel.Place,
	destination kernel.Place,
	status Status,
	priority Priority,
	customerPhone string,
	createdAt time.Time,
	warehouseID *kernel.ID,
	routeID *kernel.ID,
	deliveredAt *time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, weight, origin, destination, status, priority, customerPhone, createdAt)
	if err != nil {
		return nil, err
	}

	p.warehouseID = copyID(warehouseID)
	p.routeID = copyID(routeID)
	if deliveredAt != nil {
		at := *deliveredAt
		p.deliveredAt = &at
	}

	return p, nil
}

// Validate ensures the Parcel was created through its constructors.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) ID() kernel.ID {
	return p.id
}

func (p *Parcel) Weight() float64 {
	return p.weight
}

func (p *Parcel) Origin() kernel.Place {
	return p.origin
}

func (p *Parcel) Destination() kernel.Place {
	return p.destination
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) Priority() Priority {
	return p.priority
}

// WarehouseID returns the warehouse listing the parcel, or nil.
func (p *Parcel) WarehouseID() *kernel.ID {
	return copyID(p.warehouseID)
}

// RouteID returns the route carrying the parcel, or nil.
func (p *Parcel) RouteID() *kernel.ID {
	return copyID(p.routeID)
}

func (p *Parcel) CustomerPhone() string {
	return p.customerPhone
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the time the carrying route completed, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	if p.deliveredAt == nil {
		return nil
	}
	at := *p.deliveredAt
	return &at
}

// IsOnRoute reports whether the parcel is attached to routeID.
func (p *Parcel) IsOnRoute(routeID kernel.ID) bool {
	return p.routeID != nil && *p.routeID == routeID
}

// Prioritize upgrades the parcel to Express. Calling it on an Express parcel
// is a no-op.
func (p *Parcel) Prioritize() {
	p.priority = Express
}

// Reroute changes the delivery destination. The carrying route, if any, is
// not touched here; see the reroute command.
func (p *Parcel) Reroute(destination kernel.Place) error {
	return p.setDestination(destination)
}

// PlaceInWarehouse records warehouseID as the warehouse listing the parcel,
// replacing any previous one.
func (p *Parcel) PlaceInWarehouse(warehouseID kernel.ID) {
	p.warehouseID = &warehouseID
}

// LeaveWarehouse clears the warehouse reference. It fails with an
// InvalidStateError when the parcel is not listed by warehouseID.
func (p *Parcel) LeaveWarehouse(warehouseID kernel.ID) error {
	if p.warehouseID == nil || *p.warehouseID != warehouseID {
		return errs.NewInvalidStateError(
			"package",
			fmt.Sprintf("not stored in warehouse %s", warehouseID),
			"release",
		)
	}

	p.warehouseID = nil
	return nil
}

// AssignToRoute attaches the parcel to a delivery route. Delivered parcels
// cannot be attached again.
func (p *Parcel) AssignToRoute(routeID kernel.ID) error {
	if p.status.IsDelivered() {
		return errs.NewInvalidStateError("package", p.status.String(), "assign route to")
	}

	p.routeID = &routeID
	return nil
}

// MarkDelivered moves the parcel to Delivered and stamps the delivery time.
// A parcel that already has a delivery time keeps it.
func (p *Parcel) MarkDelivered(at time.Time) {
	p.status = Delivered
	if p.deliveredAt == nil {
		p.deliveredAt = &at
	}
}

func (p *Parcel) setOrigin(origin kernel.Place) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	p.origin = origin
	return nil
}

func (p *Parcel) setDestination(destination kernel.Place) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	p.destination = destination
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
