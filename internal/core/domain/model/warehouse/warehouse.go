// Package warehouse provides the Warehouse aggregate: a place that lists the
// packages stored in it, up to a fixed capacity.
package warehouse

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse keeps an ordered list of the packages stored in it.
//
// Capacity is only checked when a package is stored: a warehouse holding
// len(StoredPackages()) >= Capacity() packages refuses new ones. Packages leave
// the list only through Release.
type Warehouse struct {
	id             kernel.ID
	location       kernel.Place
	capacity       int
	storedPackages []kernel.ID
	guard          guard.ConstructorGuard
}

// NewWarehouse creates an empty warehouse. Capacity must not be negative; a
// zero-capacity warehouse is valid and refuses every package.
func NewWarehouse(id kernel.ID, location kernel.Place, capacity int) (*Warehouse, error) {
	w := &Warehouse{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setLocation(location),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse rebuilds a warehouse from persisted state. The stored list
// is taken as is, even when it is longer than the capacity.
func RestoreWarehouse(id kernel.ID, location kernel.Place, capacity int, storedPackages []kernel.ID) (*Warehouse, error) {
	w, err := NewWarehouse(id, location, capacity)
	if err != nil {
		return nil, err
	}

	w.storedPackages = slices.Clone(storedPackages)
	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() kernel.ID {
	return w.id
}

func (w *Warehouse) Location() kernel.Place {
	return w.location
}

func (w *Warehouse) Capacity() int {
	return w.capacity
}

// StoredPackages returns a copy of the stored package IDs in storage order.
func (w *Warehouse) StoredPackages() []kernel.ID {
	return slices.Clone(w.storedPackages)
}

// FreeSlots returns how many more packages can be stored.
func (w *Warehouse) FreeSlots() int {
	return max(w.capacity-len(w.storedPackages), 0)
}

// Store appends packageID to the stored list. A package stored twice is
// listed twice and takes two slots.
//
// Returns:
//   - CapacityExceededError when the warehouse is full
func (w *Warehouse) Store(packageID kernel.ID) error {
	if w.FreeSlots() == 0 {
		return errs.NewCapacityExceededError("warehouse", w.id, w.capacity)
	}

	w.storedPackages = append(w.storedPackages, packageID)
	return nil
}

// Release removes the first listing of packageID, freeing its slot.
func (w *Warehouse) Release(packageID kernel.ID) error {
	i := slices.Index(w.storedPackages, packageID)
	if i < 0 {
		return errs.NewInvalidStateError(
			"package",
			fmt.Sprintf("not stored in warehouse %s", w.id),
			"release",
		)
	}

	w.storedPackages = slices.Delete(w.storedPackages, i, i+1)
	return nil
}

func (w *Warehouse) setLocation(location kernel.Place) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 0, "unbounded")
	}
	w.capacity = capacity
	return nil
}
