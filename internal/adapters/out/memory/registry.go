// Package memory is the in-process backend of the logistics registry.
//
// A Registry owns four tables (packages, warehouses, drivers, routes), each
// with its own id counter, behind a single read/write lock. Every mutation
// goes through a UnitOfWork:
//
//	factory := memory.NewUnitOfWorkFactory(memory.NewRegistry())
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	// ... repository calls see their own staged writes
//
//	return uow.Commit(ctx)
//
// Begin takes the write lock and holds it until Commit or Rollback, so
// operations are serialised and readers never observe a half-applied one.
// Repositories used outside a transaction take the lock per call.
package memory

import (
	"sync"
)

// Registry holds the committed state. The zero value is not usable; create
// one with NewRegistry.
type Registry struct {
	mu sync.RWMutex

	parcels    *table[parcelRecord]
	warehouses *table[warehouseRecord]
	drivers    *table[driverRecord]
	routes     *table[routeRecord]
}

func NewRegistry() *Registry {
	return &Registry{
		parcels:    newTable[parcelRecord](),
		warehouses: newTable[warehouseRecord](),
		drivers:    newTable[driverRecord](),
		routes:     newTable[routeRecord](),
	}
}

// txState is a view over the registry that stages writes. Reads see staged
// rows first, then committed ones.
type txState struct {
	parcels    *stagedTable[parcelRecord]
	warehouses *stagedTable[warehouseRecord]
	drivers    *stagedTable[driverRecord]
	routes     *stagedTable[routeRecord]
}

// stage must be called with the registry lock held.
func (r *Registry) stage() *txState {
	return &txState{
		parcels:    r.parcels.stage(),
		warehouses: r.warehouses.stage(),
		drivers:    r.drivers.stage(),
		routes:     r.routes.stage(),
	}
}

// apply must be called with the registry write lock held.
func (tx *txState) apply() {
	tx.parcels.apply()
	tx.warehouses.apply()
	tx.drivers.apply()
	tx.routes.apply()
}
