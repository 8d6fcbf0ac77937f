package memory

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Registry.
type UnitOfWorkFactory struct {
	registry *Registry
}

func NewUnitOfWorkFactory(registry *Registry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

// Create returns a fresh unit of work. A unit of work belongs to one goroutine.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{registry: f.registry}
}

// UnitOfWork stages repository writes and applies them to the registry at
// Commit.
type UnitOfWork struct {
	registry *Registry
	tx       *txState
}

// Begin takes the registry write lock. Calling Begin twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.registry.mu.Lock()
	uow.tx = uow.registry.stage()
	return nil
}

// Commit applies every staged write and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.tx.apply()
	uow.tx = nil
	uow.registry.mu.Unlock()
	return nil
}

// Rollback discards staged writes, including reserved ids, and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.tx = nil
	uow.registry.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return newParcelRepository(uow)
}

func (uow *UnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return newWarehouseRepository(uow)
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return newDriverRepository(uow)
}

func (uow *UnitOfWork) RouteRepository() ports.RouteRepository {
	return newRouteRepository(uow)
}

// read runs fn against the open transaction, or against the committed state
// under the read lock.
func (uow *UnitOfWork) read(ctx context.Context, fn func(tx *txState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx != nil {
		return fn(uow.tx)
	}

	uow.registry.mu.RLock()
	defer uow.registry.mu.RUnlock()
	return fn(uow.registry.stage())
}

// write runs fn against the open transaction. Outside a transaction the write
// is applied at once under the write lock, or not at all if fn fails.
func (uow *UnitOfWork) write(ctx context.Context, fn func(tx *txState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx != nil {
		return fn(uow.tx)
	}

	uow.registry.mu.Lock()
	defer uow.registry.mu.Unlock()

	tx := uow.registry.stage()
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}
