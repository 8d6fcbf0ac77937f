// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern over the registry's four aggregates.
//
// Each unit of work maps onto one database transaction. Ids come from the
// sequence package, whose counter rows are bumped inside the same
// transaction, so a rollback returns reserved ids exactly like the
// in-memory registry does.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.RouteRepository().NextID(ctx)
//	if err != nil {
//	    return err
//	}
//	// ... build the route, Add it
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Id reservation serialises writers of the same entity on its counter row
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/sequence"
	"logistics/internal/adapters/out/postgres/warehouserepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&sequence.SequenceDTO{},
		&parcelrepo.ParcelDTO{},
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.StoredPackageDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.CompletedRouteDTO{},
		&routerepo.RouteDTO{},
	)
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the package,
// warehouse, driver and route repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction, id
// reservations included.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository runs inside the current transaction if one is active,
// otherwise directly on the connection pool.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn())
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn())
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
