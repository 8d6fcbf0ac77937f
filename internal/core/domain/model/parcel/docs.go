// Package parcel provides the Parcel aggregate: a package tracked by the
// registry from creation, through warehouses and delivery routes, until it is
// delivered.
//
// The package includes:
//   - Parcel: the aggregate root holding weight, origin, destination, customer phone and lifecycle data
//   - Status: InWarehouse, InTransit or Delivered
//   - Priority: Standard or Express
//
// Key business rules:
//   - Status and priority are supplied by the caller at creation
//   - Prioritising is idempotent and there is no way back to Standard
//   - A delivered parcel cannot be attached to another route
//   - Delivery is recorded once; repeating it keeps the first timestamp
//
// The aggregate is named Parcel because package is a reserved word in Go.
package parcel
