// Package errs provides standardized error types for the logistics registry.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed range
//   - ObjectNotFoundError: For when a package, warehouse, driver or route cannot be found
//   - CapacityExceededError: For when a warehouse has no room left
//   - DriverOccupiedError: For when a driver is already on a route
//   - InvalidStateError: For lifecycle transitions that are not allowed
//   - NoRouteError: For packages that are not attached to a route
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrCapacityExceeded)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Handlers and adapters classify failures with errors.Is against the sentinels,
// e.g. the HTTP adapter maps ErrObjectNotFound to 404 and ErrCapacityExceeded to 409.
package errs
