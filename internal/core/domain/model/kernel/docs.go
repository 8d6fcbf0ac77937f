// Package kernel provides the domain primitives shared by every aggregate of
// the logistics registry.
//
// The package includes:
//   - ID: the sequential identifier assigned to packages, warehouses, drivers and routes
//   - Place: a human readable place name, kept as given (origins, destinations, warehouse locations)
//   - UUID: a random identifier used for notifications and other records without a counter
//
// Values of these types are immutable and safe to share between goroutines.
package kernel
