// Package driver provides the Driver aggregate and the VehicleType enumeration.
//
// A driver is either available or driving exactly one route:
//
//	IsAvailable() == (CurrentRoute() == nil)
//
// TakeRoute and FinishRoute are the only transitions between the two states,
// and FinishRoute records the route in the driver's completed routes.
package driver
