// Package services provides domain services that coordinate several
// aggregates of the logistics registry.
//
// The package includes:
//   - RouteDispatcher: starts and completes routes together with their driver and packages
//   - DeliveryEstimator: converts a route's estimated duration into a package delivery time
//   - ReportPeriod and DeliveryReporter: build the monthly delivery report
//
// Services validate every aggregate they touch before mutating any of them, so
// a failing call leaves all of its inputs unchanged.
package services
