package errs

import "fmt"

// NoRouteError reports that a package is not attached to any delivery route.
type NoRouteError struct {
	PackageID any
}

func NewNoRouteError(packageID any) *NoRouteError {
	return &NoRouteError{PackageID: packageID}
}

func (e *NoRouteError) Error() string {
	return sanitize(fmt.Sprintf("%s: package %v", ErrNoRoute, e.PackageID))
}

func (e *NoRouteError) Unwrap() error {
	return ErrNoRoute
}
