package errs

import "fmt"

// DriverOccupiedError reports that a driver cannot take a route because it is
// already driving another one.
type DriverOccupiedError struct {
	DriverID any
	Cause    error
}

func NewDriverOccupiedError(driverID any) *DriverOccupiedError {
	return &DriverOccupiedError{DriverID: driverID}
}

func NewDriverOccupiedErrorWithCause(driverID any, cause error) *DriverOccupiedError {
	return &DriverOccupiedError{
		DriverID: driverID,
		Cause:    cause,
	}
}

func (e *DriverOccupiedError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %v", ErrDriverOccupied, e.DriverID), e.Cause))
}

func (e *DriverOccupiedError) Unwrap() error {
	return ErrDriverOccupied
}
