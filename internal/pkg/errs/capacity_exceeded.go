package errs

import "fmt"

// CapacityExceededError reports that a container (a warehouse) already holds
// as many items as its capacity allows.
type CapacityExceededError struct {
	ParamName string
	ID        any
	Capacity  int
	Cause     error
}

func NewCapacityExceededError(paramName string, id any, capacity int) *CapacityExceededError {
	return &CapacityExceededError{
		ParamName: paramName,
		ID:        id,
		Capacity:  capacity,
	}
}

func NewCapacityExceededErrorWithCause(paramName string, id any, capacity int, cause error) *CapacityExceededError {
	return &CapacityExceededError{
		ParamName: paramName,
		ID:        id,
		Capacity:  capacity,
		Cause:     cause,
	}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(withCause(
		fmt.Sprintf("%s: %s %v is full, capacity is %d", ErrCapacityExceeded, e.ParamName, e.ID, e.Capacity),
		e.Cause,
	))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
