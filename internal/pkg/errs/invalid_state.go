package errs

import "fmt"

// InvalidStateError reports an operation that is not allowed from the current
// state of an entity, e.g. starting a route that has already been completed.
type InvalidStateError struct {
	ParamName string
	State     string
	Action    string
	Cause     error
}

func NewInvalidStateError(paramName, state, action string) *InvalidStateError {
	return &InvalidStateError{
		ParamName: paramName,
		State:     state,
		Action:    action,
	}
}

func NewInvalidStateErrorWithCause(paramName, state, action string, cause error) *InvalidStateError {
	return &InvalidStateError{
		ParamName: paramName,
		State:     state,
		Action:    action,
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	return sanitize(withCause(
		fmt.Sprintf("%s: cannot %s %s in state %s", ErrInvalidState, e.Action, e.ParamName, e.State),
		e.Cause,
	))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
