package errs

import "fmt"

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
