package errs

import "fmt"

// ValueIsInvalidError reports that a parameter holds a value the domain rejects.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
