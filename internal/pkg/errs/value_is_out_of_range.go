package errs

import "fmt"

// ValueIsOutOfRangeError reports a value that falls outside the inclusive [Min, Max] range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, lo, hi any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       lo,
		Max:       hi,
	}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, lo, hi any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       lo,
		Max:       hi,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return sanitize(withCause(
		fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max),
		e.Cause,
	))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}
