package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority is the delivery class of a parcel. Express parcels are estimated
// to arrive 30% faster than Standard ones on the same route.
type Priority int

const (
	UnknownPriority Priority = iota
	Standard
	Express
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Standard:        "Standard",
		Express:         "Express",
	}
}

// ParsePriority converts the String form back into a Priority.
func ParsePriority(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s && priority != UnknownPriority {
			return priority, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if p != Standard && p != Express {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
