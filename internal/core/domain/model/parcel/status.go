package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the position of a parcel in its lifecycle.
//
//	InWarehouse ──> InTransit ──> Delivered
//
// Statuses are supplied by the caller at creation, so a parcel may start in
// any of them. Only Delivered is terminal.
type Status int

const (
	// UnknownStatus is the zero value and is never valid.
	UnknownStatus Status = iota
	InWarehouse
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		InWarehouse:   "InWarehouse",
		InTransit:     "InTransit",
		Delivered:     "Delivered",
	}
}

// ParseStatus converts the String form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != UnknownStatus {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects UnknownStatus and values outside the enumeration.
func (s Status) Validate() error {
	if s == UnknownStatus {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDelivered reports whether s is the terminal status.
func (s Status) IsDelivered() bool {
	return s == Delivered
}
