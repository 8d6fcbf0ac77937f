package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// VehicleType is the kind of vehicle a driver operates.
type VehicleType int

const (
	UnknownVehicle VehicleType = iota
	Bike
	Truck
	Van
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		UnknownVehicle: "Unknown",
		Bike:           "Bike",
		Truck:          "Truck",
		Van:            "Van",
	}
}

func ParseVehicleType(s string) (VehicleType, error) {
	for vt, str := range getVehicleTypeStrings() {
		if str == s && vt != UnknownVehicle {
			return vt, nil
		}
	}
	return UnknownVehicle, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a valid vehicle type", s))
}

func (v VehicleType) Validate() error {
	switch v {
	case Bike, Truck, Van:
		return nil
	case UnknownVehicle:
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%d is not a valid vehicle type", v))
}

func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
