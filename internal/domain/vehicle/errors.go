package vehicle

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrPlateTaken      = errors.New("plate already registered")
	ErrNotOwner        = errors.New("vehicle does not belong to caller")
	ErrVehicleInUse    = errors.New("vehicle is assigned to an active freight job")
	ErrInvalidType     = errors.New("invalid vehicle type")
)
