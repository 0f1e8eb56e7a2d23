package freight

import "errors"

var (
	ErrJobNotFound         = errors.New("freight job not found")
	ErrJobNotAvailable     = errors.New("freight job is not available")
	ErrJobNotReserved      = errors.New("freight job is not reserved")
	ErrJobReserved         = errors.New("freight job is reserved by a driver")
	ErrNoCompatibleVehicle = errors.New("driver owns no vehicle compatible with this job")
	ErrInvalidPrice        = errors.New("price must be a positive number")
	ErrInvalidTransition   = errors.New("invalid job status transition")
)
