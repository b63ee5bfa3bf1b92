package usecase

import "errors"

var (
	ErrPinNotFound       = errors.New("pin not found")
	ErrFileTooLarge      = errors.New("file exceeds the 50 MiB limit")
	ErrTripNotFound      = errors.New("trip not found")
	ErrEmptyTripName     = errors.New("trip name must not be empty")
	ErrDuplicateTripName = errors.New("a trip with this name already exists")
)
