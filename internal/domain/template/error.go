package template

import "errors"

var (
	ErrMissingFields     = errors.New("name, radio button text and file are required")
	ErrInvalidCoordinate = errors.New("coordinate is not a number")
)
