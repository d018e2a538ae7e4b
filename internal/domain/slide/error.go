package slide

import "errors"

var (
	ErrUnknownField    = errors.New("unknown slide field")
	ErrInvalidValue    = errors.New("invalid slide field value")
	ErrInvalidAlign    = errors.New("align must be left or right")
	ErrIndexOutOfRange = errors.New("slide index out of range")
	ErrLastSlide       = errors.New("the last slide cannot be removed")
)
