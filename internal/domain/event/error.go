package event

import "errors"

var (
	ErrUnknownField    = errors.New("unknown event field")
	ErrInvalidDateTime = errors.New("invalid event date or time")
	ErrIndexOutOfRange = errors.New("event index out of range")
)
