package formcontrol

import "errors"

var (
	ErrUnknownField    = errors.New("unknown form field")
	ErrInvalidColor    = errors.New("color must look like #rrggbb")
	ErrEmptyLabel      = errors.New("field label is empty")
	ErrDuplicateField  = errors.New("field with this label already exists")
	ErrIndexOutOfRange = errors.New("index out of range")
)
