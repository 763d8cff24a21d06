package modules

import "errors"

var (
	ErrNotFound        = errors.New("config value not found")
	ErrInvalidKey      = errors.New("invalid config key")
	ErrNotContainer    = errors.New("path descends through a scalar value")
	ErrAssignRoot      = errors.New("cannot assign to the root")
	ErrIndexOutOfRange = errors.New("list index out of range")
)
