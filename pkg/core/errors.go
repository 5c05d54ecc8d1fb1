package core

import "errors"

// Common errors.
var (
	ErrReadOnly       = errors.New("store is in read-only mode")
	ErrNotFound       = errors.New("note not found")
	ErrInvalidKey     = errors.New("invalid store key")
	ErrUnknownCommand = errors.New("unknown command")
)
