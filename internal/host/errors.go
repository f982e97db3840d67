package host

import "errors"

var (
	// ErrUnknownClass indicates no class is registered under the requested name.
	ErrUnknownClass = errors.New("host: unknown class")
	// ErrClassExists indicates a class name is already registered.
	ErrClassExists = errors.New("host: class already registered")
	// ErrUnknownMethod indicates the class does not bind the requested method.
	ErrUnknownMethod = errors.New("host: unknown method")
	// ErrArgumentCount indicates a call supplied the wrong number of arguments.
	ErrArgumentCount = errors.New("host: wrong argument count")
	// ErrArgumentType indicates an argument could not be converted.
	ErrArgumentType = errors.New("host: argument type mismatch")
	// ErrReleased indicates a call through a handle whose last reference was dropped.
	ErrReleased = errors.New("host: handle released")
)
