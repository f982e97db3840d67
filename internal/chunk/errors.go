package chunk

import "errors"

var (
	// ErrInvalidTileRange indicates a negative tile range upper bound.
	ErrInvalidTileRange = errors.New("chunk: max tile must be non-negative")
	// ErrUnknownAlgorithm indicates no PRNG is registered under the configured name.
	ErrUnknownAlgorithm = errors.New("chunk: unknown random algorithm")
)
