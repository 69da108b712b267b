package schedule

import "errors"

var (
	// ErrNilGrid indicates FromGrid was called without a grid.
	ErrNilGrid = errors.New("schedule: grid is nil")
	// ErrUnknownFormat indicates an encoder name outside json/yaml/cbor.
	ErrUnknownFormat = errors.New("schedule: unknown encoding format")
)
