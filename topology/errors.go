package topology

import "errors"

var (
	// devices / raid / group size combination is unsupported or inconsistent.
	ErrInvalidTopology = errors.New("invalid topology")
	// device count is not evenly divisible by the group size.
	ErrInvalidGroupSize = errors.New("invalid group size")
	// a configuration that is deliberately not supported (yet).
	ErrNotImplemented = errors.New("not implemented")
)
