package register

import "errors"

// Sentinel errors returned by store operations.
var (
	// ErrInvalidRegisterName indicates a name outside the valid charset.
	ErrInvalidRegisterName = errors.New("invalid register name")

	// ErrMissingCursorIndex indicates a multicursor-dependent operation
	// without a usable cursor index.
	ErrMissingCursorIndex = errors.New("missing multicursor index")
)
