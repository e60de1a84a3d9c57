package complexity

import "errors"

var (
	// ErrUnknownStructure indicates a structure name outside the fixed catalog.
	ErrUnknownStructure = errors.New("complexity: unknown data structure")
	// ErrUnknownOperation indicates an operation the structure does not define.
	ErrUnknownOperation = errors.New("complexity: unknown operation")
)
