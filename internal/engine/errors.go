package engine

import "errors"

var (
	// ErrUnsafePath indicates a section path escapes the output directory.
	ErrUnsafePath = errors.New("unsafe path")

	// ErrOutputDirMissing indicates the output directory does not exist.
	ErrOutputDirMissing = errors.New("output directory not found")
)
