package nav

import "errors"

// Sentinel errors for the navigation engine. Callers distinguish declared
// failures with errors.Is; all of them are ordinary result values, none is
// fatal to the process.
var (
	// ErrNotFound indicates the requested path or root does not exist
	// (or is not a directory where one is required).
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a blank query or name. Out-of-range
	// numeric arguments are never invalid - they are clamped instead.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFoundInFile indicates the declaration search exhausted the file
	// without matching any declaration shape. This is an expected outcome,
	// not an exceptional one.
	ErrNotFoundInFile = errors.New("not found in file")

	// ErrBodyNotFound indicates the declaration line was found but no
	// opening delimiter appeared within the scan window. Distinct from
	// ErrNotFoundInFile so callers can decide between retrying with a
	// different name and giving up.
	ErrBodyNotFound = errors.New("body not found")
)
