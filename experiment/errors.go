package experiment

import "errors"

// Every failure in this package wraps one of these sentinels, so callers can
// errors.Is against the failure class while the message carries the offending
// file, realisation, and column indices.
var (
	// ErrUnknownChain indicates a chain classification that matches neither
	// recorded file convention.
	ErrUnknownChain = errors.New("unknown chain classification")

	// ErrColumnRange indicates a column index outside the schema bounds.
	ErrColumnRange = errors.New("column index out of schema range")

	// ErrEmptyDataset indicates an operation attempted on a table with zero
	// usable rows.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrMalformedInput indicates a source file missing expected columns or
	// rows, or holding non-numeric data where numeric was expected.
	ErrMalformedInput = errors.New("malformed input")
)
