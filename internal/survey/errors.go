package survey

import "errors"

// Sentinel errors for the ingest failure modes. Callers distinguish them
// with errors.Is; both are fatal and mean no figure is written.
var (
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrBadRecord indicates the CSV body could not be used: structurally
	// malformed, or no row survived validation.
	ErrBadRecord = errors.New("unusable records")
)
