package models

import "errors"

// Sentinel errors distinguishing per-item failure classes. Callers decide with
// errors.Is whether an item can be retried later (match not yet finished) or
// never (duplicate, already processed).
var (
	// ErrInvalidInput marks rejected input: missing team identity, negative or
	// NaN statistics, malformed scores. The single item is skipped.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMatchNotFinished marks a resolution attempt against a match that is
	// not yet in a terminal finished state. Retry on a later sweep.
	ErrMatchNotFinished = errors.New("match not finished")

	// ErrDuplicatePending marks an attempt to open a second PENDING prediction
	// for the same (match, model variant) pair.
	ErrDuplicatePending = errors.New("pending prediction already exists")

	// ErrAlreadyProcessed marks a finished match whose rating update was
	// already applied.
	ErrAlreadyProcessed = errors.New("match already processed")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")
)
