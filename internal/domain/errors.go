// Package domain defines the pipeline's error taxonomy. Callers classify
// failures with errors.Is and decide severity: reference-data misses abort
// the run, everything else degrades to skipped entries, pairs or routes.
package domain

import "errors"

var (
	// ErrReferenceNotFound means a required lookup (program, currency)
	// matched zero rows. Fatal: no fetching starts without reference data.
	ErrReferenceNotFound = errors.New("reference data not found")

	// ErrRemoteFetch means the pricing API answered non-200 or the
	// transport failed. Recoverable: the (route, fare) pair contributes
	// zero rows and the run continues.
	ErrRemoteFetch = errors.New("remote fetch failed")

	// ErrMalformedEntry means a raw price entry could not be normalized
	// into a row. Recoverable per entry: the entry is skipped.
	ErrMalformedEntry = errors.New("malformed price entry")

	// ErrPersistence means the store rejected an upsert batch.
	// Recoverable per route: the batch is dropped and the run continues.
	ErrPersistence = errors.New("persistence failure")
)
