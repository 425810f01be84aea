package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCorpusNotReady indicates the corpus has not been loaded yet
	// or loaded empty. Callers should retry after the load completes.
	ErrCorpusNotReady = errors.New("corpus not ready")

	// ErrMissingReferenceDocument indicates a fixed enquiry route
	// fired but no booklet-type manual exists in the corpus. This is
	// a configuration gap, not a query failure.
	ErrMissingReferenceDocument = errors.New("reference document not found")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
