// Package domain holds errors shared across service boundaries.
package domain

import "errors"

// Domain errors.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates invalid caller input.
	ErrValidation = errors.New("validation error")

	// ErrCatalogUnreachable indicates the catalog service could not be
	// reached at all, as opposed to answering with an error.
	ErrCatalogUnreachable = errors.New("could not reach catalog service")

	// ErrMalformedCompletion indicates the inference provider answered with
	// a response missing the expected text content.
	ErrMalformedCompletion = errors.New("malformed completion response")
)
