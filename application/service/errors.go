package service

import "errors"

var (
	// ErrEnrichmentFailed indicates an enrichment attempt failed and nothing
	// was persisted. Wraps the underlying unavailability or parse error.
	ErrEnrichmentFailed = errors.New("enrichment failed")

	// ErrValidation indicates invalid caller input.
	ErrValidation = errors.New("validation failed")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("firmscope: client is closed")
)
