package service

import "errors"

// ErrServiceUnavailable indicates the AI service could not be reached or
// returned an API error (including request timeout).
var ErrServiceUnavailable = errors.New("enrichment service unavailable")

// ErrParse indicates the AI response could not be mapped to the data model.
var ErrParse = errors.New("enrichment response unparseable")
