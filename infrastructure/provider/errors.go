package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/firmscope/firmscope/domain/service"
)

// ProviderError wraps provider errors with additional context.
type ProviderError struct {
	operation  string
	statusCode int
	message    string
	cause      error
}

// NewProviderError creates a new ProviderError.
func NewProviderError(operation string, statusCode int, message string, cause error) *ProviderError {
	return &ProviderError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.cause
}

// Operation returns the operation that failed.
func (e *ProviderError) Operation() string { return e.operation }

// StatusCode returns the HTTP status code if available.
func (e *ProviderError) StatusCode() int { return e.statusCode }

// wrapError converts a raw API error into a ProviderError. Transport and
// availability failures additionally satisfy
// errors.Is(err, service.ErrServiceUnavailable) so callers can distinguish
// them from malformed responses.
func wrapError(operation string, err error) error {
	statusCode := 0
	message := err.Error()

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var genaiErr genai.APIError
	switch {
	case errors.As(err, &apiErr):
		statusCode = apiErr.HTTPStatusCode
		message = apiErr.Message
	case errors.As(err, &reqErr):
		statusCode = reqErr.HTTPStatusCode
	case errors.As(err, &genaiErr):
		statusCode = genaiErr.Code
		message = genaiErr.Message
	}

	perr := NewProviderError(operation, statusCode, message, err)
	if isUnavailable(err, statusCode) {
		return fmt.Errorf("%w: %w", service.ErrServiceUnavailable, perr)
	}
	return perr
}

// isUnavailable reports whether the failure is a connectivity, timeout or
// upstream availability problem rather than a malformed request or response.
func isUnavailable(err error, statusCode int) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	return false
}
