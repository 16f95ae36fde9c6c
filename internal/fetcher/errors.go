package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of an upstream provider failure
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the provider rejected the request with HTTP 429
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeAuth indicates missing or rejected credentials (HTTP 401/403)
	ErrorTypeAuth ErrorType = "auth"
	// ErrorTypeClient indicates any other client error (HTTP 4xx)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates the payload was received but could not be interpreted
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTimeout indicates the request deadline expired
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// FetchError is an upstream failure reported by a data provider.
type FetchError struct {
	Provider   string
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	prefix := string(e.Type) + " error"
	if e.Provider != "" {
		prefix = e.Provider + " " + prefix
	}
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", prefix, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", prefix, msg)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError wraps a transport failure. Context deadline and cancellation
// errors are reported as timeouts.
func NewNetworkError(provider string, cause error) *FetchError {
	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(cause, context.Canceled) {
		return NewTimeoutError(provider, cause)
	}
	return &FetchError{
		Provider: provider,
		Type:     ErrorTypeNetwork,
		Message:  "network request failed",
		Cause:    cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(provider string, cause error) *FetchError {
	return &FetchError{
		Provider: provider,
		Type:     ErrorTypeTimeout,
		Message:  "request timed out",
		Cause:    cause,
	}
}

// NewValidationError creates a validation error
func NewValidationError(provider, message string) *FetchError {
	return &FetchError{
		Provider: provider,
		Type:     ErrorTypeValidation,
		Message:  message,
	}
}

// ClassifyHTTPError maps a non-success status code to a FetchError
func ClassifyHTTPError(provider string, statusCode int) *FetchError {
	e := &FetchError{Provider: provider, StatusCode: statusCode}
	switch {
	case statusCode == http.StatusTooManyRequests:
		e.Type, e.Message = ErrorTypeRateLimit, "rate limit exceeded"
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Type, e.Message = ErrorTypeAuth, "credentials rejected"
	case statusCode >= 500:
		e.Type, e.Message = ErrorTypeServer, "server returned an error"
	case statusCode >= 400:
		e.Type, e.Message = ErrorTypeClient, fmt.Sprintf("client error: HTTP %d", statusCode)
	default:
		e.Type, e.Message = ErrorTypeUnknown, fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return e
}
