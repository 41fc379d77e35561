package transport

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is reported when an error body carries neither
// "message" nor "error_description".
const UnknownErrorMessage = "unknown error"

// invalidResponseMessage is the fixed text of InvalidResponseError.
const invalidResponseMessage = "invalid JSON response from UWAY Auth"

// ConfigurationError reports that a Client cannot be built, for example
// because no HTTP capability was supplied. No request is attempted.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "transport configuration error: " + e.Reason
}

// TransportError wraps a failure below HTTP: DNS, connect, TLS, timeout, or
// an interrupted body read.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "HTTP request failed: " + e.Err.Error()
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvalidResponseError reports a response body that is not a JSON object.
// It is returned regardless of the status code.
type InvalidResponseError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	return invalidResponseMessage
}

// Unwrap returns the JSON decoding error, if any.
func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// APIError is a JSON error object returned with a status of 400 or above.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("UWAY Auth returned HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is, or wraps, an APIError with the given
// status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}
