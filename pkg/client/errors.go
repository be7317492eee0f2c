package client

import (
	"errors"
	"fmt"
)

// ErrorClass represents a classification of Fingrid API failures.
// The set is closed: every error crossing the client boundary carries
// exactly one of these classes.
type ErrorClass string

const (
	// ErrorClassCredential means no API key was resolvable from configuration.
	ErrorClassCredential ErrorClass = "credential"

	// ErrorClassNetwork represents transport-layer faults (DNS, refused
	// connections, timeouts).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassRateLimit means the API answered HTTP 429.
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassResponse covers non-200/429 statuses, non-JSON bodies, and
	// bodies missing the expected structure.
	ErrorClassResponse ErrorClass = "response"
)

// APIError is the error type returned for all classified fetch failures.
type APIError struct {
	Class      ErrorClass
	StatusCode int // set when an HTTP status was received
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("fingrid %s error (status %d): %s: %v",
			e.Class, e.StatusCode, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fingrid %s error: %s: %v", e.Class, e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fingrid %s error (status %d): %s",
			e.Class, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("fingrid %s error: %s", e.Class, e.Message)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

func newMissingCredentialError() *APIError {
	return &APIError{
		Class: ErrorClassCredential,
		Message: "no API key found; set the FINGRID_API_KEY " +
			"(or FINGRID_OPENDATA_API_KEY) environment variable",
	}
}

func newNetworkError(msg string, err error) *APIError {
	return &APIError{Class: ErrorClassNetwork, Message: msg, Err: err}
}

func newRateLimitError() *APIError {
	return &APIError{
		Class:   ErrorClassRateLimit,
		Message: "rate limit exceeded (10 requests/minute); wait a minute and try again",
	}
}

func newResponseError(msg string, status int, err error) *APIError {
	return &APIError{Class: ErrorClassResponse, StatusCode: status, Message: msg, Err: err}
}

// ClassOf returns the error class of err, or "" when err is not an *APIError.
func ClassOf(err error) ErrorClass {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Class
	}
	return ""
}

// IsMissingCredential reports whether err is a missing-credential error.
func IsMissingCredential(err error) bool { return ClassOf(err) == ErrorClassCredential }

// IsNetwork reports whether err is a transport-layer error.
func IsNetwork(err error) bool { return ClassOf(err) == ErrorClassNetwork }

// IsRateLimited reports whether err is an HTTP 429 error.
func IsRateLimited(err error) bool { return ClassOf(err) == ErrorClassRateLimit }

// IsInvalidResponse reports whether err is a malformed/unexpected response error.
func IsInvalidResponse(err error) bool { return ClassOf(err) == ErrorClassResponse }
