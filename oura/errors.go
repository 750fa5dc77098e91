package oura

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// maxErrorBody caps how much of an error response body is carried into an
// error message. Longer bodies are truncated with an ellipsis.
const maxErrorBody = 1000

var (
	// ErrClientClosed is returned when a request is attempted on a client
	// after Close has been called.
	ErrClientClosed = errors.New("oura: client is closed")

	// ErrDocumentNotSupported is returned by Get on resources that do not
	// expose single-document lookups (heart rate).
	ErrDocumentNotSupported = errors.New("oura: resource does not support document fetch")

	// ErrTooManyPages is returned when a List call exceeds the page limit
	// configured with WithPageLimit.
	ErrTooManyPages = errors.New("oura: pagination exceeded page limit")
)

// RangeError reports an invalid date or datetime range: a bound failed to
// parse, or the start falls after the end once defaults are applied. It is
// raised before any request is issued.
type RangeError struct {
	Start    string
	End      string
	Datetime bool  // Bounds are datetimes rather than calendar dates
	Err      error // Underlying parse error, if any
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oura invalid range: %v", e.Err)
	}
	noun := "date"
	if e.Datetime {
		noun = "datetime"
	}
	return fmt.Sprintf("oura invalid range: start %s greater than end %s: %s > %s", noun, noun, e.Start, e.End)
}

// Unwrap implements errors.Unwrap so the underlying error can be extracted.
func (e *RangeError) Unwrap() error {
	return e.Err
}

// APIError represents an error returned by the Oura API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	Err        error // Underlying error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("oura api error: %d - %s at %s", e.StatusCode, e.Message, e.URL)
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap so the underlying error can be extracted.
func (e *APIError) Unwrap() error {
	return e.Err
}

// RateLimitError represents an error indicating that the client is rate-limited.
// It can occur locally before the request is made or as a response from the API.
type RateLimitError struct {
	RetryAfter int // Suggested retry after duration in seconds, if provided by the API
	Err        error
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("oura rate limit exceeded: retry after %d seconds", e.RetryAfter)
	}
	if e.Err != nil {
		return fmt.Sprintf("oura rate limit exceeded: %v", e.Err)
	}
	return "oura rate limit exceeded"
}

// Unwrap implements errors.Unwrap.
func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// AuthError represents an authentication or authorization failure (401, 403).
type AuthError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := fmt.Sprintf("oura auth error (%d): %s", e.StatusCode, e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(" - %v", e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that could not be decoded as JSON.
// It is a transport-level failure: the request reached the API but the
// payload was unusable.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("oura decode error: %v at %s", e.Err, e.URL)
}

// Unwrap implements errors.Unwrap.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// mapHTTPError is a helper to convert an unsuccessful HTTP response to an appropriate custom error.
func mapHTTPError(resp *http.Response, body []byte) error {
	msg := string(body)
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}

	baseErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		URL:        resp.Request.URL.String(),
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{
			StatusCode: resp.StatusCode,
			Message:    "authentication failed or forbidden",
			Err:        baseErr,
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        baseErr,
		}
	default:
		return baseErr
	}
}

// parseRetryAfter reads a Retry-After header value as whole seconds.
// Missing or malformed values map to zero.
func parseRetryAfter(v string) int {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
