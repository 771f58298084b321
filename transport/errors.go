package transport

import (
	"context"
	"errors"
	"fmt"
)

// AuthError is returned when the service answers 401: the id/token pair was rejected.
type AuthError struct {
	Method string
	Path   string
	Body   any
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("transport: %s %s: invalid credentials", e.Method, e.Path)
}

func (e *AuthError) ErrorKind() string { return "auth_error" }

// PermissionError is returned when the service answers 405: the
// credentials are valid but not allowed to call this method on this path.
type PermissionError struct {
	Method string
	Path   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("transport: %s %s: method not permitted for these credentials", e.Method, e.Path)
}

func (e *PermissionError) ErrorKind() string { return "permission_error" }

// APIError is any other non-2xx answer. Body is the decoded JSON body when
// the service sent JSON, otherwise the raw text.
type APIError struct {
	Status int
	Body   any
	Method string
	Path   string
}

func (e *APIError) Error() string {
	switch b := e.Body.(type) {
	case nil:
		return fmt.Sprintf("transport: %s %s: status %d", e.Method, e.Path, e.Status)
	case string:
		return fmt.Sprintf("transport: %s %s: status %d: %s", e.Method, e.Path, e.Status, b)
	default:
		return fmt.Sprintf("transport: %s %s: status %d: %v", e.Method, e.Path, e.Status, b)
	}
}

func (e *APIError) ErrorKind() string { return "api_error" }

// RequestError wraps a failure to complete the exchange at all (DNS,
// connection reset, context deadline).
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) ErrorKind() string { return "request_error" }

// IsAuthError reports whether err is or wraps an *AuthError.
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsPermissionError reports whether err is or wraps a *PermissionError.
func IsPermissionError(err error) bool {
	var e *PermissionError
	return errors.As(err, &e)
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status
	case IsAuthError(err):
		return 401
	case IsPermissionError(err):
		return 405
	}
	return 0
}

// IsRemote reports whether err is a failure of the remote exchange
// (auth, permission, non-2xx status, network). These are the only errors
// best-effort lookups may swallow; input validation and schema errors are not remote.
// A cancelled or expired caller context is never remote, even when it
// surfaces as a *RequestError.
func IsRemote(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var reqErr *RequestError
	return IsAuthError(err) || IsPermissionError(err) || IsAPIError(err) || errors.As(err, &reqErr)
}
