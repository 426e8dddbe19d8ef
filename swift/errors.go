package swift

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sagarc03/swiftcli"
)

// APIError represents a response with a status code the caller did not expect.
type APIError struct {
	Method     string
	Path       swiftcli.ObjectPath
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("swift: HTTP %d on %s %s", e.StatusCode, e.Method, e.Path)
	}
	return fmt.Sprintf("swift: HTTP %d on %s %s: %s", e.StatusCode, e.Method, e.Path, e.Body)
}

// Unwrap lets errors.Is(err, swiftcli.ErrUnexpectedStatus) match.
func (e *APIError) Unwrap() error {
	return swiftcli.ErrUnexpectedStatus
}

// Is reports whether target matches this error.
// It matches if target is an *APIError with the same StatusCode.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// IsNotFound returns true if the error is a 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Sentinel errors for common status codes. Use errors.Is() to check for these conditions.
var (
	// ErrNotFound is returned when the container or object does not exist (404).
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound}

	// ErrUnauthorized is returned when the token is rejected (401).
	ErrUnauthorized = &APIError{StatusCode: http.StatusUnauthorized}

	// ErrConflict is returned when deleting a non-empty container (409).
	ErrConflict = &APIError{StatusCode: http.StatusConflict}
)

// ErrObjectCorrupted is returned when transferred bytes do not match the Etag.
var ErrObjectCorrupted = errors.New("swift: object corrupted, checksum mismatch")

// AuthError is returned when the auth handshake fails.
type AuthError struct {
	StatusCode int
	Body       string
	Reason     string
}

func (e *AuthError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("swift: authentication failed: %s", e.Reason)
	}
	if e.Body == "" {
		return fmt.Sprintf("swift: authentication failed: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("swift: authentication failed: HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is(err, swiftcli.ErrAuthenticationFailed) match.
func (e *AuthError) Unwrap() error {
	return swiftcli.ErrAuthenticationFailed
}

// newAPIError builds an APIError from a response whose body has been read.
func newAPIError(method string, path swiftcli.ObjectPath, statusCode int, body []byte) error {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// transportError wraps a failure that happened before any status was received.
func transportError(method string, path swiftcli.ObjectPath, err error) error {
	return fmt.Errorf("%w: %s %s: %w", swiftcli.ErrTransport, method, path, err)
}
