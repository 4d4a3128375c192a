package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSession is returned when a call needs a session and none is active.
	ErrNoSession = errors.New("no active session")
	// ErrNoCandidates is returned by Match when called without ids.
	ErrNoCandidates = errors.New("match requires at least one candidate id")
	// ErrMatchNotFound is returned when the matched id cannot be hydrated.
	ErrMatchNotFound = errors.New("matched dog not found")
)

// AuthError is a failed login or logout. StatusCode is 0 for transport failures
// and for calls made without a session.
type AuthError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ServiceError is a failed breed, search, fetch or match call.
type ServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsAuth reports whether err is, or wraps, an AuthError.
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsService reports whether err is, or wraps, a ServiceError.
func IsService(err error) bool {
	var target *ServiceError
	return errors.As(err, &target)
}

// StatusCode extracts the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err means the session is missing or no longer accepted.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrNoSession) || StatusCode(err) == http.StatusUnauthorized
}

// statusErr builds the wrapped cause for a non-2xx response.
func statusErr(status string, body []byte) error {
	const maxBody = 256
	text := string(body)
	if len(text) > maxBody {
		text = text[:maxBody] + "..."
	}
	if text == "" {
		return fmt.Errorf("unexpected response %s", status)
	}
	return fmt.Errorf("unexpected response %s: %s", status, text)
}
