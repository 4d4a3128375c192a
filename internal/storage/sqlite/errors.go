package sqlite

import "errors"

var (
	// ErrSessionNotFound indicates no session is stored for a profile.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates the stored session's cookies have expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidProfile indicates an empty profile key.
	ErrInvalidProfile = errors.New("invalid profile")
)
