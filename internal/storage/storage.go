// Package storage selects where CLI sessions are kept between invocations.
package storage

import (
	"context"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/storage/sqlite"
)

// SessionStore persists a login session per profile.
type SessionStore interface {
	Save(ctx context.Context, profile string, sess *api.Session) error
	Load(ctx context.Context, profile string) (*api.Session, error)
	Delete(ctx context.Context, profile string) error
	Close() error
}

var (
	// ErrSessionNotFound is returned by Load when nothing is stored.
	ErrSessionNotFound = sqlite.ErrSessionNotFound
	// ErrSessionExpired is returned by Load when the stored session has expired.
	ErrSessionExpired = sqlite.ErrSessionExpired
)

var _ SessionStore = (*sqlite.SessionStore)(nil)

// noopStore keeps nothing; every Load misses.
type noopStore struct{}

func (noopStore) Save(context.Context, string, *api.Session) error { return nil }

func (noopStore) Load(context.Context, string) (*api.Session, error) {
	return nil, ErrSessionNotFound
}

func (noopStore) Delete(context.Context, string) error { return nil }
func (noopStore) Close() error                         { return nil }
