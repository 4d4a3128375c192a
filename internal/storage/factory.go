package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/storage/sqlite"
)

const (
	// BackendNone keeps no session; each command logs in again.
	BackendNone = "none"
	// BackendSQLite stores sessions in a SQLite database under state_dir.
	BackendSQLite = "sqlite"

	sessionsDBFileName = "sessions.db"
)

// NewFromConfig creates the session store selected by configuration.
func NewFromConfig() (SessionStore, error) {
	config.Load()
	return NewForBackend(config.Get("session_store", BackendSQLite), config.Get("state_dir", ""))
}

// NewForBackend creates a session store for backend rooted at stateDir.
// An unusable SQLite database falls back to the no-op store with a warning.
func NewForBackend(backend, stateDir string) (SessionStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendNone:
		return noopStore{}, nil
	case BackendSQLite:
		if strings.TrimSpace(stateDir) == "" {
			return nil, fmt.Errorf("session store: state_dir not configured")
		}
		store, err := sqlite.NewSessionStore(filepath.Join(stateDir, sessionsDBFileName))
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to open session store, sessions will not be kept: %v", err))
			return noopStore{}, nil
		}
		return store, nil
	default:
		colors.Warning(fmt.Sprintf("unknown session store '%s', sessions will not be kept", backend))
		return noopStore{}, nil
	}
}
