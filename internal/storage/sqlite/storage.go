// Package sqlite persists login sessions between CLI invocations.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/api"
	_ "modernc.org/sqlite"
)

// SessionStore stores one session per profile, keyed by the service base URL.
type SessionStore struct {
	db  *sql.DB
	now func() time.Time
}

// storedCookie is the persisted subset of http.Cookie.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// NewSessionStore opens (creating if needed) the database at dbPath.
func NewSessionStore(dbPath string) (*SessionStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	store := &SessionStore{db: db, now: time.Now}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying SQLite connection.
func (s *SessionStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SessionStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Save stores sess under profile, replacing any previous session.
func (s *SessionStore) Save(ctx context.Context, profile string, sess *api.Session) error {
	if strings.TrimSpace(profile) == "" {
		return ErrInvalidProfile
	}
	if !sess.Valid() {
		return fmt.Errorf("sqlite storage: save: %w", api.ErrNoSession)
	}

	cookies, err := encodeCookies(sess.Cookies())
	if err != nil {
		return fmt.Errorf("sqlite storage: encode cookies: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO sessions (profile, name, email, cookies, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(profile) DO UPDATE SET
	name = excluded.name,
	email = excluded.email,
	cookies = excluded.cookies,
	created_at = excluded.created_at,
	updated_at = excluded.updated_at`,
		profile,
		sess.Name(),
		sess.Email(),
		cookies,
		formatTime(sess.CreatedAt()),
		formatTime(s.now()),
	)
	if err != nil {
		return fmt.Errorf("sqlite storage: save session: %w", err)
	}
	return nil
}

// Load returns the session stored for profile. An expired session is removed
// and reported as ErrSessionExpired.
func (s *SessionStore) Load(ctx context.Context, profile string) (*api.Session, error) {
	if strings.TrimSpace(profile) == "" {
		return nil, ErrInvalidProfile
	}

	var name, email, cookiesJSON, createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, email, cookies, created_at FROM sessions WHERE profile = ?`, profile,
	).Scan(&name, &email, &cookiesJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load session: %w", err)
	}

	cookies, err := decodeCookies(cookiesJSON)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: decode cookies: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: parse created_at: %w", err)
	}

	sess := api.RestoreSession(name, email, cookies, created)
	if sess.Expired(s.now()) {
		if err := s.Delete(ctx, profile); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	return sess, nil
}

// Delete removes the session stored for profile. Deleting a missing session is not an error.
func (s *SessionStore) Delete(ctx context.Context, profile string) error {
	if strings.TrimSpace(profile) == "" {
		return ErrInvalidProfile
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE profile = ?`, profile); err != nil {
		return fmt.Errorf("sqlite storage: delete session: %w", err)
	}
	return nil
}

func encodeCookies(cookies []*http.Cookie) (string, error) {
	out := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeCookies(data string) ([]*http.Cookie, error) {
	var stored []storedCookie
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return cookies, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
