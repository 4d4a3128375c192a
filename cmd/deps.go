package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/storage"
)

// Deps are the collaborators shared by the subcommands.
type Deps struct {
	// NewService builds the remote client.
	NewService func() api.Service
	// OpenStore opens the session store. Callers close it.
	OpenStore func() (storage.SessionStore, error)
	// Profile keys stored sessions. Sessions belong to one service.
	Profile func() string
	// Credentials returns the configured name and email.
	Credentials func() (name, email string)
}

// DefaultDeps reads everything from the global configuration at call time.
func DefaultDeps() *Deps {
	return &Deps{
		NewService: func() api.Service {
			return api.New(api.Options{
				BaseURL:   config.Get("base_url", config.DefaultBaseURL),
				Timeout:   config.GetSeconds("request_timeout"),
				UserAgent: config.Get("user_agent", ""),
				TraceHTTP: config.GetBool("trace_http", false),
			})
		},
		OpenStore: storage.NewFromConfig,
		Profile: func() string {
			return config.Get("base_url", config.DefaultBaseURL)
		},
		Credentials: func() (string, string) {
			return config.Get("name", ""), config.Get("email", "")
		},
	}
}

var defaultDeps = DefaultDeps()

var errNotSignedIn = errors.New("not signed in: run 'pawmatch login' or pass --name and --email")

// withSession runs fn with a live session: the one stored for the profile or a
// fresh login with the configured credentials. A rejected session is dropped
// from the store.
func withSession(ctx context.Context, deps *Deps, fn func(svc api.Service, sess *api.Session) error) error {
	store, err := deps.OpenStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	svc := deps.NewService()
	profile := deps.Profile()

	sess, err := store.Load(ctx, profile)
	switch {
	case err == nil && sess.Valid():
		colors.Debug("using stored session for", sess.Email())
	case err == nil, errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, storage.ErrSessionExpired):
		if errors.Is(err, storage.ErrSessionExpired) {
			colors.Debug("stored session expired, signing in again")
		}
		name, email := deps.Credentials()
		sess, err = signIn(ctx, svc, store, profile, name, email)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("load session: %w", err)
	}

	err = fn(svc, sess)
	if api.IsUnauthorized(err) {
		if delErr := store.Delete(ctx, profile); delErr != nil {
			logging.Warn("failed to drop rejected session", "error", delErr)
		}
		return fmt.Errorf("session rejected, run 'pawmatch login' again: %w", err)
	}
	return err
}

// signIn logs in and keeps the session in store. A store failure only warns.
func signIn(ctx context.Context, svc api.Service, store storage.SessionStore, profile, name, email string) (*api.Session, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, errNotSignedIn
	}
	sess, err := svc.Login(ctx, strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if err := store.Save(ctx, profile, sess); err != nil {
		console.Warning(fmt.Sprintf("failed to save session: %v", err))
	}
	logging.Info("signed in", "profile", profile)
	return sess, nil
}
