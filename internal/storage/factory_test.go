package storage

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var errOut bytes.Buffer
	colors.SetOutput(&bytes.Buffer{}, &errOut)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &errOut
}

func TestNewForBackendNone(t *testing.T) {
	store, err := NewForBackend("none", t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	sess := api.RestoreSession("Ada", "", []*http.Cookie{{Name: "t", Value: "1"}}, time.Now())
	require.NoError(t, store.Save(ctx, "p", sess))

	_, err = store.Load(ctx, "p")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, store.Delete(ctx, "p"))
	assert.NoError(t, store.Close())
}

func TestNewForBackendSQLite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewForBackend(" SQLite ", dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok := store.(*sqlite.SessionStore)
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(dir, sessionsDBFileName))
}

func TestNewForBackendSQLiteRequiresStateDir(t *testing.T) {
	_, err := NewForBackend(BackendSQLite, "")
	assert.Error(t, err)
}

func TestNewForBackendSQLiteFallsBackWhenUnusable(t *testing.T) {
	errOut := captureWarnings(t)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store, err := NewForBackend(BackendSQLite, blocker)
	require.NoError(t, err)

	assert.IsType(t, noopStore{}, store)
	assert.Contains(t, errOut.String(), "failed to open session store")
}

func TestNewForBackendUnknown(t *testing.T) {
	errOut := captureWarnings(t)

	store, err := NewForBackend("redis", t.TempDir())
	require.NoError(t, err)

	assert.IsType(t, noopStore{}, store)
	assert.Contains(t, errOut.String(), "unknown session store 'redis'")
}
