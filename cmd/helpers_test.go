package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testProfile = "http://dogs.test"

type testEnv struct {
	svc      *api.MockService
	deps     *Deps
	stateDir string
	console  *bytes.Buffer
}

// newTestEnv wires a mock service and a SQLite store in a temp dir.
func newTestEnv(t *testing.T, name, email string) *testEnv {
	t.Helper()
	env := &testEnv{
		svc:      new(api.MockService),
		stateDir: t.TempDir(),
		console:  &bytes.Buffer{},
	}
	env.deps = &Deps{
		NewService: func() api.Service { return env.svc },
		OpenStore: func() (storage.SessionStore, error) {
			return storage.NewForBackend(storage.BackendSQLite, env.stateDir)
		},
		Profile:     func() string { return testProfile },
		Credentials: func() (string, string) { return name, email },
	}
	colors.SetOutput(env.console, env.console)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return env
}

func (e *testEnv) store(t *testing.T) storage.SessionStore {
	t.Helper()
	store, err := e.deps.OpenStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func (e *testEnv) saveSession(t *testing.T) *api.Session {
	t.Helper()
	sess := newSession("Ada", "ada@example.com")
	require.NoError(t, e.store(t).Save(context.Background(), testProfile, sess))
	return sess
}

func newSession(name, email string) *api.Session {
	return api.RestoreSession(name, email, nil, time.Now())
}

func sampleDogs() []domain.Dog {
	return []domain.Dog{
		{ID: "d1", Name: "Rex", Breed: "Beagle", Age: 3, ZipCode: "10001"},
		{ID: "d2", Name: "Bo", Breed: "Boxer", Age: 7, ZipCode: "94105"},
	}
}

// run executes c with args and returns what it wrote to its own output.
func run(c *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(append([]string{}, args...))
	err := c.Execute()
	return out.String(), err
}
