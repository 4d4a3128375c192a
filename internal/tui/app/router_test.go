package app

import (
	"errors"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/tui/login"
	"github.com/cristianoliveira/pawmatch/internal/tui/state"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSession() *api.Session {
	return api.RestoreSession("Ada", "ada@example.com", []*http.Cookie{{Name: "t", Value: "1"}}, time.Now())
}

func newTestRouter(t *testing.T, sess *api.Session) *Model {
	t.Helper()
	m := NewModel(Options{
		Service:  new(api.MockService),
		Settings: Settings{ToastDuration: -1},
		Session:  sess,
	})
	return m
}

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		sess  *api.Session
		want  Route
	}{
		{"entry", RouteLogin, nil, RouteLogin},
		{"entry with session", RouteLogin, validSession(), RouteLogin},
		{"search with session", RouteSearch, validSession(), RouteSearch},
		{"search without session", RouteSearch, nil, RouteLogin},
		{"unknown route", Route("/nowhere"), validSession(), RouteLogin},
		{"empty route", Route(""), nil, RouteLogin},
		{"search with nil session", RouteSearch, (*api.Session)(nil), RouteLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRoute(tt.route, tt.sess))
		})
	}
}

func TestStartsAtEntryWithoutSession(t *testing.T) {
	m := newTestRouter(t, nil)

	assert.Equal(t, RouteLogin, m.Route())
	assert.NotNil(t, m.login)
	assert.Nil(t, m.search)
}

func TestStartsAtSearchWithSession(t *testing.T) {
	m := newTestRouter(t, validSession())

	assert.Equal(t, RouteSearch, m.Route())
	assert.NotNil(t, m.search)
}

func TestNavigateWithoutSessionRedirects(t *testing.T) {
	m := newTestRouter(t, nil)

	m.Navigate(RouteSearch)

	assert.Equal(t, RouteLogin, m.Route())
}

func TestLoggedInOpensSearch(t *testing.T) {
	m := newTestRouter(t, nil)
	sess := validSession()

	_, cmd := m.Update(login.LoggedInMsg{Session: sess})

	require.NotNil(t, cmd)
	assert.Equal(t, RouteSearch, m.Route())
	assert.Same(t, sess, m.Session())
	assert.Same(t, sess, m.search.Session())
}

func TestLoggedOutReturnsToEntry(t *testing.T) {
	m := newTestRouter(t, validSession())

	m.Update(state.LoggedOutMsg{})

	assert.Equal(t, RouteLogin, m.Route())
	assert.Nil(t, m.Session())
	assert.Nil(t, m.search)
}

func TestSessionExpiredShowsNotice(t *testing.T) {
	m := newTestRouter(t, validSession())

	m.Update(state.SessionExpiredMsg{})

	assert.Equal(t, RouteLogin, m.Route())
	assert.Nil(t, m.Session())
	assert.Equal(t, sessionExpiredNotice, m.login.Toast().Text)
}

func TestRemountClearsFavorites(t *testing.T) {
	m := newTestRouter(t, validSession())
	first := m.search

	m.Update(state.LoggedOutMsg{})
	m.Update(login.LoggedInMsg{Session: validSession()})

	assert.NotSame(t, first, m.search)
	assert.Empty(t, m.search.Favorites())
}

// collect runs cmd and every command nested in batches, returning the leaf messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func TestClosedSearchViewResponsesDoNotReachNextView(t *testing.T) {
	svc := new(api.MockService)
	svc.On("ListBreeds", mock.Anything, mock.Anything).Return([]string{"Pug"}, nil)
	svc.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.SearchResult{}, &api.ServiceError{Op: "search", Err: errors.New("context canceled")})
	m := NewModel(Options{
		Service:  svc,
		Settings: Settings{ToastDuration: -1},
		Session:  validSession(),
	})
	oldInit := m.Init()

	m.Update(state.LoggedOutMsg{})
	m.Update(login.LoggedInMsg{Session: validSession()})
	require.Equal(t, RouteSearch, m.Route())
	require.True(t, m.search.Loading())

	for _, msg := range collect(oldInit) {
		m.Update(msg)
	}

	assert.True(t, m.search.Loading())
	assert.Empty(t, m.search.Toast().Text)
	assert.Nil(t, m.search.Catalog())
}

func TestWindowSizeReplayedAfterNavigation(t *testing.T) {
	m := newTestRouter(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := m.Navigate(RouteLogin)

	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var found bool
		for _, c := range batch {
			if c == nil {
				continue
			}
			if size, ok := c().(tea.WindowSizeMsg); ok {
				found = true
				assert.Equal(t, 120, size.Width)
			}
		}
		assert.True(t, found)
	} else {
		assert.Equal(t, tea.WindowSizeMsg{Width: 120, Height: 40}, msg)
	}
}

func TestViewDelegatesToActiveView(t *testing.T) {
	m := newTestRouter(t, nil)
	assert.Contains(t, m.View(), "Welcome to pawmatch")
}
