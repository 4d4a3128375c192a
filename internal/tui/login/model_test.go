package login

import (
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, svc api.Service, opts ...func(*Options)) *Model {
	t.Helper()
	o := Options{Service: svc, ToastDuration: -1}
	for _, fn := range opts {
		fn(&o)
	}
	m := NewModel(o)
	t.Cleanup(m.Close)
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// run executes cmd, expanding batches, and returns the produced messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findLoginResult(msgs []tea.Msg) (loginResultMsg, bool) {
	for _, msg := range msgs {
		if res, ok := msg.(loginResultMsg); ok {
			return res, true
		}
	}
	return loginResultMsg{}, false
}

func TestSubmitLogsIn(t *testing.T) {
	svc := new(api.MockService)
	sess := api.RestoreSession("Ada", "ada@example.com", []*http.Cookie{{Name: "t", Value: "1"}}, time.Now())
	svc.On("Login", mock.Anything, "Ada", "ada@example.com").Return(sess, nil)
	m := newTestModel(t, svc)

	typeText(m, "Ada")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "ada@example.com")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitting())
	res, ok := findLoginResult(run(cmd))
	require.True(t, ok)

	_, next := m.Update(res)
	assert.False(t, m.Submitting())
	require.NotNil(t, next)
	assert.Equal(t, LoggedInMsg{Session: sess}, next())
	svc.AssertExpectations(t)
}

func TestPrefilledFormSubmits(t *testing.T) {
	svc := new(api.MockService)
	svc.On("Login", mock.Anything, "Ada", "ada@example.com").Return(api.RestoreSession("Ada", "", nil, time.Now()), nil)
	m := newTestModel(t, svc, func(o *Options) {
		o.Name = " Ada "
		o.Email = "ada@example.com"
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, ok := findLoginResult(run(cmd))
	assert.True(t, ok)
	svc.AssertExpectations(t)
}

func TestSubmitRequiresBothFields(t *testing.T) {
	svc := new(api.MockService)
	m := newTestModel(t, svc)
	typeText(m, "Ada")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.Submitting())
	assert.Equal(t, "Please enter your name and email", m.Toast().Text)
	assert.Equal(t, errors.MessageTypeWarning, m.Toast().Type)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginFailureShowsToast(t *testing.T) {
	svc := new(api.MockService)
	svc.On("Login", mock.Anything, "Ada", "ada@example.com").
		Return(nil, &api.AuthError{Op: "login", StatusCode: http.StatusUnauthorized, Err: stderrors.New("nope")})
	m := newTestModel(t, svc, func(o *Options) {
		o.Name = "Ada"
		o.Email = "ada@example.com"
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res, ok := findLoginResult(run(cmd))
	require.True(t, ok)
	_, next := m.Update(res)

	assert.Nil(t, next)
	assert.False(t, m.Submitting())
	assert.Equal(t, "Failed to login", m.Toast().Text)
}

func TestKeysIgnoredWhileSubmitting(t *testing.T) {
	svc := new(api.MockService)
	m := newTestModel(t, svc, func(o *Options) {
		o.Name = "Ada"
		o.Email = "ada@example.com"
	})
	m.submitting = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "x")

	assert.Nil(t, cmd)
	assert.Equal(t, "Ada", m.name.Value())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, new(api.MockService))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNoticeShownOnInit(t *testing.T) {
	m := newTestModel(t, new(api.MockService), func(o *Options) { o.Notice = "Your session has expired" })

	m.Init()

	assert.Equal(t, "Your session has expired", m.Toast().Text)
	assert.Contains(t, m.View(), "Your session has expired")
}

func TestToastExpiry(t *testing.T) {
	m := newTestModel(t, new(api.MockService))
	m.notify(errors.MessageTypeError, "first")
	first := m.Toast().ID
	m.notify(errors.MessageTypeError, "second")

	m.Update(toastExpiredMsg{mount: m.mount, id: first})
	assert.Equal(t, "second", m.Toast().Text)
	m.Update(toastExpiredMsg{mount: m.mount, id: m.Toast().ID})
	assert.Empty(t, m.Toast().Text)
}

func TestMessagesFromAnotherFormAreIgnored(t *testing.T) {
	old := newTestModel(t, new(api.MockService))
	m := newTestModel(t, new(api.MockService))
	m.notify(errors.MessageTypeInfo, "hello")

	m.Update(toastExpiredMsg{mount: old.mount, id: m.Toast().ID})
	_, cmd := m.Update(loginResultMsg{mount: old.mount, err: assert.AnError})

	assert.Nil(t, cmd)
	assert.Equal(t, "hello", m.Toast().Text)
}

func TestViewShowsForm(t *testing.T) {
	m := newTestModel(t, new(api.MockService), func(o *Options) { o.Name = "Ada" })
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()

	assert.Contains(t, view, "Welcome to pawmatch")
	assert.Contains(t, view, "Ada")
}
