// Package login is the sign-in view.
package login

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/errors"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/tui/render"
)

const (
	defaultToastDuration = 5 * time.Second
	inputWidth           = 32

	msgLoginFailed   = "Failed to login"
	msgMissingFields = "Please enter your name and email"
)

// LoggedInMsg is sent when the service accepted the credentials.
type LoggedInMsg struct {
	Session *api.Session
}

// loginResultMsg and toastExpiredMsg carry the mount id of the form that
// issued them; another form ignores them.
type loginResultMsg struct {
	mount   uint64
	session *api.Session
	err     error
}

type toastExpiredMsg struct {
	mount uint64
	id    int
}

var mounts atomic.Uint64

// Options configures the login view.
type Options struct {
	Service api.Service
	// Name and Email prefill the form.
	Name  string
	Email string
	// Notice is shown as an info toast when the view opens.
	Notice        string
	ToastDuration time.Duration
	Context       context.Context
}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// Model is the login form.
type Model struct {
	mount uint64

	svc    api.Service
	ctx    context.Context
	cancel context.CancelFunc
	log    logging.Logger

	name       textinput.Model
	email      textinput.Model
	focusEmail bool
	submitting bool
	spinner    spinner.Model
	keys       keyMap

	errorHandler  *errors.TUIHandler
	toast         errors.Message
	toastDuration time.Duration
	notice        string
	width         int
	height        int
}

// NewModel creates the login view.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	toastDuration := opts.ToastDuration
	if toastDuration == 0 {
		toastDuration = defaultToastDuration
	}

	m := &Model{
		mount:         mounts.Add(1),
		svc:           opts.Service,
		ctx:           ctx,
		cancel:        cancel,
		log:           logging.With("component", "login"),
		name:          newInput("Your name", opts.Name),
		email:         newInput("you@example.com", opts.Email),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		toastDuration: toastDuration,
		notice:        opts.Notice,
		keys: keyMap{
			Next:   key.NewBinding(key.WithKeys("tab", "down")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
			Submit: key.NewBinding(key.WithKeys("enter")),
			Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
		},
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.toast = msg
	})
	m.name.Focus()
	return m
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	return in
}

// Init shows the pending notice, if any.
func (m *Model) Init() tea.Cmd {
	if m.notice == "" {
		return nil
	}
	return m.notify(errors.MessageTypeInfo, m.notice)
}

// Close cancels a login still in flight.
func (m *Model) Close() { m.cancel() }

// Toast returns the toast currently showing, if any.
func (m *Model) Toast() errors.Message { return m.toast }

// Submitting reports whether a login request is in flight.
func (m *Model) Submitting() bool { return m.submitting }

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case loginResultMsg:
		if msg.mount != m.mount {
			return m, nil
		}
		return m, m.handleLoginResult(msg)
	case toastExpiredMsg:
		if msg.mount == m.mount && m.toast.ID == msg.id {
			m.toast = errors.Message{}
		}
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit
	case m.submitting:
		return nil
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		m.toggleField()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	if m.focusEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return cmd
}

func (m *Model) toggleField() {
	m.focusEmail = !m.focusEmail
	if m.focusEmail {
		m.name.Blur()
		m.email.Focus()
		return
	}
	m.email.Blur()
	m.name.Focus()
}

func (m *Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.name.Value())
	email := strings.TrimSpace(m.email.Value())
	if name == "" || email == "" {
		return m.notify(errors.MessageTypeWarning, msgMissingFields)
	}

	m.submitting = true
	svc, ctx, mount := m.svc, m.ctx, m.mount
	login := func() tea.Msg {
		sess, err := svc.Login(ctx, name, email)
		return loginResultMsg{mount: mount, session: sess, err: err}
	}
	return tea.Batch(login, m.spinner.Tick)
}

func (m *Model) handleLoginResult(msg loginResultMsg) tea.Cmd {
	m.submitting = false
	if msg.err != nil {
		m.log.Error(msgLoginFailed, "error", msg.err.Error())
		return m.notify(errors.MessageTypeError, msgLoginFailed)
	}
	m.log.Info("logged in", "user", msg.session.Name())
	session := msg.session
	return func() tea.Msg { return LoggedInMsg{Session: session} }
}

func (m *Model) notify(kind errors.MessageType, text string) tea.Cmd {
	switch kind {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	default:
		m.errorHandler.Info(text)
	}
	if m.toastDuration < 0 {
		return nil
	}
	id, mount := m.toast.ID, m.mount
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{mount: mount, id: id}
	})
}

// View renders the login form centered in the window.
func (m *Model) View() string {
	form := render.LoginForm(render.LoginFormState{
		NameInput:  m.name.View(),
		EmailInput: m.email.View(),
		Submitting: m.submitting,
		Spinner:    m.spinner.View(),
		Width:      m.width,
	})
	if toast := render.Toast(m.toast); toast != "" {
		form = lipgloss.JoinVertical(lipgloss.Center, form, toast)
	}
	if m.width <= 0 || m.height <= 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
