package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/tui/login"
	"github.com/cristianoliveira/pawmatch/internal/tui/state"
)

// Route names a view.
type Route string

const (
	// RouteLogin is the entry view.
	RouteLogin Route = "/"
	// RouteSearch is the search view; it needs a valid session.
	RouteSearch Route = "/search"
)

const sessionExpiredNotice = "Your session has expired, please sign in again"

// ResolveRoute maps a requested route to the one that is shown. Unknown
// routes, and the search view without a valid session, go to the entry view.
func ResolveRoute(route Route, sess *api.Session) Route {
	switch route {
	case RouteSearch:
		if sess.Valid() {
			return RouteSearch
		}
		return RouteLogin
	default:
		return RouteLogin
	}
}

// Options configures the root model.
type Options struct {
	Service  api.Service
	Settings Settings
	// Session, when valid, opens the search view directly.
	Session *api.Session
	Context context.Context
}

// Model routes between the login and search views.
type Model struct {
	svc      api.Service
	settings Settings
	ctx      context.Context
	log      logging.Logger

	route   Route
	session *api.Session
	login   *login.Model
	search  *state.Model

	size *tea.WindowSizeMsg
}

// NewModel creates the root model.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		svc:      opts.Service,
		settings: opts.Settings,
		ctx:      ctx,
		log:      logging.With("component", "router"),
		session:  opts.Session,
	}
	m.mount(ResolveRoute(RouteSearch, opts.Session), "")
	return m
}

// Route returns the active route.
func (m *Model) Route() Route { return m.route }

// Session returns the current session, nil when signed out.
func (m *Model) Session() *api.Session { return m.session }

// Init initializes the active view.
func (m *Model) Init() tea.Cmd {
	return m.active().Init()
}

// Navigate switches to route, applying ResolveRoute.
func (m *Model) Navigate(route Route) tea.Cmd {
	return m.navigate(route, "")
}

func (m *Model) navigate(route Route, notice string) tea.Cmd {
	m.mount(ResolveRoute(route, m.session), notice)
	cmds := []tea.Cmd{m.active().Init()}
	if m.size != nil {
		size := *m.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

// mount replaces the active view with a fresh one for route.
func (m *Model) mount(route Route, notice string) {
	if m.search != nil {
		m.search.Close()
		m.search = nil
	}
	if m.login != nil {
		m.login.Close()
		m.login = nil
	}
	m.log.Debug("navigate", "route", string(route))
	m.route = route

	switch route {
	case RouteSearch:
		m.search = state.NewModel(state.Options{
			Service:        m.svc,
			Session:        m.session,
			PageReset:      m.settings.PageReset,
			AgeRangePolicy: m.settings.AgeRangePolicy,
			ToastDuration:  m.settings.ToastDuration,
			Context:        m.ctx,
		})
	default:
		m.login = login.NewModel(login.Options{
			Service:       m.svc,
			Name:          m.settings.Name,
			Email:         m.settings.Email,
			Notice:        notice,
			ToastDuration: m.settings.ToastDuration,
			Context:       m.ctx,
		})
	}
}

func (m *Model) active() tea.Model {
	if m.route == RouteSearch {
		return m.search
	}
	return m.login
}

// Update handles navigation messages and forwards the rest to the active view.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = &msg
	case login.LoggedInMsg:
		m.session = msg.Session
		return m, m.Navigate(RouteSearch)
	case state.LoggedOutMsg:
		m.session = nil
		return m, m.Navigate(RouteLogin)
	case state.SessionExpiredMsg:
		m.session = nil
		return m, m.navigate(RouteLogin, sessionExpiredNotice)
	}

	_, cmd := m.active().Update(msg)
	return m, cmd
}

// View renders the active view.
func (m *Model) View() string {
	return m.active().View()
}
