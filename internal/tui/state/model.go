// Package state is the search view controller: it owns the filter, page,
// results and favorites and turns edits into page fetches.
package state

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/errors"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
	defaultToastDuration  = 5 * time.Second
	ageInputWidth         = 4
	ageCharLimit          = 3

	focusCount = render.FocusResults + 1
)

// Toast texts.
const (
	msgBreedsFailed = "Failed to load breeds"
	msgDogsFailed   = "Failed to load dogs"
	msgNoFavorites  = "Please select at least one dog to match"
	msgMatchFailed  = "Failed to generate match"
	msgLogoutFailed = "Failed to logout"
	msgMatchedFmt   = "You've been matched with %s!"
)

// Options configures a search view Model.
type Options struct {
	Service        api.Service
	Session        *api.Session
	PageReset      domain.PageResetPolicy
	AgeRangePolicy domain.AgeRangePolicy
	// ToastDuration is how long a toast stays up; zero uses the default and
	// a negative value keeps toasts until replaced.
	ToastDuration time.Duration
	Context       context.Context
}

// mounts hands out a distinct id to every Model.
var mounts atomic.Uint64

// Model is the search view.
type Model struct {
	mount uint64


	uiState      *UIState
	errorHandler *errors.TUIHandler
	toast        errors.Message

	svc     api.Service
	pager   *api.Pager
	session *api.Session
	ctx     context.Context
	cancel  context.CancelFunc
	log     logging.Logger

	pageReset     domain.PageResetPolicy
	agePolicy     domain.AgeRangePolicy
	toastDuration time.Duration

	catalog    []string
	filter     domain.Filter
	pagination domain.Pagination
	results    []domain.Dog
	favorites  *domain.Favorites

	// seq numbers page requests; only the response to the latest one is applied.
	seq     int
	loading bool

	ageMin  textinput.Model
	ageMax  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
}

// NewModel creates the search view for an authenticated session.
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
	pageReset := opts.PageReset
	if pageReset == "" {
		pageReset = domain.PageKeep
	}
	agePolicy := opts.AgeRangePolicy
	if agePolicy == "" {
		agePolicy = domain.AgeRangePass
	}

	m := &Model{
		mount:         mounts.Add(1),
		uiState:       NewUIState(),
		svc:           opts.Service,
		pager:         api.NewPager(opts.Service),
		session:       opts.Session,
		ctx:           ctx,
		cancel:        cancel,
		log:           logging.With("component", "search"),
		pageReset:     pageReset,
		agePolicy:     agePolicy,
		toastDuration: toastDuration,
		filter:        domain.DefaultFilter(),
		pagination:    domain.NewPagination(),
		favorites:     domain.NewFavorites(),
		ageMin:        newAgeInput("min"),
		ageMax:        newAgeInput("max"),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:          help.New(),
		keys:          defaultKeyMap(),
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.toast = msg
	})
	return m
}

func newAgeInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = ageCharLimit
	in.Width = ageInputWidth
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// Init fetches the breed catalog and the first page.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchBreedsCmd(), m.requestPage())
}

// Close cancels requests still in flight.
func (m *Model) Close() {
	m.cancel()
}

// Session returns the session the view was opened with.
func (m *Model) Session() *api.Session { return m.session }

// Favorites returns the favorite ids, sorted.
func (m *Model) Favorites() []string { return m.favorites.IDs() }

// Loading reports whether a page request is in flight.
func (m *Model) Loading() bool { return m.loading }

// Results returns the dogs currently displayed.
func (m *Model) Results() []domain.Dog { return m.results }

// Filter returns the current filter.
func (m *Model) Filter() domain.Filter { return m.filter }

// Pagination returns the current page and page count.
func (m *Model) Pagination() domain.Pagination { return m.pagination }

// Catalog returns the loaded breed names.
func (m *Model) Catalog() []string { return m.catalog }

// Toast returns the toast currently showing, if any.
func (m *Model) Toast() errors.Message { return m.toast }
