package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/domain"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner runs the model full screen.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Settings are the configuration values the terminal client needs.
type Settings struct {
	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	TraceHTTP      bool
	Name           string
	Email          string
	PageReset      domain.PageResetPolicy
	AgeRangePolicy domain.AgeRangePolicy
	ToastDuration  time.Duration
}

// SettingsLoader defines the interface for loading settings.
type SettingsLoader interface {
	Load() (*Settings, error)
}

// DefaultSettingsLoader reads Settings from the global configuration.
type DefaultSettingsLoader struct{}

// NewDefaultSettingsLoader creates a new DefaultSettingsLoader.
func NewDefaultSettingsLoader() *DefaultSettingsLoader {
	return &DefaultSettingsLoader{}
}

// Load reads the current configuration.
func (l *DefaultSettingsLoader) Load() (*Settings, error) {
	config.Load()
	return &Settings{
		BaseURL:        config.Get("base_url", config.DefaultBaseURL),
		Timeout:        config.GetSeconds("request_timeout"),
		UserAgent:      config.Get("user_agent", ""),
		TraceHTTP:      config.GetBool("trace_http", false),
		Name:           config.Get("name", ""),
		Email:          config.Get("email", ""),
		PageReset:      domain.PageResetPolicy(config.Get("page_reset", string(domain.PageKeep))),
		AgeRangePolicy: domain.AgeRangePolicy(config.Get("age_range_policy", string(domain.AgeRangePass))),
		ToastDuration:  config.GetSeconds("toast_duration"),
	}, nil
}

// ServiceFactory builds the remote service client.
type ServiceFactory interface {
	NewService(settings *Settings) api.Service
}

// DefaultServiceFactory builds an HTTP api.Client.
type DefaultServiceFactory struct{}

// NewDefaultServiceFactory creates a new DefaultServiceFactory.
func NewDefaultServiceFactory() *DefaultServiceFactory {
	return &DefaultServiceFactory{}
}

// NewService creates an api.Client for settings.
func (f *DefaultServiceFactory) NewService(settings *Settings) api.Service {
	return api.New(api.Options{
		BaseURL:   settings.BaseURL,
		Timeout:   settings.Timeout,
		UserAgent: settings.UserAgent,
		TraceHTTP: settings.TraceHTTP,
	})
}
