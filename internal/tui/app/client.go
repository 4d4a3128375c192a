// Package app wires the terminal client's views together and runs them.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/colors"
)

// Client defines dependencies needed by the tui command.
type Client interface {
	LoadSettings() (*Settings, error)
	CreateModel(settings *Settings) (tea.Model, error)
	RunProgram(model tea.Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	serviceFactory ServiceFactory
	programRunner  ProgramRunner
	settingsLoader SettingsLoader
}

// NewDefaultClient creates a default TUI client adapter. Nil dependencies
// are replaced by their default implementations.
func NewDefaultClient(serviceFactory ServiceFactory, programRunner ProgramRunner, settingsLoader SettingsLoader) *DefaultClient {
	if serviceFactory == nil {
		serviceFactory = NewDefaultServiceFactory()
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if settingsLoader == nil {
		settingsLoader = NewDefaultSettingsLoader()
	}
	return &DefaultClient{
		serviceFactory: serviceFactory,
		programRunner:  programRunner,
		settingsLoader: settingsLoader,
	}
}

// LoadSettings loads configuration using the injected SettingsLoader.
func (d *DefaultClient) LoadSettings() (*Settings, error) {
	return d.settingsLoader.Load()
}

// CreateModel builds the root model starting at the login view.
func (d *DefaultClient) CreateModel(settings *Settings) (tea.Model, error) {
	if settings == nil {
		return nil, fmt.Errorf("create model: settings are required")
	}
	svc := d.serviceFactory.NewService(settings)
	return NewModel(Options{Service: svc, Settings: *settings}), nil
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(model tea.Model) error {
	err := d.programRunner.Run(model)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
