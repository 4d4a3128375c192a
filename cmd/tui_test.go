package cmd

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/tui/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct{}

func (stubModel) Init() tea.Cmd                       { return nil }
func (stubModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return stubModel{}, nil }
func (stubModel) View() string                        { return "" }

type fakeTUIClient struct {
	settings    *app.Settings
	loadErr     error
	createErr   error
	runErr      error
	calls       []string
	gotSettings *app.Settings
}

func (f *fakeTUIClient) LoadSettings() (*app.Settings, error) {
	f.calls = append(f.calls, "load")
	return f.settings, f.loadErr
}

func (f *fakeTUIClient) CreateModel(settings *app.Settings) (tea.Model, error) {
	f.calls = append(f.calls, "create")
	f.gotSettings = settings
	if f.createErr != nil {
		return nil, f.createErr
	}
	return stubModel{}, nil
}

func (f *fakeTUIClient) RunProgram(tea.Model) error {
	f.calls = append(f.calls, "run")
	colors.Info("printed while running")
	return f.runErr
}

func TestTUICmdRunsProgram(t *testing.T) {
	var console bytes.Buffer
	colors.SetOutput(&console, &console)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	client := &fakeTUIClient{settings: &app.Settings{BaseURL: testProfile}}
	_, err := run(NewTUICmd(client))
	require.NoError(t, err)

	assert.Equal(t, []string{"load", "create", "run"}, client.calls)
	assert.Equal(t, testProfile, client.gotSettings.BaseURL)
	assert.NotContains(t, console.String(), "printed while running")

	colors.SetOutput(&console, &console)
	colors.Info("after")
	assert.Contains(t, console.String(), "after")
}

func TestTUICmdErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		client *fakeTUIClient
		calls  []string
	}{
		{name: "settings", client: &fakeTUIClient{loadErr: boom}, calls: []string{"load"}},
		{name: "model", client: &fakeTUIClient{settings: &app.Settings{}, createErr: boom}, calls: []string{"load", "create"}},
		{name: "program", client: &fakeTUIClient{settings: &app.Settings{}, runErr: boom}, calls: []string{"load", "create", "run"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(NewTUICmd(tt.client))
			require.ErrorIs(t, err, boom)
			assert.Equal(t, tt.calls, tt.client.calls)
		})
	}
}

func TestNewTUICmdPanicsOnNilClient(t *testing.T) {
	assert.Panics(t, func() { NewTUICmd(nil) })
}
