package cmd

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/tui/app"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Interactive terminal client.

USAGE:
    pawmatch tui

Sign in with a name and email, then browse dogs by breed and age, mark
favorites and ask for a match.

KEY BINDINGS:
    tab/shift+tab   Move between breeds, sort, ages and results
    j/k, arrows     Move in the focused list
    space/enter     Toggle breed or sort order
    f               Toggle favorite on the selected dog
    n/p             Next/previous page
    g/G             First/last page
    m               Generate a match from favorites
    L               Sign out
    ?               Toggle full help
    q, ctrl+c       Quit`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(client)
		},
	}
}

func runTUI(client app.Client) error {
	settings, err := client.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	model, err := client.CreateModel(settings)
	if err != nil {
		return fmt.Errorf("create model: %w", err)
	}

	// console output would tear the alternate screen; the log file still gets it
	colors.SetOutput(io.Discard, io.Discard)
	defer colors.SetOutput(nil, nil)

	logging.Info("tui started", "base_url", settings.BaseURL)
	return client.RunProgram(model)
}

func init() {
	tuiClient := app.NewDefaultClient(nil, nil, nil)
	RootCmd.AddCommand(NewTUICmd(tuiClient))
	RootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTUI(tuiClient)
	}
}
