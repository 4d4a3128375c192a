// Package cmd holds the pawmatch command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/colors"
	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/telemetry"
	"github.com/cristianoliveira/pawmatch/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCmd represents the base command. Without a subcommand it opens the terminal client.
var RootCmd = &cobra.Command{
	Use:           "pawmatch",
	Short:         "Find an adoptable dog from your terminal.",
	Long:          `Find an adoptable dog from your terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// flagEnv maps persistent flags to the PAWMATCH_* variables config reads, so
// a flag survives every later config.Load.
var flagEnv = map[string]string{
	"config":   "PAWMATCH_CONFIG_PATH",
	"base-url": "PAWMATCH_BASE_URL",
	"name":     "PAWMATCH_NAME",
	"email":    "PAWMATCH_EMAIL",
	"debug":    "PAWMATCH_DEBUG",
	"quiet":    "PAWMATCH_QUIET",
}

// Execute runs the root command, then flushes spans and the log file.
func Execute() error {
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.ShutdownGlobal(ctx); err != nil {
			logging.Warn("failed to flush traces", "error", err)
		}
		if err := logging.ShutdownGlobal(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := RootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/pawmatch/config.toml)")
	flags.String("base-url", "", "Search service URL")
	flags.String("name", "", "Name to sign in with")
	flags.String("email", "", "Email to sign in with")
	flags.Bool("debug", false, "Print debug output and log at debug level")
	flags.BoolP("quiet", "q", false, "Suppress informational output")

	defaultHelp := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			defaultHelp(cmd, args)
			return
		}
		printHelpText(cmd)
	})
}

// setup loads configuration and starts logging before any command runs.
func setup(cmd *cobra.Command) error {
	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagEnv[f.Name]
		if !ok || err != nil {
			return
		}
		err = os.Setenv(key, f.Value.String())
	})
	if err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := telemetry.InitGlobal(ctx); err != nil {
		colors.Warning(fmt.Sprintf("trace export disabled: %v", err))
	}
	logging.Info("command started", "command", cmd.CommandPath(), "version", version.String())
	return nil
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"tui",
		"login",
		"logout",
		"breeds",
		"search",
		"match",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`pawmatch %s

Find an adoptable dog from your terminal.

USAGE:
    pawmatch [COMMAND] [OPTIONS]

    Without a command, pawmatch opens the interactive client.

COMMANDS:
%s

OPTIONS:
%s`, version.String(), strings.Join(cmdLines, "\n"), cmd.PersistentFlags().FlagUsages())
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
