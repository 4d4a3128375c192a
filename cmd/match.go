package cmd

import (
	"fmt"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/format"
	"github.com/spf13/cobra"
)

// NewMatchCmd creates the match command with explicit dependencies.
func NewMatchCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		panic("NewMatchCmd: deps dependency cannot be nil")
	}

	var outputFormat string
	matchCmd := &cobra.Command{
		Use:   "match <dog-id>...",
		Short: "Pick a match among favorite dogs",
		Long: `Ask the service to pick one dog among the given ids and print it.

Repeated ids count once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := format.ParseFormatterType(outputFormat)
			if err != nil {
				return err
			}
			favorites := domain.NewFavorites(args...)

			return withSession(cmd.Context(), deps, func(svc api.Service, sess *api.Session) error {
				dog, err := api.NewPager(svc).MatchDog(cmd.Context(), sess, favorites.IDs())
				if err != nil {
					return fmt.Errorf("failed to generate match: %w", err)
				}
				if ft != format.FormatterTypeJSON {
					console.Success(fmt.Sprintf("You've been matched with %s!", dog.Name))
				}
				return format.NewFormatter(ft).FormatDogs([]domain.Dog{dog}, cmd.OutOrStdout())
			})
		},
	}
	matchCmd.Flags().StringVar(&outputFormat, "format", "simple", "Output format: simple, table, json")
	return matchCmd
}

func init() {
	RootCmd.AddCommand(NewMatchCmd(defaultDeps))
}
