package cmd

import (
	"fmt"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/format"
	"github.com/spf13/cobra"
)

// NewBreedsCmd creates the breeds command with explicit dependencies.
func NewBreedsCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		panic("NewBreedsCmd: deps dependency cannot be nil")
	}

	var outputFormat string
	breedsCmd := &cobra.Command{
		Use:   "breeds",
		Short: "List the breeds the service knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := format.ParseFormatterType(outputFormat)
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), deps, func(svc api.Service, sess *api.Session) error {
				breeds, err := svc.ListBreeds(cmd.Context(), sess)
				if err != nil {
					return fmt.Errorf("failed to load breeds: %w", err)
				}
				return format.NewFormatter(ft).FormatBreeds(breeds, cmd.OutOrStdout())
			})
		},
	}
	breedsCmd.Flags().StringVar(&outputFormat, "format", "simple", "Output format: simple, table, json")
	return breedsCmd
}

func init() {
	RootCmd.AddCommand(NewBreedsCmd(defaultDeps))
}
