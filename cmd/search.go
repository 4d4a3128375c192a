package cmd

import (
	"fmt"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/format"
	"github.com/spf13/cobra"
)

const searchCommandLong = `Search adoptable dogs and print one page of results.

USAGE:
    pawmatch search [OPTIONS]

OPTIONS:
    --breed <name>     Only this breed; repeat for several
    --age-min <n>      Minimum age in years
    --age-max <n>      Maximum age in years
    --sort <order>     Breed order: asc (default) or desc
    --page <n>         Page number, 20 dogs per page (default 1)
    --format <fmt>     Output format: simple (default), table, json

An inverted age range is sent as entered unless age_range_policy is "swap".`

type searchOptions struct {
	breeds       []string
	ageMin       int
	ageMax       int
	sort         string
	page         int
	outputFormat string
}

// NewSearchCmd creates the search command with explicit dependencies.
func NewSearchCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		panic("NewSearchCmd: deps dependency cannot be nil")
	}

	var opts searchOptions
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search dogs by breed and age",
		Long:  searchCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter(cmd, opts)
			if err != nil {
				return err
			}
			if opts.page < 1 {
				return fmt.Errorf("invalid page: %d (must be 1 or greater)", opts.page)
			}
			ft, err := format.ParseFormatterType(opts.outputFormat)
			if err != nil {
				return err
			}
			policy := domain.AgeRangePolicy(config.Get("age_range_policy", string(domain.AgeRangePass)))
			params := domain.BuildSearchParams(filter, opts.page, policy)

			return withSession(cmd.Context(), deps, func(svc api.Service, sess *api.Session) error {
				page, err := api.NewPager(svc).FetchPage(cmd.Context(), sess, params)
				if err != nil {
					return fmt.Errorf("failed to load dogs: %w", err)
				}
				if len(page.Dogs) == 0 && ft != format.FormatterTypeJSON {
					console.Info("No dogs found")
					return nil
				}
				if err := format.NewFormatter(ft).FormatDogs(page.Dogs, cmd.OutOrStdout()); err != nil {
					return err
				}
				if ft != format.FormatterTypeJSON {
					console.Info(fmt.Sprintf("Page %d of %d (%d dogs)", opts.page, page.TotalPages, page.Total))
				}
				return nil
			})
		},
	}

	flags := searchCmd.Flags()
	flags.StringArrayVar(&opts.breeds, "breed", nil, "Only this breed; repeat for several")
	flags.IntVar(&opts.ageMin, "age-min", 0, "Minimum age in years")
	flags.IntVar(&opts.ageMax, "age-max", 0, "Maximum age in years")
	flags.StringVar(&opts.sort, "sort", string(domain.SortOrderAsc), "Breed order: asc or desc")
	flags.IntVar(&opts.page, "page", 1, "Page number")
	flags.StringVar(&opts.outputFormat, "format", "simple", "Output format: simple, table, json")
	return searchCmd
}

// buildFilter turns flags into a Filter. Age bounds count only when given.
func buildFilter(cmd *cobra.Command, opts searchOptions) (domain.Filter, error) {
	filter := domain.DefaultFilter()
	order, err := domain.ParseSortOrder(opts.sort)
	if err != nil {
		return filter, err
	}
	filter.Sort = order
	filter.Breeds = append(filter.Breeds, opts.breeds...)

	if cmd.Flags().Changed("age-min") {
		if opts.ageMin < 0 {
			return filter, fmt.Errorf("invalid age-min: %d (must not be negative)", opts.ageMin)
		}
		filter.Age.Min = domain.IntPtr(opts.ageMin)
	}
	if cmd.Flags().Changed("age-max") {
		if opts.ageMax < 0 {
			return filter, fmt.Errorf("invalid age-max: %d (must not be negative)", opts.ageMax)
		}
		filter.Age.Max = domain.IntPtr(opts.ageMax)
	}
	return filter, nil
}

func init() {
	RootCmd.AddCommand(NewSearchCmd(defaultDeps))
}
