package cmd

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/pawmatch/internal/api"
	"github.com/cristianoliveira/pawmatch/internal/storage"
	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command with explicit dependencies.
func NewLogoutCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		panic("NewLogoutCmd: deps dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Long: `Sign out of the search service and remove the stored session.

The stored session is kept when the service refuses the logout, unless the
service reports it as already invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := deps.OpenStore()
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			profile := deps.Profile()
			sess, err := store.Load(ctx, profile)
			if errors.Is(err, storage.ErrSessionNotFound) || errors.Is(err, storage.ErrSessionExpired) {
				console.Info("Not signed in")
				return nil
			}
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}

			err = deps.NewService().Logout(ctx, sess)
			if err != nil && !api.IsUnauthorized(err) {
				return fmt.Errorf("failed to logout: %w", err)
			}
			if err := store.Delete(ctx, profile); err != nil {
				return fmt.Errorf("remove session: %w", err)
			}
			console.Success("Signed out")
			return nil
		},
	}
}

func init() {
	RootCmd.AddCommand(NewLogoutCmd(defaultDeps))
}
