package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const loginCommandLong = `Sign in to the search service and keep the session for other commands.

USAGE:
    pawmatch login --name <name> --email <email>

Name and email fall back to the "name" and "email" config keys. The session is
stored when session_store is "sqlite"; with "none" every command signs in again.`

// NewLoginCmd creates the login command with explicit dependencies.
func NewLoginCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		panic("NewLoginCmd: deps dependency cannot be nil")
	}

	var name, email string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Long:  loginCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgName, cfgEmail := deps.Credentials()
			if name == "" {
				name = cfgName
			}
			if email == "" {
				email = cfgEmail
			}

			store, err := deps.OpenStore()
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			sess, err := signIn(cmd.Context(), deps.NewService(), store, deps.Profile(), name, email)
			if err != nil {
				return err
			}
			console.Success(fmt.Sprintf("Signed in as %s <%s>", sess.Name(), sess.Email()))
			return nil
		},
	}
	loginCmd.Flags().StringVar(&name, "name", "", "Name to sign in with")
	loginCmd.Flags().StringVar(&email, "email", "", "Email to sign in with")
	return loginCmd
}

func init() {
	RootCmd.AddCommand(NewLoginCmd(defaultDeps))
}
