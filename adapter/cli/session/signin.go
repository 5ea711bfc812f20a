package session

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var signinCmd = &cobra.Command{
	Use:   "signin <user-id>",
	Short: "Sign in as a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Sessions == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Sessions require database connection.")
			return nil
		}

		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		if err := app.Sessions.SignIn(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", userID)
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Sessions == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Sessions require database connection.")
			return nil
		}

		if err := app.Sessions.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Sessions == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Sessions require database connection.")
			return nil
		}

		if userID := app.Sessions.Current(); userID != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", userID)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
		}
		return nil
	},
}
