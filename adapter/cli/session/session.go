// Package session exposes the sign-in commands.
package session

import "github.com/spf13/cobra"

// Cmd is the session command group.
var Cmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the sign-in session",
	Long:  `Sign in and out of the device and inspect the current session.`,
}

func init() {
	Cmd.AddCommand(signinCmd)
	Cmd.AddCommand(signoutCmd)
	Cmd.AddCommand(statusCmd)
}
