// Package access exposes the entitlement check command.
package access

import "github.com/spf13/cobra"

// Cmd is the access command group.
var Cmd = &cobra.Command{
	Use:   "access",
	Short: "Check content access",
	Long:  `Check whether the current session may open a content item.`,
}

func init() {
	Cmd.AddCommand(checkCmd)
}
