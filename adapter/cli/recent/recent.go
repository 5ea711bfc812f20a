// Package recent exposes the recently-viewed command.
package recent

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/spf13/cobra"
)

// Cmd lists the device's recently-viewed tools.
var Cmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently viewed tools",
	Long:  `Show the tools viewed on this device, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Personalization == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Recently viewed requires database connection.")
			return nil
		}

		items := app.Personalization.RecentlyViewed(cmd.Context())
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing viewed yet.")
			return nil
		}
		for _, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", item.ID, item.Name)
		}
		return nil
	},
}
