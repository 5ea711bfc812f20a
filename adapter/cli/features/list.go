package features

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all feature flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Features == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Feature flags require database connection.")
			return nil
		}

		for _, flag := range app.Features.Snapshot() {
			state := "off"
			if flag.Enabled {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", flag.ID, state)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <feature-id>",
	Short: "Show one feature flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Features == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Feature flags require database connection.")
			return nil
		}

		if app.Features.IsEnabled(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is enabled\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is disabled\n", args[0])
		}
		return nil
	},
}
