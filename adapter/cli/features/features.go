// Package features exposes the feature flag commands.
package features

import "github.com/spf13/cobra"

// Cmd is the features command group.
var Cmd = &cobra.Command{
	Use:   "features",
	Short: "Inspect feature flags",
	Long:  `Show which optional capabilities are currently enabled.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(statusCmd)
}
