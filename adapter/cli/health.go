package cli

import (
	"fmt"
	"sort"

	"github.com/creatorhub/creatorhub/pkg/observability"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend health",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if app.Health == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}

		results := app.Health.Check(cmd.Context())
		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			result := results[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s", name, result.Status)
			if result.Message != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", result.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "overall: %s\n", observability.Overall(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
