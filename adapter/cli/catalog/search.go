package catalog

import (
	"fmt"
	"strings"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		query := strings.Join(args, " ")
		tools, err := app.Catalog.Search(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(tools) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No tools match %q.\n", query)
			return nil
		}
		printTools(cmd.OutOrStdout(), tools)
		return nil
	},
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show popular search terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		terms := app.Catalog.PopularSearches()
		if len(terms) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Popular searches are disabled.")
			return nil
		}
		for _, term := range terms {
			fmt.Fprintln(cmd.OutOrStdout(), term)
		}
		return nil
	},
}
