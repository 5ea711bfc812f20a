package catalog

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	personalizationDomain "github.com/creatorhub/creatorhub/internal/personalization/domain"
	"github.com/spf13/cobra"
)

var trendingLimit int

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the most viewed tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		tools, err := app.Catalog.Trending(cmd.Context(), trendingLimit)
		if err != nil {
			return err
		}
		if len(tools) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Trending is disabled or the catalog is empty.")
			return nil
		}
		printTools(cmd.OutOrStdout(), tools)
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <tool-id>",
	Short: "Show tools similar to one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		tools, err := app.Catalog.SimilarTools(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(tools) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No similar tools found.")
			return nil
		}
		printTools(cmd.OutOrStdout(), tools)

		if related := app.Catalog.RelatedCategories(tools[0].Category); len(related) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\nRelated categories: %v\n", related)
		}
		return nil
	},
}

var surpriseCmd = &cobra.Command{
	Use:   "surprise",
	Short: "Show a random tool",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		tool, err := app.Catalog.SurpriseMe(cmd.Context())
		if err != nil {
			return err
		}
		if tool == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Surprise me is disabled or the catalog is empty.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n", tool.Name, tool.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s  Pricing: %s\n", tool.Category, tool.Pricing)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <tool-id>",
	Short: "Open a tool's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Catalog == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog requires database connection.")
			return nil
		}

		tool, err := app.Catalog.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if tool == nil {
			return fmt.Errorf("tool %q not found", args[0])
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s by %s\n", tool.Name, tool.Company)
		fmt.Fprintln(cmd.OutOrStdout(), tool.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s  Pricing: %s  Views: %d\n", tool.Category, tool.Pricing, tool.Views)
		if tool.URL != "" {
			fmt.Fprintln(cmd.OutOrStdout(), tool.URL)
		}

		if err := app.Catalog.RecordView(cmd.Context(), tool.ID); err != nil {
			return err
		}
		if app.Personalization != nil {
			icon := ""
			if tool.Name != "" {
				icon = string([]rune(tool.Name)[0])
			}
			app.Personalization.RecordView(cmd.Context(), personalizationDomain.RecentItem{
				ID:   tool.ID,
				Name: tool.Name,
				Icon: icon,
			})
		}
		return nil
	},
}
