// Package favorites exposes the favorites commands.
package favorites

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/spf13/cobra"
)

// Cmd is the favorites command group.
var Cmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite tools",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <tool-id>",
	Short: "Add a tool to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		if app.Personalization.AddFavorite(cmd.Context(), userID, args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already a favorite (or favorites are disabled)\n", args[0])
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <tool-id>",
	Short: "Remove a tool from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		if app.Personalization.RemoveFavorite(cmd.Context(), userID, args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		favorites := app.Personalization.Favorites(cmd.Context(), userID)
		if len(favorites) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
			return nil
		}
		for _, itemID := range favorites {
			fmt.Fprintln(cmd.OutOrStdout(), itemID)
		}
		return nil
	},
}

func requireSession() (*cli.App, string, error) {
	app := cli.GetApp()
	if app == nil || app.Personalization == nil {
		return nil, "", fmt.Errorf("favorites require database connection")
	}
	userID := app.CurrentUserID()
	if userID == nil {
		return nil, "", fmt.Errorf("sign in first: creatorhub session signin <user-id>")
	}
	return app, userID.String(), nil
}
