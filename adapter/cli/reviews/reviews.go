// Package reviews exposes the tool review commands.
package reviews

import (
	"fmt"
	"strconv"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/spf13/cobra"
)

// Cmd is the reviews command group.
var Cmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write tool reviews",
}

func init() {
	addCmd.Flags().StringVar(&addComment, "comment", "", "review comment")
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}

var addComment string

var addCmd = &cobra.Command{
	Use:   "add <tool-id> <rating>",
	Short: "Review a tool (rating 1-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Personalization == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Reviews require database connection.")
			return nil
		}
		userID := app.CurrentUserID()
		if userID == nil {
			return fmt.Errorf("sign in first: creatorhub session signin <user-id>")
		}

		rating, err := strconv.Atoi(args[1])
		if err != nil || rating < 1 || rating > 5 {
			return fmt.Errorf("rating must be an integer from 1 to 5")
		}

		if app.Personalization.AddReview(cmd.Context(), args[0], userID.String(), rating, addComment) {
			fmt.Fprintf(cmd.OutOrStdout(), "Review saved for %s\n", args[0])
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Reviews are disabled.")
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <tool-id>",
	Short: "List reviews for a tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Personalization == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Reviews require database connection.")
			return nil
		}

		reviews := app.Personalization.Reviews(cmd.Context(), args[0])
		if len(reviews) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reviews yet.")
			return nil
		}

		average := app.Personalization.AverageRating(cmd.Context(), args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Average rating: %.1f (%d reviews)\n\n", average, len(reviews))
		for _, review := range reviews {
			fmt.Fprintf(cmd.OutOrStdout(), "%d/5 by %s", review.Rating, review.UserID)
			if review.Comment != "" {
				fmt.Fprintf(cmd.OutOrStdout(), ": %s", review.Comment)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}
