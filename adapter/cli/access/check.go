package access

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <item-type> <item-id>",
	Short: "Check whether an item is accessible",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Entitlements == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Access checks require database connection.")
			return nil
		}

		itemType := domain.ItemType(args[0])
		if !itemType.IsValid() {
			return fmt.Errorf("unknown item type %q (want tool, guide, or blog)", args[0])
		}

		decision, err := app.Entitlements.CheckAccess(cmd.Context(), itemType, args[1], app.CurrentUserID())
		if err != nil {
			return err
		}

		if decision.HasAccess {
			fmt.Fprintf(cmd.OutOrStdout(), "Access granted to %s/%s\n", itemType, args[1])
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Access denied: %s\n", decision.Reason)
		if decision.Price > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Price: %.2f\n", decision.Price)
		}
		return nil
	},
}
