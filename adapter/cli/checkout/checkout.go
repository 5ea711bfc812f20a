// Package checkout exposes the purchase and subscription commands.
package checkout

import (
	"fmt"

	"github.com/creatorhub/creatorhub/adapter/cli"
	entitlementsDomain "github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Cmd is the checkout command group.
var Cmd = &cobra.Command{
	Use:   "checkout",
	Short: "Buy items and manage the subscription",
}

var buyItemType string

func init() {
	buyCmd.Flags().StringVar(&buyItemType, "type", "tool", "item type (tool, guide, blog)")
	Cmd.AddCommand(buyCmd)
	Cmd.AddCommand(subscribeCmd)
	Cmd.AddCommand(unsubscribeCmd)
}

var buyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy a single item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		itemType := entitlementsDomain.ItemType(buyItemType)
		if !itemType.IsValid() {
			return fmt.Errorf("unknown item type %q (want tool, guide, or blog)", buyItemType)
		}

		if err := app.Checkout.PurchaseItem(cmd.Context(), userID, itemType, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purchased %s\n", args[0])
		return nil
	},
}

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Start the premium subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		if err := app.Checkout.Subscribe(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Subscription active")
		return nil
	},
}

var unsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe",
	Short: "Cancel the premium subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, userID, err := requireSession()
		if err != nil {
			return err
		}

		if err := app.Checkout.Unsubscribe(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Subscription cancelled")
		return nil
	},
}

func requireSession() (*cli.App, uuid.UUID, error) {
	app := cli.GetApp()
	if app == nil || app.Checkout == nil {
		return nil, uuid.Nil, fmt.Errorf("checkout requires database connection")
	}
	userID := app.CurrentUserID()
	if userID == nil {
		return nil, uuid.Nil, fmt.Errorf("sign in first: creatorhub session signin <user-id>")
	}
	return app, *userID, nil
}
