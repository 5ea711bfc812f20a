// Package catalog exposes the catalog browse commands.
package catalog

import (
	"fmt"
	"io"

	catalogDomain "github.com/creatorhub/creatorhub/internal/catalog/domain"
	"github.com/spf13/cobra"
)

// Cmd is the catalog command group.
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the creator tools catalog",
}

func init() {
	trendingCmd.Flags().IntVar(&trendingLimit, "limit", 10, "number of tools to show")
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(trendingCmd)
	Cmd.AddCommand(similarCmd)
	Cmd.AddCommand(surpriseCmd)
	Cmd.AddCommand(popularCmd)
	Cmd.AddCommand(viewCmd)
}

func printTools(out io.Writer, tools []catalogDomain.Tool) {
	for _, tool := range tools {
		fmt.Fprintf(out, "%-16s %-24s %-18s %d views\n", tool.ID, tool.Name, tool.Category, tool.Views)
	}
}
