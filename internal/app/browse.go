package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/tui"
	"github.com/blackwell-systems/lendctl/internal/util"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Browse the catalog in an interactive terminal UI.

Keys: enter opens a book's details (with similar titles), l cycles the
language filter, esc goes back, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsTTY() {
				return fmt.Errorf("browse needs a terminal — use 'lendctl list' instead")
			}
			if len(books.Books()) == 0 {
				return fmt.Errorf("catalog is empty — add a book with 'lendctl add'")
			}
			return tui.RunBrowser(books, loans, looker)
		},
	}
}
