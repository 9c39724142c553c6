package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "select <book-id>",
		Short:             "Select a book for edit/delete (run again to deselect)",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !books.Select(id) {
				return fmt.Errorf("no book with id %q", id)
			}
			if sel := books.Selected(); sel != nil {
				ok("Selected %q", sel.Title)
			} else {
				ok("Selection cleared")
			}
			return nil
		},
	}
}
