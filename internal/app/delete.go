package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [book-id]",
		Short: "Delete a book (defaults to the selected book)",
		Long: `Delete a book from the catalog. Any active loan for the book is
removed as well. With no argument, deletes the currently selected book.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				sel := books.Selected()
				if sel == nil {
					return fmt.Errorf("no book selected and no id given")
				}
				id = sel.ID
			}

			b := books.ByID(id)
			if b == nil {
				return fmt.Errorf("no book with id %q", id)
			}
			onLoan := loans.OnLoan(id)

			books.Delete(id)
			ok("Deleted %q", b.Title)
			if onLoan {
				warn("its active loan was returned")
			}
			return nil
		},
	}
}
