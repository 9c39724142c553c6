package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLoansCmd() *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List active loans (or loan candidates with --available)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if available {
				avail := loans.Available()
				if len(avail) == 0 {
					fmt.Println("All books are currently on loan.")
					return nil
				}
				header("Available (%d)", len(avail))
				for _, b := range avail {
					fmt.Printf("  %-8s  %s\n", shorten(b.ID), b.Title)
				}
				return nil
			}

			active := loans.Active()
			if len(active) == 0 {
				fmt.Println("No books on loan.")
				return nil
			}
			header("Loaned books (%d)", len(active))
			for _, l := range active {
				fmt.Printf("  %-8s  %s borrowed %s — due %s\n",
					shorten(l.ID),
					color.WhiteString(l.Borrower),
					color.CyanString("%q", l.Title),
					formatDue(l.Due))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "List books available for loan instead")
	return cmd
}
