package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/loan"
)

func newLendCmd() *cobra.Command {
	var (
		borrower string
		weeks    string
	)

	cmd := &cobra.Command{
		Use:   "lend <book-id>",
		Short: "Create a loan for an available book",
		Long: `Create a loan for an available book. The loan period is clamped to
1–4 whole weeks; anything unparseable counts as 1.

Example:
  lendctl lend 4f7c2a1e --to "Alice" --weeks 2`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeAvailableBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loans.Create(borrower, args[0], loan.ParseWeeks(weeks))
			if err != nil {
				return err
			}
			b := books.ByID(l.BookID)
			ok("Lent %q to %s for %d week(s)", b.Title, l.Borrower, l.Weeks)
			fmt.Printf("  loan id: %s\n", l.ID)
			fmt.Printf("  due:     %s\n", formatDue(l.Due))
			return nil
		},
	}

	cmd.Flags().StringVar(&borrower, "to", "", "Borrower name (required)")
	cmd.Flags().StringVar(&weeks, "weeks", "1", "Loan period in weeks (1–4)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
