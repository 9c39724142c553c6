package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "return <loan-id>",
		Short:             "Return a loaned book",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLoanIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !loans.Return(args[0]) {
				return fmt.Errorf("no loan with id %q", args[0])
			}
			ok("Returned")
			return nil
		},
	}
}
