package app

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var noSimilar bool

	cmd := &cobra.Command{
		Use:               "info <book-id>",
		Short:             "Show a book's details and similar titles",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := books.ByID(args[0])
			if b == nil {
				return fmt.Errorf("no book with id %q", args[0])
			}

			header(b.Title)
			fmt.Printf("  id:        %s\n", b.ID)
			if b.Author != "" {
				fmt.Printf("  author:    %s\n", b.Author)
			}
			if b.Publisher != "" {
				fmt.Printf("  publisher: %s\n", b.Publisher)
			}
			if b.Year != 0 {
				fmt.Printf("  year:      %d\n", b.Year)
			}
			if b.Language != "" {
				fmt.Printf("  language:  %s\n", b.Language)
			}
			if b.Pages != 0 {
				fmt.Printf("  pages:     %d\n", b.Pages)
			}
			fmt.Printf("  price:     %s\n", b.Price)
			fmt.Printf("  cover:     %s\n", b.Image)

			if loans.OnLoan(b.ID) {
				fmt.Println(" ", color.RedString("Borrowed"))
			} else {
				fmt.Println(" ", color.GreenString("Available"))
			}

			if noSimilar {
				return nil
			}

			fmt.Println()
			header("Similar titles")
			ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout(cfg))
			defer cancel()
			similar, err := looker.Similar(ctx, b.Title)
			if err != nil {
				// Best-effort feature, the book info above is still valid.
				warn("similar titles unavailable: %v", err)
				return nil
			}
			if len(similar) == 0 {
				fmt.Println("  No similar titles found.")
				return nil
			}
			for _, s := range similar {
				fmt.Printf("  %s  %s\n", color.CyanString(s.ISBN13), s.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSimilar, "no-similar", false, "Skip the similar-titles lookup")
	return cmd
}
