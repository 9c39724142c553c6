package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/catalog"
)

func newAddCmd() *cobra.Command {
	var in catalog.BookInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the catalog.

Examples:
  lendctl add --title "Dune" --author "Frank Herbert" --year 1965 --language English --pages 412
  lendctl add --title "Le Petit Prince" --language French --cover https://example.com/cover.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Title == "" {
				return fmt.Errorf("--title is required")
			}

			b := books.Add(in)
			ok("Added %q", b.Title)
			fmt.Printf("  id:       %s\n", color.WhiteString(b.ID))
			if b.Author != "" {
				fmt.Printf("  author:   %s\n", b.Author)
			}
			if b.Language != "" {
				fmt.Printf("  language: %s\n", b.Language)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&in.Author, "author", "", "Author name")
	cmd.Flags().StringVar(&in.Publisher, "publisher", "", "Publisher")
	cmd.Flags().IntVar(&in.Year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&in.Language, "language", "", "Language")
	cmd.Flags().IntVar(&in.Pages, "pages", 0, "Page count")
	cmd.Flags().StringVar(&in.Cover, "cover", "", "Cover image URL (default: placeholder)")
	cmd.Flags().StringVar(&in.URL, "url", "", "External URL for the book")
	return cmd
}
