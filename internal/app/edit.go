package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lendctl/internal/catalog"
)

func newEditCmd() *cobra.Command {
	var (
		title     string
		author    string
		publisher string
		year      int
		language  string
		pages     int
		cover     string
		bookURL   string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the selected book",
		Long: `Edit the currently selected book. Only the flags you pass are changed;
everything else keeps its current value. Select a book first with 'lendctl select'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p catalog.BookPatch
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("author") {
				p.Author = &author
			}
			if cmd.Flags().Changed("publisher") {
				p.Publisher = &publisher
			}
			if cmd.Flags().Changed("year") {
				p.Year = &year
			}
			if cmd.Flags().Changed("language") {
				p.Language = &language
			}
			if cmd.Flags().Changed("pages") {
				p.Pages = &pages
			}
			if cmd.Flags().Changed("cover") {
				p.Cover = &cover
			}
			if cmd.Flags().Changed("url") {
				p.URL = &bookURL
			}

			b, edited := books.EditSelected(p)
			if !edited {
				return fmt.Errorf("no book selected — run 'lendctl select <book-id>' first")
			}
			ok("Updated %q", b.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&author, "author", "", "New author")
	cmd.Flags().StringVar(&publisher, "publisher", "", "New publisher")
	cmd.Flags().IntVar(&year, "year", 0, "New publication year")
	cmd.Flags().StringVar(&language, "language", "", "New language")
	cmd.Flags().IntVar(&pages, "pages", 0, "New page count")
	cmd.Flags().StringVar(&cover, "cover", "", "New cover image URL")
	cmd.Flags().StringVar(&bookURL, "url", "", "New external URL")
	return cmd
}
