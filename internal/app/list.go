package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		language      string
		languagesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog, optionally filtered by language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if languagesOnly {
				langs := books.Languages()
				if len(langs) == 0 {
					fmt.Println("No languages yet.")
					return nil
				}
				fmt.Println(strings.Join(langs, "\n"))
				return nil
			}

			books.SetLanguageFilter(language)
			shown := books.Filtered()
			if len(shown) == 0 {
				if language != "" {
					fmt.Printf("No books in %s.\n", language)
				} else {
					fmt.Println("Catalog is empty — add one with 'lendctl add'.")
				}
				return nil
			}

			if language != "" {
				header("Catalog — %s (%d)", language, len(shown))
			} else {
				header("Catalog (%d)", len(shown))
			}
			for _, b := range shown {
				marks := ""
				if b.Selected {
					marks += " " + color.YellowString("› selected")
				}
				if loans.OnLoan(b.ID) {
					marks += " " + color.RedString("on loan")
				}
				line := fmt.Sprintf("  %-8s  %-40s %-20s %s",
					shorten(b.ID), truncate(b.Title, 40), truncate(b.Author, 20), b.Language)
				fmt.Println(line + marks)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Show only books in this language")
	cmd.Flags().BoolVar(&languagesOnly, "languages", false, "Print the distinct languages instead")
	return cmd
}

// truncate trims s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
