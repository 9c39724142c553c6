package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/lendctl/internal/catalog"
)

// BookItem represents a book in the browser list.
type BookItem struct {
	Book   catalog.Book
	OnLoan bool
}

// FilterValue returns a string used for filtering in the list
func (b BookItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", b.Book.ID, b.Book.Title, b.Book.Author, b.Book.Language)
}

// Custom list item delegate for rendering books
type bookDelegate struct{}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	var s strings.Builder

	title := fmt.Sprintf("%-40s", truncate(bookItem.Book.Title, 40))
	author := fmt.Sprintf("%-20s", truncate(bookItem.Book.Author, 20))

	langStr := ""
	if bookItem.Book.Language != "" {
		langStr = " " + StyleLang.Render("["+bookItem.Book.Language+"]")
	}

	loanMark := ""
	if bookItem.OnLoan {
		loanMark = " " + StyleOnLoan.Render("⌛ on loan")
	}

	selMark := ""
	if bookItem.Book.Selected {
		selMark = " " + StyleHighlight.Render("›")
	}

	isCursor := index == m.Index()
	if isCursor {
		s.WriteString(StyleHighlight.Render("› " + title + " " + author + langStr + loanMark))
	} else {
		s.WriteString("  " + StyleNormal.Render(title) + " " + StyleHelp.Render(author) + langStr + loanMark + selMark)
	}

	_, _ = fmt.Fprint(w, s.String())
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
