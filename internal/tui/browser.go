package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/loan"
	"github.com/blackwell-systems/lendctl/internal/lookup"
)

// keyMap defines keyboard shortcuts
type keyMap struct {
	quit     key.Binding
	enter    key.Binding
	back     key.Binding
	language key.Binding
	filter   key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	language: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "cycle language"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}

// similarMsg carries the completion of a similar-titles lookup. It is tagged
// with the title it was fetched for; completions whose title no longer
// matches the open details pane are discarded, never applied.
type similarMsg struct {
	title   string
	results []lookup.Result
	err     error
}

type viewMode int

const (
	modeList viewMode = iota
	modeDetails
)

// model holds the state for the catalog browser
type model struct {
	books  *catalog.Manager
	loans  *loan.Manager
	looker *lookup.Client

	list      list.Model
	mode      viewMode
	detail    *catalog.Book
	languages []string
	langIdx   int // -1 = all languages

	similar   []lookup.Result
	loading   bool
	lookupErr string
	width     int
	height    int
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

// fetchSimilar issues one lookup for the given title.
func fetchSimilar(looker *lookup.Client, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		results, err := looker.Similar(ctx, title)
		return similarMsg{title: title, results: results, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.back):
			if m.mode == modeDetails {
				// Leaving details: any in-flight lookup completion for this
				// title arrives with no pane to apply to and is dropped.
				m.mode = modeList
				m.detail = nil
				m.similar = nil
				m.loading = false
				m.lookupErr = ""
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.enter):
			if m.mode != modeList {
				break
			}
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				b := item.Book
				m.mode = modeDetails
				m.detail = &b
				m.similar = nil
				m.lookupErr = ""
				m.loading = true
				return m, fetchSimilar(m.looker, b.Title)
			}

		case key.Matches(msg, keys.language):
			if m.mode != modeList {
				break
			}
			m.cycleLanguage()
			return m, nil
		}

	case similarMsg:
		// Stale completion: pane closed or a different title opened since.
		if m.mode != modeDetails || m.detail == nil || msg.title != m.detail.Title {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.lookupErr = msg.err.Error()
			m.similar = nil
		} else {
			m.similar = msg.results
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	if m.mode == modeList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// cycleLanguage advances the language filter: all → first → … → last → all.
func (m *model) cycleLanguage() {
	m.languages = m.books.Languages()
	m.langIdx++
	if m.langIdx >= len(m.languages) {
		m.langIdx = -1
	}
	lang := ""
	if m.langIdx >= 0 {
		lang = m.languages[m.langIdx]
	}
	m.books.SetLanguageFilter(lang)
	m.list.SetItems(m.buildItems())
	m.list.Title = browserTitle(lang)
}

// buildItems converts the filtered catalog into list items with loan badges.
func (m *model) buildItems() []list.Item {
	filtered := m.books.Filtered()
	items := make([]list.Item, len(filtered))
	for i, b := range filtered {
		items[i] = BookItem{Book: b, OnLoan: m.loans.OnLoan(b.ID)}
	}
	return items
}

func browserTitle(lang string) string {
	if lang == "" {
		return "Catalog"
	}
	return "Catalog — " + lang
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeDetails && m.detail != nil {
		return StyleBorder.Render(m.detailView())
	}
	return StyleBorder.Render(m.list.View())
}

func (m model) detailView() string {
	b := m.detail
	var s strings.Builder

	s.WriteString(StyleHeader.Render(b.Title) + "\n\n")
	if b.Author != "" {
		s.WriteString(fmt.Sprintf("  Author:    %s\n", b.Author))
	}
	if b.Publisher != "" {
		s.WriteString(fmt.Sprintf("  Publisher: %s\n", b.Publisher))
	}
	if b.Year != 0 {
		s.WriteString(fmt.Sprintf("  Year:      %d\n", b.Year))
	}
	if b.Language != "" {
		s.WriteString(fmt.Sprintf("  Language:  %s\n", StyleLang.Render(b.Language)))
	}
	if b.Pages != 0 {
		s.WriteString(fmt.Sprintf("  Pages:     %d\n", b.Pages))
	}
	s.WriteString(fmt.Sprintf("  Price:     %s\n", b.Price))

	if m.loans.OnLoan(b.ID) {
		s.WriteString("\n  " + StyleOnLoan.Render("Borrowed") + "\n")
	} else {
		s.WriteString("\n  " + StyleAvailable.Render("Available") + "\n")
	}

	s.WriteString("\n" + StyleHeader.Render("Similar titles") + "\n")
	switch {
	case m.loading:
		s.WriteString(StyleHelp.Render("  Loading…") + "\n")
	case m.lookupErr != "":
		s.WriteString(StyleError.Render("  Error: "+m.lookupErr) + "\n")
	case len(m.similar) == 0:
		s.WriteString(StyleHelp.Render("  No similar titles found.") + "\n")
	default:
		for _, r := range m.similar {
			s.WriteString(fmt.Sprintf("  %s  %s\n", StyleLang.Render(r.ISBN13), truncate(r.Title, 60)))
		}
	}

	s.WriteString("\n" + StyleHelp.Render("esc back · q quit"))
	return s.String()
}

// RunBrowser launches the interactive catalog browser.
func RunBrowser(books *catalog.Manager, loans *loan.Manager, looker *lookup.Client) error {
	m := model{
		books:   books,
		loans:   loans,
		looker:  looker,
		langIdx: -1,
	}
	books.SetLanguageFilter("")

	l := list.New(m.buildItems(), bookDelegate{}, 0, 0)
	l.Title = browserTitle("")
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.enter, keys.language}
	}
	m.list = l

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
