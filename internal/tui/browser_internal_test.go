package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/list"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/loan"
	"github.com/blackwell-systems/lendctl/internal/lookup"
	"github.com/blackwell-systems/lendctl/internal/store"
)

func testModel(t *testing.T, titles ...string) model {
	t.Helper()
	st := store.NewMemStore()
	books := catalog.NewManager(st, nil)
	loans := loan.NewManager(st, books, nil)
	_ = books.Open()
	_ = loans.Open()
	for _, title := range titles {
		books.Add(catalog.BookInput{Title: title})
	}
	m := model{books: books, loans: loans, langIdx: -1}
	m.list = list.New(m.buildItems(), bookDelegate{}, 80, 24)
	return m
}

func TestSimilarMsg_AppliedForCurrentTitle(t *testing.T) {
	m := testModel(t, "Dune")
	b := m.books.Books()[0]
	m.mode = modeDetails
	m.detail = &b
	m.loading = true

	msg := similarMsg{title: "Dune", results: []lookup.Result{{ISBN13: "978", Title: "Dune Messiah"}}}
	updated, _ := m.Update(msg)
	got := updated.(model)

	if got.loading {
		t.Error("still loading after matching completion")
	}
	if len(got.similar) != 1 || got.similar[0].Title != "Dune Messiah" {
		t.Errorf("similar = %+v", got.similar)
	}
}

func TestSimilarMsg_StaleTitleDiscarded(t *testing.T) {
	m := testModel(t, "Dune", "Foundation")
	b := m.books.Books()[1] // viewing Foundation now
	m.mode = modeDetails
	m.detail = &b
	m.loading = true

	// Completion for the previously viewed title arrives late.
	msg := similarMsg{title: "Dune", results: []lookup.Result{{ISBN13: "978", Title: "Dune Messiah"}}}
	updated, _ := m.Update(msg)
	got := updated.(model)

	if len(got.similar) != 0 {
		t.Errorf("stale results applied: %+v", got.similar)
	}
	if !got.loading {
		t.Error("loading cleared by a stale completion")
	}
}

func TestSimilarMsg_DiscardedAfterLeavingDetails(t *testing.T) {
	m := testModel(t, "Dune")
	m.mode = modeList

	msg := similarMsg{title: "Dune", err: errors.New("boom")}
	updated, _ := m.Update(msg)
	got := updated.(model)

	if got.lookupErr != "" {
		t.Errorf("error applied with no details pane open: %q", got.lookupErr)
	}
}

func TestSimilarMsg_ErrorState(t *testing.T) {
	m := testModel(t, "Dune")
	b := m.books.Books()[0]
	m.mode = modeDetails
	m.detail = &b
	m.loading = true

	msg := similarMsg{title: "Dune", err: errors.New("boom")}
	updated, _ := m.Update(msg)
	got := updated.(model)

	if got.loading {
		t.Error("still loading after failed completion")
	}
	if got.lookupErr == "" {
		t.Error("lookup error not surfaced")
	}
	if len(got.similar) != 0 {
		t.Errorf("results set alongside an error: %+v", got.similar)
	}
}

func TestCycleLanguage(t *testing.T) {
	st := store.NewMemStore()
	books := catalog.NewManager(st, nil)
	loans := loan.NewManager(st, books, nil)
	_ = books.Open()
	_ = loans.Open()
	books.Add(catalog.BookInput{Title: "Dune", Language: "English"})
	books.Add(catalog.BookInput{Title: "Le Petit Prince", Language: "French"})

	m := model{books: books, loans: loans, langIdx: -1}
	m.list = list.New(m.buildItems(), bookDelegate{}, 80, 24)

	m.cycleLanguage() // → English
	if len(m.list.Items()) != 1 {
		t.Errorf("English view: %d items, want 1", len(m.list.Items()))
	}
	m.cycleLanguage() // → French
	if len(m.list.Items()) != 1 {
		t.Errorf("French view: %d items, want 1", len(m.list.Items()))
	}
	m.cycleLanguage() // → all
	if len(m.list.Items()) != 2 {
		t.Errorf("all view: %d items, want 2", len(m.list.Items()))
	}
}
