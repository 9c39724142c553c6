package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/lendctl/internal/store"
)

// Collection is the store name for the books collection.
const Collection = "books"

// Manager owns the books collection, the selection flag and the language
// filter. All mutations persist through the store before returning; a failed
// save is logged and otherwise ignored so the in-memory state stays usable.
type Manager struct {
	store    store.Adapter
	log      *logrus.Logger
	books    []Book
	filter   string
	onDelete func(bookID string)
}

// NewManager creates a Manager backed by st.
func NewManager(st store.Adapter, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	return &Manager{store: st, log: log, books: []Book{}}
}

// Open loads the books collection. Absent data means an empty catalog.
func (m *Manager) Open() error {
	data, ok, err := m.store.Load(Collection)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if !ok {
		m.books = []Book{}
		return nil
	}
	books, err := Parse(data)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	m.books = books
	return nil
}

// NotifyDelete registers a hook invoked before a book's removal is persisted.
// The loan manager uses it to drop the book's loans first, so no reader ever
// observes a loan for a book that is already gone.
func (m *Manager) NotifyDelete(fn func(bookID string)) {
	m.onDelete = fn
}

// Add constructs a new book from in and appends it to the catalog.
func (m *Manager) Add(in BookInput) Book {
	cover := in.Cover
	if cover == "" {
		cover = PlaceholderCover
	}
	b := Book{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    in.Author,
		Publisher: in.Publisher,
		Year:      in.Year,
		Language:  in.Language,
		Pages:     in.Pages,
		Image:     cover,
		Price:     PlaceholderPrice,
		URL:       in.URL,
		Selected:  false,
	}
	m.books = Append(m.books, b)
	m.persist()
	return b
}

// EditSelected merges the patch into the currently selected book. Returns the
// updated book and true, or the zero Book and false when nothing is selected.
func (m *Manager) EditSelected(p BookPatch) (Book, bool) {
	sel := Selected(m.books)
	if sel == nil {
		return Book{}, false
	}
	edited := p.apply(*sel)
	m.books = Append(m.books, edited)
	m.persist()
	return edited, true
}

// Delete removes the book with the given ID. The cascade hook runs first so
// the book's loans are removed and persisted before the book itself vanishes.
// Returns whether a book was removed.
func (m *Manager) Delete(id string) bool {
	if ByID(m.books, id) == nil {
		return false
	}
	if m.onDelete != nil {
		m.onDelete(id)
	}
	m.books, _ = Remove(m.books, id)
	m.persist()
	return true
}

// Select toggles selection of the book with the given ID.
func (m *Manager) Select(id string) bool {
	found := Select(m.books, id)
	if found {
		m.persist()
	}
	return found
}

// Selected returns a copy of the selected book, or nil.
func (m *Manager) Selected() *Book {
	sel := Selected(m.books)
	if sel == nil {
		return nil
	}
	b := *sel
	return &b
}

// SetLanguageFilter sets the language filter. Empty means show all.
func (m *Manager) SetLanguageFilter(lang string) {
	m.filter = lang
}

// LanguageFilter returns the current filter value.
func (m *Manager) LanguageFilter() string {
	return m.filter
}

// Filtered returns the books matching the current language filter.
func (m *Manager) Filtered() []Book {
	return copyBooks(FilterByLanguage(m.books, m.filter))
}

// Languages returns the distinct languages across the catalog.
func (m *Manager) Languages() []string {
	return Languages(m.books)
}

// Books returns a copy of the full catalog.
func (m *Manager) Books() []Book {
	return copyBooks(m.books)
}

// ByID returns a copy of the book with the given ID, or nil.
func (m *Manager) ByID(id string) *Book {
	b := ByID(m.books, id)
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

func (m *Manager) persist() {
	data, err := Marshal(m.books)
	if err != nil {
		m.log.WithError(err).Warn("encoding books collection")
		return
	}
	if err := m.store.Save(Collection, data); err != nil {
		m.log.WithError(err).Warn("saving books collection")
	}
}

func copyBooks(books []Book) []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}
