package loan

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/store"
)

// Collection is the store name for the loans collection.
const Collection = "loans"

// BookReader is the read-only view of the catalog the loan manager needs.
// It never mutates books through it.
type BookReader interface {
	Books() []catalog.Book
	ByID(id string) *catalog.Book
}

// Manager owns the loans collection. Mutations persist through the store;
// failed saves are logged and otherwise ignored, like the catalog manager.
type Manager struct {
	store store.Adapter
	log   *logrus.Logger
	books BookReader
	now   func() time.Time
	loans []Loan
}

// NewManager creates a Manager backed by st, reading books through br.
func NewManager(st store.Adapter, br BookReader, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	return &Manager{store: st, log: log, books: br, now: time.Now, loans: []Loan{}}
}

// SetClock overrides the creation-time source. Tests use a fixed clock to pin
// due dates.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Open loads the loans collection. Absent data means no loans.
func (m *Manager) Open() error {
	data, ok, err := m.store.Load(Collection)
	if err != nil {
		return fmt.Errorf("loading loans: %w", err)
	}
	if !ok {
		m.loans = []Loan{}
		return nil
	}
	loans, err := Parse(data)
	if err != nil {
		return fmt.Errorf("loading loans: %w", err)
	}
	m.loans = loans
	return nil
}

// Create validates and appends a new loan. The borrower must be non-empty
// after trimming and the book must exist and have no active loan; a loan
// against an already-loaned book is rejected outright rather than trusting
// callers to only offer available candidates. Weeks are clamped to
// [MinWeeks, MaxWeeks].
func (m *Manager) Create(borrower, bookID string, weeks int) (Loan, error) {
	borrower = strings.TrimSpace(borrower)
	if borrower == "" {
		return Loan{}, ErrEmptyBorrower
	}
	if m.books.ByID(bookID) == nil {
		return Loan{}, ErrBookNotFound
	}
	if m.loanForBook(bookID) != nil {
		return Loan{}, ErrBookOnLoan
	}

	weeks = ClampWeeks(weeks)
	l := Loan{
		ID:       uuid.NewString(),
		Borrower: borrower,
		BookID:   bookID,
		Weeks:    weeks,
		Due:      DueDate(m.now(), weeks),
	}
	m.loans = append(m.loans, l)
	m.persist()
	return l, nil
}

// Return removes the loan with the given ID. Unknown IDs are a no-op.
func (m *Manager) Return(loanID string) bool {
	for i, l := range m.loans {
		if l.ID == loanID {
			m.loans = append(m.loans[:i], m.loans[i+1:]...)
			m.persist()
			return true
		}
	}
	return false
}

// RemoveForBook drops every loan referencing bookID and persists the result.
// The catalog manager calls this from its delete cascade. Returns the number
// of loans removed.
func (m *Manager) RemoveForBook(bookID string) int {
	kept := m.loans[:0]
	removed := 0
	for _, l := range m.loans {
		if l.BookID == bookID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	if removed == 0 {
		return 0
	}
	m.loans = kept
	m.persist()
	return removed
}

// Active returns the loans in insertion order, each joined with its book's
// title. A loan whose book is gone gets the sentinel title; after the delete
// cascade that case should not occur, but the join tolerates it.
func (m *Manager) Active() []ActiveLoan {
	out := make([]ActiveLoan, 0, len(m.loans))
	for _, l := range m.loans {
		title := SentinelTitle
		if b := m.books.ByID(l.BookID); b != nil {
			title = b.Title
		}
		out = append(out, ActiveLoan{Loan: l, Title: title})
	}
	return out
}

// Available returns the books with no active loan, in catalog order.
func (m *Manager) Available() []catalog.Book {
	var out []catalog.Book
	for _, b := range m.books.Books() {
		if m.loanForBook(b.ID) == nil {
			out = append(out, b)
		}
	}
	return out
}

// OnLoan reports whether the book has an active loan.
func (m *Manager) OnLoan(bookID string) bool {
	return m.loanForBook(bookID) != nil
}

// Loans returns a copy of the raw loans collection.
func (m *Manager) Loans() []Loan {
	out := make([]Loan, len(m.loans))
	copy(out, m.loans)
	return out
}

func (m *Manager) loanForBook(bookID string) *Loan {
	for i := range m.loans {
		if m.loans[i].BookID == bookID {
			return &m.loans[i]
		}
	}
	return nil
}

func (m *Manager) persist() {
	data, err := Marshal(m.loans)
	if err != nil {
		m.log.WithError(err).Warn("encoding loans collection")
		return
	}
	if err := m.store.Save(Collection, data); err != nil {
		m.log.WithError(err).Warn("saving loans collection")
	}
}
