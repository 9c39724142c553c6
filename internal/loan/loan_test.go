package loan_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/loan"
	"github.com/blackwell-systems/lendctl/internal/store"
)

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// fixture wires a catalog and loan manager over one shared memory store.
type fixture struct {
	books *catalog.Manager
	loans *loan.Manager
	store *store.MemStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewMemStore()
	books := catalog.NewManager(st, nil)
	loans := loan.NewManager(st, books, nil)
	books.NotifyDelete(func(bookID string) {
		loans.RemoveForBook(bookID)
	})
	loans.SetClock(func() time.Time { return testNow })
	if err := books.Open(); err != nil {
		t.Fatalf("books.Open: %v", err)
	}
	if err := loans.Open(); err != nil {
		t.Fatalf("loans.Open: %v", err)
	}
	return &fixture{books: books, loans: loans, store: st}
}

// --- week clamping ---

func TestClampWeeks(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{-5, 1},
		{1, 1},
		{3, 3},
		{4, 4},
		{10, 4},
	}
	for _, c := range cases {
		if got := loan.ClampWeeks(c.in); got != c.want {
			t.Errorf("ClampWeeks(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseWeeks(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{" 3 ", 3},
		{"10", 10},
		{"-5", -5},
	}
	for _, c := range cases {
		if got := loan.ParseWeeks(c.in); got != c.want {
			t.Errorf("ParseWeeks(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCreate_WeeksCoercion(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{3, 3},
		{10, 4},
	}
	for _, c := range cases {
		f := newFixture(t)
		b := f.books.Add(catalog.BookInput{Title: "Dune"})
		l, err := f.loans.Create("Alice", b.ID, c.in)
		if err != nil {
			t.Fatalf("Create(weeks=%d): %v", c.in, err)
		}
		if l.Weeks != c.want {
			t.Errorf("Create(weeks=%d).Weeks = %d, want %d", c.in, l.Weeks, c.want)
		}
	}
}

// --- due dates ---

func TestCreate_DueDate(t *testing.T) {
	f := newFixture(t)
	b := f.books.Add(catalog.BookInput{Title: "Dune"})
	l, err := f.loans.Create("Alice", b.ID, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := testNow.Add(14 * 24 * time.Hour)
	if !l.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", l.Due, want)
	}
}

// --- validation ---

func TestCreate_EmptyBorrower(t *testing.T) {
	f := newFixture(t)
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})

	for _, name := range []string{"", "   ", "\t"} {
		_, err := f.loans.Create(name, b.ID, 1)
		if !errors.Is(err, loan.ErrEmptyBorrower) {
			t.Errorf("Create(%q): err = %v, want ErrEmptyBorrower", name, err)
		}
	}
	if len(f.loans.Loans()) != 0 {
		t.Errorf("loans collection changed: %+v", f.loans.Loans())
	}
}

func TestCreate_TrimsBorrower(t *testing.T) {
	f := newFixture(t)
	b := f.books.Add(catalog.BookInput{Title: "Dune"})
	l, err := f.loans.Create("  Alice  ", b.ID, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Borrower != "Alice" {
		t.Errorf("Borrower = %q, want %q", l.Borrower, "Alice")
	}
}

func TestCreate_UnknownBook(t *testing.T) {
	f := newFixture(t)
	_, err := f.loans.Create("Alice", "missing", 1)
	if !errors.Is(err, loan.ErrBookNotFound) {
		t.Errorf("err = %v, want ErrBookNotFound", err)
	}
}

func TestCreate_DoubleLoanRejected(t *testing.T) {
	f := newFixture(t)
	b := f.books.Add(catalog.BookInput{Title: "Dune"})
	if _, err := f.loans.Create("Alice", b.ID, 1); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := f.loans.Create("Bob", b.ID, 1)
	if !errors.Is(err, loan.ErrBookOnLoan) {
		t.Errorf("err = %v, want ErrBookOnLoan", err)
	}
	if len(f.loans.Loans()) != 1 {
		t.Errorf("expected 1 loan, got %d", len(f.loans.Loans()))
	}
}

// --- return ---

func TestReturn(t *testing.T) {
	f := newFixture(t)
	b := f.books.Add(catalog.BookInput{Title: "Dune"})
	l, _ := f.loans.Create("Alice", b.ID, 1)

	if !f.loans.Return(l.ID) {
		t.Error("Return returned false for existing loan")
	}
	if f.loans.Return(l.ID) {
		t.Error("Return returned true for already-returned loan")
	}
	if len(f.loans.Loans()) != 0 {
		t.Errorf("loans not empty after return")
	}
}

// --- available/active partition ---

func TestAvailableActivePartition(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})
	c := f.books.Add(catalog.BookInput{Title: "Hyperion"})
	f.loans.Create("Alice", a.ID, 1)
	f.loans.Create("Bob", c.ID, 2)

	activeBooks := make(map[string]bool)
	for _, l := range f.loans.Active() {
		activeBooks[l.BookID] = true
	}
	availableBooks := make(map[string]bool)
	for _, bk := range f.loans.Available() {
		availableBooks[bk.ID] = true
	}

	for _, bk := range []catalog.Book{a, b, c} {
		inActive := activeBooks[bk.ID]
		inAvailable := availableBooks[bk.ID]
		if inActive == inAvailable {
			t.Errorf("book %q: active=%v available=%v, want exactly one", bk.Title, inActive, inAvailable)
		}
	}
}

func TestActive_InsertionOrderAndTitles(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})
	f.loans.Create("Alice", b.ID, 1)
	f.loans.Create("Bob", a.ID, 1)

	active := f.loans.Active()
	if len(active) != 2 {
		t.Fatalf("Active = %d entries, want 2", len(active))
	}
	if active[0].Title != "Foundation" || active[1].Title != "Dune" {
		t.Errorf("titles out of order: %q, %q", active[0].Title, active[1].Title)
	}
	if active[0].Borrower != "Alice" || active[1].Borrower != "Bob" {
		t.Errorf("borrowers out of order: %q, %q", active[0].Borrower, active[1].Borrower)
	}
}

// --- cascade delete ---

func TestDeleteBook_CascadesLoans(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})
	f.loans.Create("Alice", a.ID, 1)
	f.loans.Create("Bob", b.ID, 1)

	f.books.Delete(a.ID)

	for _, l := range f.loans.Active() {
		if l.BookID == a.ID {
			t.Errorf("loan for deleted book survives: %+v", l)
		}
	}
	if len(f.loans.Loans()) != 1 {
		t.Errorf("expected 1 loan after cascade, got %d", len(f.loans.Loans()))
	}
}

func TestDeleteBook_OnlyLoanGone(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	f.loans.Create("Alice", a.ID, 1)

	f.books.Delete(a.ID)

	if got := f.loans.Active(); len(got) != 0 {
		t.Errorf("Active after delete = %+v, want empty", got)
	}
}

// --- sentinel join ---

// orphanReader serves a book list that no longer contains the loaned book,
// standing in for a reader that observes the gap before the cascade fires.
type orphanReader struct{}

func (orphanReader) Books() []catalog.Book        { return nil }
func (orphanReader) ByID(id string) *catalog.Book { return nil }

func TestActive_SentinelTitleForMissingBook(t *testing.T) {
	st := store.NewMemStore()
	data, _ := loan.Marshal([]loan.Loan{{
		ID:       "l1",
		Borrower: "Alice",
		BookID:   "gone",
		Weeks:    1,
		Due:      testNow,
	}})
	_ = st.Save(loan.Collection, data)

	loans := loan.NewManager(st, orphanReader{}, nil)
	if err := loans.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	active := loans.Active()
	if len(active) != 1 {
		t.Fatalf("Active = %d entries, want 1", len(active))
	}
	if active[0].Title != loan.SentinelTitle {
		t.Errorf("Title = %q, want %q", active[0].Title, loan.SentinelTitle)
	}
}

// --- persistence round-trip ---

func TestLoans_RoundTrip(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})
	f.loans.Create("Alice", a.ID, 2)
	f.loans.Create("Bob", b.ID, 4)

	data, ok, err := f.store.Load(loan.Collection)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	restored, err := loan.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(restored, f.loans.Loans()) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", restored, f.loans.Loans())
	}
}

// --- full scenario ---

func TestScenario_LendAndReturn(t *testing.T) {
	f := newFixture(t)
	a := f.books.Add(catalog.BookInput{Title: "Dune"})
	b := f.books.Add(catalog.BookInput{Title: "Foundation"})

	avail := f.loans.Available()
	if len(avail) != 2 {
		t.Fatalf("Available = %d, want 2", len(avail))
	}

	l, err := f.loans.Create("Alice", a.ID, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	avail = f.loans.Available()
	if len(avail) != 1 || avail[0].ID != b.ID {
		t.Errorf("Available after lend = %+v, want [Foundation]", avail)
	}

	active := f.loans.Active()
	if len(active) != 1 {
		t.Fatalf("Active = %d, want 1", len(active))
	}
	got := active[0]
	if got.Borrower != "Alice" || got.Title != "Dune" || got.Weeks != 2 {
		t.Errorf("active loan = %+v", got)
	}
	if want := testNow.Add(14 * 24 * time.Hour); !got.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", got.Due, want)
	}

	f.loans.Return(l.ID)
	if len(f.loans.Available()) != 2 {
		t.Errorf("Available after return = %d, want 2", len(f.loans.Available()))
	}
	if len(f.loans.Active()) != 0 {
		t.Errorf("Active after return = %d, want 0", len(f.loans.Active()))
	}
}
