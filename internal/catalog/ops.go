package catalog

// Append adds a book to the list and returns the updated slice.
// If a book with the same ID already exists it is replaced.
func Append(books []Book, b Book) []Book {
	for i, existing := range books {
		if existing.ID == b.ID {
			books[i] = b
			return books
		}
	}
	return append(books, b)
}

// Remove removes a book by ID. Returns the updated slice and whether a book
// was actually removed.
func Remove(books []Book, id string) ([]Book, bool) {
	for i, b := range books {
		if b.ID == id {
			return append(books[:i], books[i+1:]...), true
		}
	}
	return books, false
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// Select toggles the selection flag on the book with the given ID: selecting
// an already-selected book clears it, selecting any other book clears every
// other flag, so at most one book is ever selected. Returns whether the ID
// matched a book.
func Select(books []Book, id string) bool {
	found := false
	for i := range books {
		if books[i].ID == id {
			books[i].Selected = !books[i].Selected
			found = true
		} else {
			books[i].Selected = false
		}
	}
	return found
}

// Selected returns the currently selected book, or nil.
func Selected(books []Book) *Book {
	for i := range books {
		if books[i].Selected {
			return &books[i]
		}
	}
	return nil
}

// Languages returns the distinct non-empty languages in first-seen order.
func Languages(books []Book) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range books {
		if b.Language == "" {
			continue
		}
		if _, ok := seen[b.Language]; ok {
			continue
		}
		seen[b.Language] = struct{}{}
		out = append(out, b.Language)
	}
	return out
}

// FilterByLanguage returns the books matching lang. An empty lang means no
// filter and returns all books.
func FilterByLanguage(books []Book, lang string) []Book {
	if lang == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		if b.Language == lang {
			out = append(out, b)
		}
	}
	return out
}
