package catalog

// PlaceholderCover is used when a book is added or edited without a cover URL.
const PlaceholderCover = "https://placehold.co/150x200"

// PlaceholderPrice is the fixed display price assigned to every book.
const PlaceholderPrice = "$0.00"

// Book is one entry in the books collection.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Year      int    `json:"year,omitempty"`
	Language  string `json:"language,omitempty"`
	Pages     int    `json:"pages,omitempty"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	URL       string `json:"url,omitempty"`
	Selected  bool   `json:"selected"`
}

// BookInput holds the caller-supplied fields for a new book. ID, price and
// the selection flag are assigned by the manager.
type BookInput struct {
	Title     string
	Author    string
	Publisher string
	Year      int
	Language  string
	Pages     int
	Cover     string
	URL       string
}

// BookPatch is a partial update for a book. Nil fields keep the current value.
type BookPatch struct {
	Title     *string
	Author    *string
	Publisher *string
	Year      *int
	Language  *string
	Pages     *int
	Cover     *string
	URL       *string
}

// apply merges the patch into b, leaving nil fields untouched.
// The cover falls back to the existing image, then the placeholder.
func (p BookPatch) apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Language != nil {
		b.Language = *p.Language
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Cover != nil {
		b.Image = *p.Cover
	} else if b.Image == "" {
		b.Image = PlaceholderCover
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	return b
}
