package loan

import "errors"

// Validation failures reported by Create. None of them mutate the collection.
var (
	// ErrEmptyBorrower is returned when the borrower name is empty after trimming.
	ErrEmptyBorrower = errors.New("borrower name is empty")
	// ErrBookNotFound is returned when the book ID matches no catalog entry.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookOnLoan is returned when the book already has an active loan.
	ErrBookOnLoan = errors.New("book is already on loan")
)
