package loan

import (
	"strconv"
	"strings"
	"time"
)

// Week bounds for a loan.
const (
	MinWeeks = 1
	MaxWeeks = 4
)

// SentinelTitle is shown when a loan's book can no longer be found.
const SentinelTitle = "(deleted book)"

// Loan is one entry in the loans collection.
type Loan struct {
	ID       string    `json:"id"`
	Borrower string    `json:"borrower"`
	BookID   string    `json:"bookId"`
	Weeks    int       `json:"weeks"`
	Due      time.Time `json:"dueDate"`
}

// ActiveLoan is a loan joined with its book's title for display.
type ActiveLoan struct {
	Loan
	Title string
}

// ClampWeeks forces n into [MinWeeks, MaxWeeks].
func ClampWeeks(n int) int {
	if n < MinWeeks {
		return MinWeeks
	}
	if n > MaxWeeks {
		return MaxWeeks
	}
	return n
}

// ParseWeeks converts free-form week input to an int, treating empty or
// non-numeric values as MinWeeks. The result is not yet clamped.
func ParseWeeks(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return MinWeeks
	}
	return n
}

// DueDate computes the due timestamp for a loan created at t.
func DueDate(t time.Time, weeks int) time.Time {
	return t.Add(time.Duration(weeks) * 7 * 24 * time.Hour)
}
