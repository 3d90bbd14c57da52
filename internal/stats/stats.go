// Package stats derives the dashboard counters from collection snapshots.
// Everything here is a pure function of its inputs; nothing is stored.
package stats

import "github.com/dareenhdeya/iaProj/internal/domain"

// Dashboard is the set of counters shown on the landing screen.
type Dashboard struct {
	TotalBooks        int
	AvailableBooks    int
	UnavailableBooks  int
	TotalLibrarians   int
	PendingLibrarians int
	TotalUsers        int
	BooksOnLoan       int
	CompletedBorrows  int
}

// Derive computes dashboard counters from the current snapshots. Availability
// is recomputed from quantity here, not read from the stored flag, so a stale
// snapshot can never show a positive-quantity book as unavailable.
func Derive(books []domain.Book, librarians, pending []domain.Librarian, users []domain.User, borrowed, returned []domain.BorrowRecord) Dashboard {
	d := Dashboard{
		TotalBooks:        len(books),
		TotalLibrarians:   len(librarians),
		PendingLibrarians: len(pending),
		TotalUsers:        len(users),
		CompletedBorrows:  len(returned),
	}
	for _, b := range books {
		if b.Available() {
			d.AvailableBooks++
		} else {
			d.UnavailableBooks++
		}
	}
	for _, r := range borrowed {
		if !r.Returned() {
			d.BooksOnLoan++
		}
	}
	return d
}
