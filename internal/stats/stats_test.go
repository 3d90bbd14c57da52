package stats

import (
	"testing"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	books := []domain.Book{
		{ID: 1, Quantity: 3},
		{ID: 2, Quantity: 0},
		{ID: 3, Quantity: 1},
	}
	librarians := []domain.Librarian{{ID: 1}, {ID: 2}}
	pending := []domain.Librarian{{ID: 3}}
	users := []domain.User{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	borrowed := []domain.BorrowRecord{
		{ID: 1, UserID: 1, BookID: 1},
		{ID: 2, UserID: 2, BookID: 3},
	}
	returned := []domain.BorrowRecord{
		{ID: 3, UserID: 1, BookID: 2, ReturnDate: "2026-01-05"},
	}

	d := Derive(books, librarians, pending, users, borrowed, returned)

	assert.Equal(t, 3, d.TotalBooks)
	assert.Equal(t, 2, d.AvailableBooks)
	assert.Equal(t, 1, d.UnavailableBooks)
	assert.Equal(t, 2, d.TotalLibrarians)
	assert.Equal(t, 1, d.PendingLibrarians)
	assert.Equal(t, 4, d.TotalUsers)
	assert.Equal(t, 2, d.BooksOnLoan)
	assert.Equal(t, 1, d.CompletedBorrows)
}

func TestDerive_AvailabilityIgnoresStoredFlag(t *testing.T) {
	// A stale snapshot can carry AvailabilityStatus out of sync with
	// quantity; derivation must trust quantity.
	books := []domain.Book{{ID: 1, Quantity: 5, AvailabilityStatus: false}}
	d := Derive(books, nil, nil, nil, nil, nil)
	assert.Equal(t, 1, d.AvailableBooks)
	assert.Equal(t, 0, d.UnavailableBooks)
}

func TestDerive_Empty(t *testing.T) {
	d := Derive(nil, nil, nil, nil, nil, nil)
	assert.Equal(t, Dashboard{}, d)
}
