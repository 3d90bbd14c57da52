package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovedLibrarians(t *testing.T) {
	libs := []Librarian{
		{ID: 1, Name: "Ada", IsApproved: true},
		{ID: 2, Name: "Bea"},
		{ID: 3, Name: "Cal", IsApproved: true},
	}

	got := ApprovedLibrarians(libs)

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestApprovedLibrarians_Empty(t *testing.T) {
	assert.Empty(t, ApprovedLibrarians(nil))
	assert.Empty(t, ApprovedLibrarians([]Librarian{{ID: 1}}))
}

func TestBookAvailable(t *testing.T) {
	assert.True(t, Book{Quantity: 1}.Available())
	assert.False(t, Book{Quantity: 0}.Available())
}

func TestBorrowRecordReturned(t *testing.T) {
	assert.True(t, BorrowRecord{ReturnDate: "2026-01-05"}.Returned())
	assert.False(t, BorrowRecord{}.Returned())
}
