package activity

import (
	"testing"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByUser(t *testing.T) {
	users := []domain.User{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Zed"},
		{ID: 3, Name: "Idle"},
	}
	books := []domain.Book{
		{ID: 10, Name: "Dune"},
		{ID: 11, Name: "Emma"},
	}
	records := []domain.BorrowRecord{
		{ID: 1, UserID: 1, BookID: 10},
		{ID: 2, UserID: 1, BookID: 11, ReturnDate: "2026-02-01"},
		{ID: 3, UserID: 2, BookID: 10},
	}

	groups := GroupByUser(records, users, books)
	require.Len(t, groups, 2)

	// Sorted by user name; users with no activity are omitted.
	assert.Equal(t, "Ada", groups[0].User.Name)
	assert.Equal(t, "Zed", groups[1].User.Name)

	ada := groups[0]
	require.Len(t, ada.Current, 1)
	require.Len(t, ada.History, 1)
	assert.Equal(t, "Dune", ada.Current[0].Book.Name)
	assert.Equal(t, "Emma", ada.History[0].Book.Name)
}

func TestGroupByUser_SkipsDanglingReferences(t *testing.T) {
	users := []domain.User{{ID: 1, Name: "Ada"}}
	books := []domain.Book{{ID: 10, Name: "Dune"}}
	records := []domain.BorrowRecord{
		{ID: 1, UserID: 1, BookID: 10},
		{ID: 2, UserID: 99, BookID: 10}, // unknown user
		{ID: 3, UserID: 1, BookID: 99},  // unknown book
	}

	groups := GroupByUser(records, users, books)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Current, 1)
	assert.Empty(t, groups[0].History)
}

func TestGroupByUser_Empty(t *testing.T) {
	assert.Empty(t, GroupByUser(nil, nil, nil))
}
