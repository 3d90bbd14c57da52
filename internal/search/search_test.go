package search

import (
	"testing"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesKeyword(t *testing.T) {
	book := domain.Book{Name: "Dune", Author: "Frank Herbert", Category: "Science Fiction"}

	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"empty matches everything", "", true},
		{"whitespace matches everything", "   ", true},
		{"name prefix", "du", true},
		{"name prefix case-insensitive", "DuN", true},
		{"author prefix", "frank", true},
		{"category prefix", "science", true},
		{"mid-word is not a prefix", "une", false},
		{"no match", "tolkien", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesKeyword(book, tt.keyword))
		})
	}
}

func TestBookIndexSearch(t *testing.T) {
	idx := NewBookIndex(nil)
	idx.Reindex([]domain.Book{
		{ID: 1, Name: "The Left Hand of Darkness"},
		{ID: 2, Name: "Leftovers"},
		{ID: 3, Name: "Dune"},
	})

	results := idx.Search("left")
	require.NotEmpty(t, results)
	// Prefix match outranks a match buried mid-title.
	assert.Equal(t, "Leftovers", results[0].Name)

	for _, b := range results {
		assert.NotEqual(t, "Dune", b.Name)
	}
}

func TestBookIndexSearch_EmptyQuery(t *testing.T) {
	idx := NewBookIndex(nil)
	idx.Reindex([]domain.Book{{ID: 1, Name: "Dune"}})
	assert.Nil(t, idx.Search(""))
	assert.Nil(t, idx.Search("   "))
}

func TestBookIndexReindexReplaces(t *testing.T) {
	idx := NewBookIndex(nil)
	idx.Reindex([]domain.Book{{ID: 1, Name: "Dune"}})
	require.Equal(t, 1, idx.Len())

	idx.Reindex([]domain.Book{{ID: 2, Name: "Emma"}, {ID: 3, Name: "Dracula"}})
	assert.Equal(t, 2, idx.Len())
	assert.Empty(t, idx.Search("dune"))
}
