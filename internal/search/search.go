// Package search provides the catalog keyword filter and the ranked fuzzy
// title search used by the search overlay.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchesKeyword reports whether a book matches the catalog filter keyword.
// Matching is a case-insensitive prefix test against name, author, and
// category; an empty keyword matches everything.
func MatchesKeyword(book domain.Book, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(book.Name), keyword) ||
		strings.HasPrefix(strings.ToLower(book.Author), keyword) ||
		strings.HasPrefix(strings.ToLower(book.Category), keyword)
}

// BookIndex holds a fuzzy-searchable view of the catalog. Lowercase titles
// are pre-computed at index time.
type BookIndex struct {
	books       []domain.Book
	lowerTitles []string
	logger      *slog.Logger
}

// NewBookIndex creates an empty index.
func NewBookIndex(logger *slog.Logger) *BookIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookIndex{logger: logger}
}

// Reindex replaces the index contents with the given catalog snapshot.
func (idx *BookIndex) Reindex(books []domain.Book) {
	idx.books = books
	idx.lowerTitles = make([]string, len(books))
	for i, b := range books {
		idx.lowerTitles[i] = strings.ToLower(b.Name)
	}
	idx.logger.Debug("reindexed catalog", "count", len(books))
}

// Len returns the number of indexed books.
func (idx *BookIndex) Len() int { return len(idx.books) }

// Search returns books whose titles fuzzily match the query, best first.
func (idx *BookIndex) Search(query string) []domain.Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(idx.books) == 0 {
		return nil
	}

	matches := fuzzy.RankFindFold(query, idx.lowerTitles)

	type rankedBook struct {
		book  domain.Book
		score int
	}
	ranked := make([]rankedBook, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, rankedBook{
			book:  idx.books[match.OriginalIndex],
			score: matchScore(match.Target, query, match.Distance),
		})
	}

	// Sort by score (lower is better)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Book, len(ranked))
	for i, r := range ranked {
		results[i] = r.book
	}
	return results
}

// matchScore ranks a fuzzy match. Lower score = better match.
func matchScore(title, query string, distance int) int {
	if title == query {
		return 0
	}
	if strings.HasPrefix(title, query) {
		return 10
	}
	if strings.Contains(title, query) {
		return 50
	}
	return 100 + distance
}
