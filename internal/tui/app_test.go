package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/log"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	logger := log.NullLogger()
	notifier := notify.NewChannel()
	return NewModel(Deps{
		Notifier:   notifier,
		Logger:     logger,
		AdminID:    1,
		Books:      collection.New(collection.Config[domain.Book]{Name: "books"}, notifier, logger),
		Librarians: collection.New(collection.Config[domain.Librarian]{Name: "librarians"}, notifier, logger),
		Pending:    collection.New(collection.Config[domain.Librarian]{Name: "pending librarians"}, notifier, logger),
		Users:      collection.New(collection.Config[domain.User]{Name: "users"}, notifier, logger),
		Borrowed:   collection.New(collection.Config[domain.BorrowRecord]{Name: "borrowed books"}, notifier, logger),
		Returned:   collection.New(collection.Config[domain.BorrowRecord]{Name: "returned books"}, notifier, logger),
		Index:      search.NewBookIndex(logger),
	})
}

func TestLoadingClearsOnceEveryCollectionAnswers(t *testing.T) {
	m := newTestModel()
	require.Equal(t, collectionLoads, m.loading)

	collections := []string{
		"books", "librarians", "pending librarians",
		"users", "borrowed books", "returned books",
	}
	for _, name := range collections {
		next, _ := m.Update(CollectionLoadedMsg{Collection: name})
		m = next.(Model)
	}

	assert.Equal(t, 0, m.loading)
}

func TestSpinnerStopsTickingWhenIdle(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(spinner.TickMsg{})
	m = next.(Model)
	assert.NotNil(t, cmd, "spinner keeps ticking while loads are in flight")

	m.loading = 0
	_, cmd = m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestFailedLoadCountsAsAnswered(t *testing.T) {
	m := newTestModel()
	before := m.loading

	next, _ := m.Update(ErrMsg{Err: domain.ErrServerUnreachable, Context: "loading books"})
	m = next.(Model)

	assert.Equal(t, before-1, m.loading)
	assert.NotEmpty(t, m.loadErr)
}
