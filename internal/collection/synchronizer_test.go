package collection

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooks() []domain.Book {
	return []domain.Book{
		{ID: 1, Name: "Dune", Author: "Herbert", Category: "Science Fiction", Quantity: 2, AvailabilityStatus: true, Image: "https://x.co/a.jpg"},
		{ID: 2, Name: "Emma", Author: "Austen", Category: "Fiction", Quantity: 0, Image: "https://x.co/b.jpg"},
		{ID: 3, Name: "Dracula", Author: "Stoker", Category: "Fiction", Quantity: 5, AvailabilityStatus: true, Image: "https://x.co/c.jpg"},
	}
}

// backend is an in-memory stand-in for the remote API.
type backend struct {
	books      []domain.Book
	fetchErr   error
	createErr  error
	updateErr  error
	deleteErr  error
	fetchCalls atomic.Int32
	writes     []domain.Book
}

func (b *backend) fetch(ctx context.Context) ([]domain.Book, error) {
	b.fetchCalls.Add(1)
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	out := make([]domain.Book, len(b.books))
	copy(out, b.books)
	return out, nil
}

func (b *backend) create(ctx context.Context, draft domain.Book) error {
	if b.createErr != nil {
		return b.createErr
	}
	b.writes = append(b.writes, draft)
	b.books = append(b.books, draft)
	return nil
}

func (b *backend) update(ctx context.Context, id int, draft domain.Book) error {
	if b.updateErr != nil {
		return b.updateErr
	}
	b.writes = append(b.writes, draft)
	return nil
}

func (b *backend) delete(ctx context.Context, id int) error {
	return b.deleteErr
}

func newTestSynchronizer(b *backend) (*Synchronizer[domain.Book], *notify.Channel) {
	notifier := notify.NewChannel()
	s := New(Config[domain.Book]{
		Name:     "books",
		Fetch:    b.fetch,
		Create:   b.create,
		Update:   b.update,
		Delete:   b.delete,
		Validate: validate.Book,
		Normalize: func(bk *domain.Book) {
			bk.AvailabilityStatus = bk.Quantity > 0
		},
		Messages: Messages{
			Created:      "Book added successfully",
			CreateFailed: "Failed to add book",
			Updated:      "Book updated successfully",
			UpdateFailed: "Failed to update book",
			Deleted:      "Book removed successfully",
			DeleteFailed: "Failed to remove book",
		},
	}, notifier, nil)
	return s, notifier
}

func TestLoadReplacesSnapshotWholesale(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Load(ctx))

	// Reloading identical data yields the identical set, not duplicates.
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, testBooks(), s.Snapshot())
}

func TestLoadFailureKeepsPriorSnapshot(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))

	b.fetchErr = errors.New("connection refused")
	err := s.Load(ctx)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, testBooks(), s.Snapshot())
}

func TestApplyFilterIsPureSubset(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	require.NoError(t, s.Load(context.Background()))
	fetchesBefore := b.fetchCalls.Load()

	s.ApplyFilter(func(bk domain.Book) bool { return bk.Category == "Fiction" })

	view := s.View()
	require.Len(t, view, 2)
	for _, bk := range view {
		assert.Equal(t, "Fiction", bk.Category)
	}
	// Snapshot untouched, no network traffic.
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, fetchesBefore, b.fetchCalls.Load())

	s.ResetFilter()
	assert.Len(t, s.View(), 3)
}

func TestLoadResetsFilter(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	s.ApplyFilter(func(bk domain.Book) bool { return bk.ID == 1 })
	require.Len(t, s.View(), 1)

	require.NoError(t, s.Load(ctx))
	assert.Len(t, s.View(), 3)
}

func TestCreateInvalidDraftSkipsNetwork(t *testing.T) {
	b := &backend{books: testBooks()}
	s, notifier := newTestSynchronizer(b)

	result := s.Create(context.Background(), domain.Book{Quantity: 0})

	assert.Equal(t, OutcomeInvalid, result.Outcome)
	assert.Equal(t, "Name is required", result.FieldErrors["name"])
	assert.Equal(t, "Quantity must be a positive number", result.FieldErrors["quantity"])
	assert.Empty(t, b.writes)
	assert.Equal(t, int32(0), b.fetchCalls.Load())
	assert.False(t, notifier.Current().Visible)
}

func TestCreateDerivesAvailabilityBeforeSend(t *testing.T) {
	b := &backend{}
	s, _ := newTestSynchronizer(b)

	draft := domain.Book{
		Name: "Hyperion", Author: "Simmons", Category: "Science Fiction",
		Quantity: 4, Image: "https://x.co/h.jpg",
		AvailabilityStatus: false, // stale hand-set value is overwritten
	}
	result := s.Create(context.Background(), draft)

	require.Equal(t, OutcomeSaved, result.Outcome)
	require.Len(t, b.writes, 1)
	assert.True(t, b.writes[0].AvailabilityStatus)
}

func TestCreateSuccessResyncsAndNotifies(t *testing.T) {
	b := &backend{}
	s, notifier := newTestSynchronizer(b)

	draft := domain.Book{
		Name: "Solaris", Author: "Lem", Category: "Science Fiction",
		Quantity: 1, Image: "https://x.co/s.jpg",
	}
	result := s.Create(context.Background(), draft)

	assert.Equal(t, OutcomeSaved, result.Outcome)
	assert.Equal(t, "Book added successfully", result.Message)
	assert.Equal(t, 1, s.Count())

	toast := notifier.Current()
	assert.True(t, toast.Visible)
	assert.Equal(t, notify.SeveritySuccess, toast.Severity)
	assert.Equal(t, "Book added successfully", toast.Message)
}

func TestCreateConflictSurfacesServerMessage(t *testing.T) {
	b := &backend{createErr: &domain.ConflictError{Message: "Book already exists"}}
	s, notifier := newTestSynchronizer(b)

	draft := domain.Book{
		Name: "Dune", Author: "Herbert", Category: "Science Fiction",
		Quantity: 2, Image: "https://x.co/a.jpg",
	}
	result := s.Create(context.Background(), draft)

	assert.Equal(t, OutcomeConflict, result.Outcome)
	assert.Equal(t, "Book already exists", result.Message)

	toast := notifier.Current()
	assert.Equal(t, notify.SeverityError, toast.Severity)
	assert.Equal(t, "Book already exists", toast.Message)
}

func TestUpdateFailureUsesServerMessageThenFallback(t *testing.T) {
	b := &backend{updateErr: &domain.APIError{Status: 500, Message: "database locked"}}
	s, _ := newTestSynchronizer(b)

	draft := testBooks()[0]
	result := s.Update(context.Background(), draft.ID, draft)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, "database locked", result.Message)

	var mutErr *domain.MutationError
	assert.ErrorAs(t, result.Err, &mutErr)

	b.updateErr = errors.New("dial tcp: timeout")
	result = s.Update(context.Background(), draft.ID, draft)
	assert.Equal(t, "Failed to update book", result.Message)
}

func TestRemoveClearsPendingDeleteOnFailure(t *testing.T) {
	b := &backend{books: testBooks(), deleteErr: errors.New("boom")}
	s, _ := newTestSynchronizer(b)
	require.NoError(t, s.Load(context.Background()))

	s.SetPendingDelete(2)
	result := s.Remove(context.Background(), 2)

	assert.Equal(t, OutcomeFailed, result.Outcome)
	_, pending := s.PendingDelete()
	assert.False(t, pending, "a failed delete must not leave a stuck confirmation")
	assert.Equal(t, 3, s.Count())
}

func TestRemoveClearsPendingDeleteOnSuccess(t *testing.T) {
	b := &backend{books: testBooks()}
	s, notifier := newTestSynchronizer(b)
	require.NoError(t, s.Load(context.Background()))

	s.SetPendingDelete(1)
	result := s.Remove(context.Background(), 1)

	assert.Equal(t, OutcomeSaved, result.Outcome)
	_, pending := s.PendingDelete()
	assert.False(t, pending)
	assert.Equal(t, "Book removed successfully", notifier.Current().Message)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	old := []domain.Book{{ID: 1, Name: "Old"}}
	fresh := []domain.Book{{ID: 2, Name: "Fresh"}}

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	s := New(Config[domain.Book]{
		Name: "books",
		Fetch: func(ctx context.Context) ([]domain.Book, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-release
				return old, nil
			}
			return fresh, nil
		},
	}, nil, nil)

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()
	<-started

	// A newer load completes while the first is still in flight.
	require.NoError(t, s.Load(context.Background()))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, fresh, s.Snapshot(), "the older response must not clobber the newer one")
}

func TestPrimeSeedsFromCache(t *testing.T) {
	cache := &memCache{items: testBooks(), ok: true}
	s := New(Config[domain.Book]{
		Name:  "books",
		Fetch: (&backend{}).fetch,
		Cache: cache,
	}, nil, nil)

	assert.True(t, s.Prime())
	assert.Equal(t, 3, s.Count())
}

func TestLoadSavesSnapshotToCache(t *testing.T) {
	cache := &memCache{}
	b := &backend{books: testBooks()}
	s := New(Config[domain.Book]{
		Name:  "books",
		Fetch: b.fetch,
		Cache: cache,
	}, nil, nil)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, testBooks(), cache.items)
}

func TestFind(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	require.NoError(t, s.Load(context.Background()))

	book, ok := s.Find(3)
	require.True(t, ok)
	assert.Equal(t, "Dracula", book.Name)

	_, ok = s.Find(99)
	assert.False(t, ok)
}

func TestScheduleFilterDebounces(t *testing.T) {
	b := &backend{books: testBooks()}
	s, _ := newTestSynchronizer(b)
	require.NoError(t, s.Load(context.Background()))

	// Rapid keystrokes: only the final predicate may commit.
	s.ScheduleFilter(func(bk domain.Book) bool { return bk.ID == 1 })
	s.ScheduleFilter(func(bk domain.Book) bool { return bk.ID == 2 })
	s.ScheduleFilter(func(bk domain.Book) bool { return bk.Category == "Fiction" })

	assert.Eventually(t, func() bool {
		return len(s.View()) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

// memCache is an in-memory Cache for tests.
type memCache struct {
	items []domain.Book
	ok    bool
}

func (c *memCache) Save(items []domain.Book) error {
	c.items = items
	c.ok = true
	return nil
}

func (c *memCache) Load() ([]domain.Book, bool) {
	return c.items, c.ok
}
