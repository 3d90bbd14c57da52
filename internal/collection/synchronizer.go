// Package collection implements the shared fetch/filter/mutate lifecycle
// that every entity screen follows. A Synchronizer owns the full snapshot of
// one remote collection plus a filtered view of it, validates drafts before
// any write, and converts every outcome into a notification.
package collection

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/validate"
)

// Entity is any record with a unique numeric identifier.
type Entity interface {
	EntityID() int
}

// Cache persists the last good snapshot so a screen can render stale data
// while a fresh load runs.
type Cache[T Entity] interface {
	Save(items []T) error
	Load() ([]T, bool)
}

// Messages are the per-entity notification strings for each outcome. Failed
// variants are fallbacks, used only when the server provides no message.
type Messages struct {
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// Config wires a Synchronizer to one entity type. Fetch is required; the
// mutation calls may be nil for read-only collections.
type Config[T Entity] struct {
	Name      string
	Fetch     func(ctx context.Context) ([]T, error)
	Create    func(ctx context.Context, draft T) error
	Update    func(ctx context.Context, id int, draft T) error
	Delete    func(ctx context.Context, id int) error
	Validate  func(draft T) validate.Errors
	Normalize func(draft *T)
	Cache     Cache[T]
	Messages  Messages
}

// Outcome classifies the result of a mutation.
type Outcome int

const (
	OutcomeSaved Outcome = iota
	OutcomeInvalid
	OutcomeConflict
	OutcomeFailed
)

// Result reports a mutation outcome. FieldErrors is set only for
// OutcomeInvalid; Message carries the notification text.
type Result struct {
	Outcome     Outcome
	FieldErrors validate.Errors
	Message     string
	Err         error
}

// Synchronizer owns the snapshot and view set for one entity type. The view
// is always a subset of the snapshot, recomputed by a pure predicate; the
// snapshot is replaced wholesale on every successful fetch.
type Synchronizer[T Entity] struct {
	cfg      Config[T]
	notifier *notify.Channel
	logger   *slog.Logger
	debounce *Debouncer

	mu       sync.RWMutex
	snapshot []T
	view     []T
	loadSeq  uint64

	pendingDelete    int
	hasPendingDelete bool
}

// New creates a Synchronizer for one entity type.
func New[T Entity](cfg Config[T], notifier *notify.Channel, logger *slog.Logger) *Synchronizer[T] {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewChannel()
	}
	return &Synchronizer[T]{
		cfg:      cfg,
		notifier: notifier,
		logger:   logger,
		debounce: NewDebouncer(DebounceDelay),
	}
}

// Notifier returns the notification channel outcomes are pushed to.
func (s *Synchronizer[T]) Notifier() *notify.Channel { return s.notifier }

// Prime seeds the snapshot from the cache, if one is configured and holds
// data. Used at startup to render the last known collection immediately.
func (s *Synchronizer[T]) Prime() bool {
	if s.cfg.Cache == nil {
		return false
	}
	items, ok := s.cfg.Cache.Load()
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = items
	s.view = items
	s.logger.Debug("primed from cache", "collection", s.cfg.Name, "count", len(items))
	return true
}

// Load fetches the full collection and replaces the snapshot wholesale,
// resetting any filter. On failure the prior snapshot is untouched. Each
// call takes a monotonic token; a response that resolves after a newer load
// started is discarded as stale.
func (s *Synchronizer[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	token := s.loadSeq
	s.mu.Unlock()

	items, err := s.cfg.Fetch(ctx)
	if err != nil {
		s.logger.Error("load failed", "collection", s.cfg.Name, "error", err)
		return &domain.FetchError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.loadSeq {
		s.logger.Debug("discarding stale load", "collection", s.cfg.Name, "token", token)
		return nil
	}
	s.snapshot = items
	s.view = items
	s.logger.Debug("loaded collection", "collection", s.cfg.Name, "count", len(items))

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Save(items); err != nil {
			s.logger.Error("failed to cache snapshot", "collection", s.cfg.Name, "error", err)
		}
	}
	return nil
}

// Snapshot returns a copy of the full unfiltered collection.
func (s *Synchronizer[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.snapshot)
}

// View returns a copy of the current filtered view.
func (s *Synchronizer[T]) View() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.view)
}

// Count returns the snapshot size.
func (s *Synchronizer[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot)
}

// ApplyFilter recomputes the view from the snapshot. A nil predicate resets
// the view to the full snapshot. Pure and synchronous: no network.
func (s *Synchronizer[T]) ApplyFilter(pred func(T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pred == nil {
		s.view = s.snapshot
		return
	}
	filtered := make([]T, 0, len(s.snapshot))
	for _, item := range s.snapshot {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	s.view = filtered
}

// ResetFilter restores the view to the full snapshot.
func (s *Synchronizer[T]) ResetFilter() { s.ApplyFilter(nil) }

// ScheduleFilter commits pred to ApplyFilter after a quiet period with no
// further calls. Each call cancels the previously pending one, so rapid
// keystrokes produce a single filter pass on the final keyword.
func (s *Synchronizer[T]) ScheduleFilter(pred func(T) bool) {
	s.debounce.Debounce(func() { s.ApplyFilter(pred) })
}

// CancelScheduledFilter drops any pending debounced filter.
func (s *Synchronizer[T]) CancelScheduledFilter() { s.debounce.Cancel() }

// Create validates the draft, normalizes derived fields, and submits it. An
// invalid draft performs no network call; a server conflict is a distinct
// outcome carrying the server's message. Success resynchronizes.
func (s *Synchronizer[T]) Create(ctx context.Context, draft T) Result {
	if s.cfg.Validate != nil {
		if errs := s.cfg.Validate(draft); !errs.Valid() {
			return Result{Outcome: OutcomeInvalid, FieldErrors: errs}
		}
	}
	if s.cfg.Normalize != nil {
		s.cfg.Normalize(&draft)
	}
	if err := s.cfg.Create(ctx, draft); err != nil {
		return s.writeFailed("create", s.cfg.Messages.CreateFailed, err)
	}
	return s.writeSaved(ctx, "create", s.cfg.Messages.Created)
}

// Update validates the draft and submits a full-record replace keyed by id,
// then resynchronizes.
func (s *Synchronizer[T]) Update(ctx context.Context, id int, draft T) Result {
	if s.cfg.Validate != nil {
		if errs := s.cfg.Validate(draft); !errs.Valid() {
			return Result{Outcome: OutcomeInvalid, FieldErrors: errs}
		}
	}
	if s.cfg.Normalize != nil {
		s.cfg.Normalize(&draft)
	}
	if err := s.cfg.Update(ctx, id, draft); err != nil {
		return s.writeFailed("update", s.cfg.Messages.UpdateFailed, err)
	}
	return s.writeSaved(ctx, "update", s.cfg.Messages.Updated)
}

// Remove deletes by id and resynchronizes on success. The pending
// delete-confirmation state is cleared regardless of outcome so a failed
// delete never leaves a stuck confirmation dialog.
func (s *Synchronizer[T]) Remove(ctx context.Context, id int) Result {
	defer s.ClearPendingDelete()
	if err := s.cfg.Delete(ctx, id); err != nil {
		return s.writeFailed("delete", s.cfg.Messages.DeleteFailed, err)
	}
	return s.writeSaved(ctx, "delete", s.cfg.Messages.Deleted)
}

// SetPendingDelete marks id as awaiting delete confirmation.
func (s *Synchronizer[T]) SetPendingDelete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = id
	s.hasPendingDelete = true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (s *Synchronizer[T]) PendingDelete() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingDelete, s.hasPendingDelete
}

// ClearPendingDelete drops any pending delete confirmation.
func (s *Synchronizer[T]) ClearPendingDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = 0
	s.hasPendingDelete = false
}

// Find returns the snapshot entity with the given id.
func (s *Synchronizer[T]) Find(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.snapshot {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Synchronizer[T]) writeSaved(ctx context.Context, op, message string) Result {
	// The write succeeded even if the resync doesn't; the next manual load
	// will catch up.
	if err := s.Load(ctx); err != nil {
		s.logger.Error("resync after write failed", "collection", s.cfg.Name, "op", op, "error", err)
	}
	s.notifier.Success(message)
	return Result{Outcome: OutcomeSaved, Message: message}
}

func (s *Synchronizer[T]) writeFailed(op, fallback string, err error) Result {
	s.logger.Error("write failed", "collection", s.cfg.Name, "op", op, "error", err)

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		s.notifier.Error(conflict.Message)
		return Result{Outcome: OutcomeConflict, Message: conflict.Message, Err: err}
	}

	message := domain.ServerMessage(err)
	if message == "" {
		message = fallback
	}
	s.notifier.Error(message)
	return Result{Outcome: OutcomeFailed, Message: message, Err: &domain.MutationError{Err: err}}
}

func copySlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
