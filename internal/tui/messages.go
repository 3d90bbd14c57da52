package tui

import (
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CollectionLoadedMsg signals that a collection finished a full reload
type CollectionLoadedMsg struct {
	Collection string
}

// MutationDoneMsg signals that a create, update, or delete completed
type MutationDoneMsg struct {
	Collection string
	Op         string
	Result     collection.Result
}

// ApprovalDoneMsg signals that a pending librarian was approved or rejected
type ApprovalDoneMsg struct {
	Approved bool
	Err      error
}

// ProfileLoadedMsg signals that the admin profile was fetched
type ProfileLoadedMsg struct {
	Admin domain.Admin
}

// ProfileSavedMsg signals that the profile update completed
type ProfileSavedMsg struct {
	Message string
	Err     error
}

// AdminCreatedMsg signals that the add-admin call completed
type AdminCreatedMsg struct {
	Message string
	Err     error
}

// ToastExpiredMsg fires when a notification's display window ends. Token
// identifies which notification the timer belongs to; a stale token is a
// no-op so a newer toast keeps its full window.
type ToastExpiredMsg struct {
	Token uint64
}

// FilterCommitMsg fires after the keyword filter's quiet period. Seq is
// compared against the latest keystroke so only the final keyword commits.
type FilterCommitMsg struct {
	Seq int
}
