package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/api"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/notify"
)

const requestTimeout = 30 * time.Second

// Command factories for async operations

// LoadCollectionCmd reloads one synchronizer's collection
func LoadCollectionCmd[T collection.Entity](sync *collection.Synchronizer[T], name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := sync.Load(ctx); err != nil {
			return ErrMsg{Err: err, Context: "loading " + name}
		}
		return CollectionLoadedMsg{Collection: name}
	}
}

// CreateCmd submits a draft through the synchronizer
func CreateCmd[T collection.Entity](sync *collection.Synchronizer[T], name string, draft T) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result := sync.Create(ctx, draft)
		return MutationDoneMsg{Collection: name, Op: "create", Result: result}
	}
}

// UpdateCmd submits a full-record replace through the synchronizer
func UpdateCmd[T collection.Entity](sync *collection.Synchronizer[T], name string, id int, draft T) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result := sync.Update(ctx, id, draft)
		return MutationDoneMsg{Collection: name, Op: "update", Result: result}
	}
}

// RemoveCmd deletes through the synchronizer
func RemoveCmd[T collection.Entity](sync *collection.Synchronizer[T], name string, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result := sync.Remove(ctx, id)
		return MutationDoneMsg{Collection: name, Op: "delete", Result: result}
	}
}

// CreateLibrarianCmd creates a librarian account. The create payload carries
// a password the roster entity does not, so it bypasses the synchronizer's
// typed Create and resynchronizes explicitly.
func CreateLibrarianCmd(client *api.Client, sync *collection.Synchronizer[domain.Librarian], draft domain.LibrarianDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.AddLibrarian(ctx, draft); err != nil {
			message := domain.ServerMessage(err)
			if message == "" {
				message = "Failed to add librarian"
			}
			sync.Notifier().Error(message)
			return MutationDoneMsg{
				Collection: "librarians",
				Op:         "create",
				Result:     collection.Result{Outcome: collection.OutcomeFailed, Message: message, Err: err},
			}
		}

		message := "Librarian added successfully"
		_ = sync.Load(ctx) // best-effort resync; next refresh catches up
		sync.Notifier().Success(message)
		return MutationDoneMsg{
			Collection: "librarians",
			Op:         "create",
			Result:     collection.Result{Outcome: collection.OutcomeSaved, Message: message},
		}
	}
}

// ApproveLibrarianCmd approves a pending application
func ApproveLibrarianCmd(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.ApproveLibrarian(ctx, id); err != nil {
			return ApprovalDoneMsg{Approved: true, Err: err}
		}
		return ApprovalDoneMsg{Approved: true}
	}
}

// RejectLibrarianCmd declines a pending application with a reason
func RejectLibrarianCmd(client *api.Client, id int, reason string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.RejectLibrarian(ctx, id, reason); err != nil {
			return ApprovalDoneMsg{Approved: false, Err: err}
		}
		return ApprovalDoneMsg{Approved: false}
	}
}

// LoadProfileCmd fetches the signed-in admin's profile
func LoadProfileCmd(client *api.Client, adminID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		admin, err := client.GetProfile(ctx, adminID)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading profile"}
		}
		return ProfileLoadedMsg{Admin: admin}
	}
}

// SaveProfileCmd submits profile changes
func SaveProfileCmd(client *api.Client, adminID int, draft domain.ProfileDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		message, err := client.UpdateProfile(ctx, adminID, draft)
		return ProfileSavedMsg{Message: message, Err: err}
	}
}

// AddAdminCmd creates another administrator account
func AddAdminCmd(client *api.Client, draft domain.AdminDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		message, err := client.AddAdmin(ctx, draft)
		return AdminCreatedMsg{Message: message, Err: err}
	}
}

// DismissToastCmd schedules the auto-dismiss for the notification identified
// by token
func DismissToastCmd(token uint64) tea.Cmd {
	return tea.Tick(notify.AutoDismissAfter, func(t time.Time) tea.Msg {
		return ToastExpiredMsg{Token: token}
	})
}

// CommitFilterCmd schedules the debounced keyword filter commit
func CommitFilterCmd(seq int) tea.Cmd {
	return tea.Tick(collection.DebounceDelay, func(t time.Time) tea.Msg {
		return FilterCommitMsg{Seq: seq}
	})
}
