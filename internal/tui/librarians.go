package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/api"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/tui/components"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
	"github.com/dareenhdeya/iaProj/internal/validate"
)

// librariansScreen manages staff accounts: the approved roster plus the
// pending-application queue with its approve/reject flow.
type librariansScreen struct {
	approved *collection.Synchronizer[domain.Librarian]
	pending  *collection.Synchronizer[domain.Librarian]
	client   *api.Client

	showPending bool
	cursor      int

	addForm  components.Form
	editForm components.Form
	editID   int

	confirm  components.ConfirmModal
	rejectIn components.InputModal
	rejectID int
}

func newLibrariansScreen(approved, pending *collection.Synchronizer[domain.Librarian], client *api.Client) librariansScreen {
	addForm := components.NewForm([]components.Field{
		{Key: "name", Label: "Full Name", Placeholder: "Full name"},
		{Key: "email", Label: "Email", Placeholder: "name@example.com"},
		{Key: "password", Label: "Password", Kind: components.FieldPassword, Placeholder: "min 8 characters"},
	})
	editForm := components.NewForm([]components.Field{
		{Key: "name", Label: "Full Name", Placeholder: "Full name"},
		{Key: "email", Label: "Email", Placeholder: "name@example.com"},
	})
	return librariansScreen{
		approved: approved,
		pending:  pending,
		client:   client,
		addForm:  addForm,
		editForm: editForm,
		confirm:  components.NewConfirmModal(),
		rejectIn: components.NewInputModal(),
	}
}

func (s librariansScreen) current() *collection.Synchronizer[domain.Librarian] {
	if s.showPending {
		return s.pending
	}
	return s.approved
}

func (s librariansScreen) Update(msg tea.Msg) (librariansScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case CollectionLoadedMsg:
		if msg.Collection == "librarians" || msg.Collection == "pending librarians" {
			s.clampCursor()
		}
		return s, nil

	case MutationDoneMsg:
		if msg.Collection != "librarians" {
			return s, nil
		}
		switch msg.Result.Outcome {
		case collection.OutcomeInvalid:
			if s.addForm.IsVisible() {
				s.addForm.SetErrors(msg.Result.FieldErrors)
			}
			if s.editForm.IsVisible() {
				s.editForm.SetErrors(msg.Result.FieldErrors)
			}
		case collection.OutcomeSaved:
			s.addForm.Hide()
			s.editForm.Hide()
			s.clampCursor()
		}
		return s, nil

	case ApprovalDoneMsg:
		if msg.Err != nil {
			message := domain.ServerMessage(msg.Err)
			if message == "" {
				if msg.Approved {
					message = "Failed to approve librarian"
				} else {
					message = "Failed to reject librarian"
				}
			}
			s.approved.Notifier().Error(message)
			return s, nil
		}
		if msg.Approved {
			s.approved.Notifier().Success("Librarian approved")
		} else {
			s.approved.Notifier().Success("Librarian rejected")
		}
		// Both lists shift on approval, so reload each.
		return s, tea.Batch(
			LoadCollectionCmd(s.approved, "librarians"),
			LoadCollectionCmd(s.pending, "pending librarians"),
		)
	}

	if s.addForm.IsVisible() {
		return s.updateAddForm(msg)
	}
	if s.editForm.IsVisible() {
		return s.updateEditForm(msg)
	}
	if s.confirm.IsVisible() {
		return s.updateConfirm(msg)
	}
	if s.rejectIn.IsVisible() {
		return s.updateReject(msg)
	}
	return s.updateList(msg)
}

func (s librariansScreen) updateList(msg tea.Msg) (librariansScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	items := s.current().View()

	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(items)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		s.showPending = !s.showPending
		s.cursor = 0
	case key.Matches(keyMsg, keys.Add):
		if !s.showPending {
			s.addForm.Show("Add Librarian")
		}
	case key.Matches(keyMsg, keys.Edit):
		if !s.showPending && s.cursor < len(items) {
			lib := items[s.cursor]
			s.editID = lib.ID
			s.editForm.Show("Edit Librarian")
			s.editForm.SetValue("name", lib.Name)
			s.editForm.SetValue("email", lib.Email)
		}
	case key.Matches(keyMsg, keys.Delete):
		if s.cursor >= len(items) {
			break
		}
		lib := items[s.cursor]
		if s.showPending {
			s.rejectID = lib.ID
			s.rejectIn.Show(fmt.Sprintf("Reject %s — reason", lib.Name))
		} else {
			s.approved.SetPendingDelete(lib.ID)
			s.confirm.Show("Remove Librarian", fmt.Sprintf("Remove %s (%s)?", lib.Name, lib.Email))
		}
	case key.Matches(keyMsg, keys.Approve):
		if s.showPending && s.cursor < len(items) {
			return s, ApproveLibrarianCmd(s.client, items[s.cursor].ID)
		}
	}
	return s, nil
}

func (s librariansScreen) updateAddForm(msg tea.Msg) (librariansScreen, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	s.addForm, cmd, action = s.addForm.Update(msg)
	if action == components.FormSubmitted {
		draft := domain.LibrarianDraft{
			Name:     strings.TrimSpace(s.addForm.Value("name")),
			Email:    strings.TrimSpace(s.addForm.Value("email")),
			Password: s.addForm.Value("password"),
		}
		if errs := validate.LibrarianDraft(draft); !errs.Valid() {
			s.addForm.SetErrors(errs)
			return s, nil
		}
		return s, CreateLibrarianCmd(s.client, s.approved, draft)
	}
	return s, cmd
}

func (s librariansScreen) updateEditForm(msg tea.Msg) (librariansScreen, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	s.editForm, cmd, action = s.editForm.Update(msg)
	if action == components.FormSubmitted {
		draft := domain.Librarian{
			ID:    s.editID,
			Name:  strings.TrimSpace(s.editForm.Value("name")),
			Email: strings.TrimSpace(s.editForm.Value("email")),
		}
		return s, UpdateCmd(s.approved, "librarians", s.editID, draft)
	}
	return s, cmd
}

func (s librariansScreen) updateConfirm(msg tea.Msg) (librariansScreen, tea.Cmd) {
	var decided, accepted bool
	s.confirm, decided, accepted = s.confirm.Update(msg)
	if !decided {
		return s, nil
	}
	id, ok := s.approved.PendingDelete()
	if !ok {
		return s, nil
	}
	if !accepted {
		s.approved.ClearPendingDelete()
		return s, nil
	}
	return s, RemoveCmd(s.approved, "librarians", id)
}

func (s librariansScreen) updateReject(msg tea.Msg) (librariansScreen, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	s.rejectIn, cmd, submitted = s.rejectIn.Update(msg)
	if submitted {
		reason := strings.TrimSpace(s.rejectIn.Value())
		s.rejectIn.Hide()
		return s, RejectLibrarianCmd(s.client, s.rejectID, reason)
	}
	return s, cmd
}

func (s *librariansScreen) clampCursor() {
	count := len(s.current().View())
	if s.cursor >= count {
		s.cursor = count - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s librariansScreen) View(width, height int) string {
	if s.addForm.IsVisible() {
		return s.addForm.View()
	}
	if s.editForm.IsVisible() {
		return s.editForm.View()
	}
	if s.confirm.IsVisible() {
		return s.confirm.View()
	}
	if s.rejectIn.IsVisible() {
		return s.rejectIn.View()
	}

	var b strings.Builder

	approvedTab := styles.InactiveTabStyle.Render(fmt.Sprintf("Approved (%d)", s.approved.Count()))
	pendingTab := styles.InactiveTabStyle.Render(fmt.Sprintf("Pending (%d)", s.pending.Count()))
	if s.showPending {
		pendingTab = styles.ActiveTabStyle.Render(fmt.Sprintf("Pending (%d)", s.pending.Count()))
	} else {
		approvedTab = styles.ActiveTabStyle.Render(fmt.Sprintf("Approved (%d)", s.approved.Count()))
	}
	b.WriteString(styles.TitleStyle.Render("Librarians") + "  " + approvedTab + " " + pendingTab + "\n\n")

	items := s.current().View()
	if len(items) == 0 {
		if s.showPending {
			b.WriteString(styles.DimStyle.Render("No pending applications."))
		} else {
			b.WriteString(styles.DimStyle.Render("No librarians yet."))
		}
		return b.String()
	}

	for i, lib := range items {
		badge := styles.AvailableBadge.Render("✓")
		if !lib.IsApproved {
			badge = styles.PendingBadge.Render("…")
		}
		line := fmt.Sprintf("%s %s %s", badge,
			styles.Truncate(lib.Name, 28),
			styles.DimStyle.Render(lib.Email))
		if i == s.cursor {
			line = styles.TableSelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if s.showPending {
		b.WriteString(styles.HelpDescStyle.Render("enter approve · d reject · t approved roster"))
	} else {
		b.WriteString(styles.HelpDescStyle.Render("a add · e edit · d remove · t pending queue"))
	}
	return b.String()
}
