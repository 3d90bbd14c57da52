package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/api"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/tui/components"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
	"github.com/dareenhdeya/iaProj/internal/validate"
)

// profileScreen shows the signed-in admin's account, the profile edit form,
// and the add-admin form.
type profileScreen struct {
	client   *api.Client
	notifier *notify.Channel
	adminID  int

	admin  domain.Admin
	loaded bool

	editForm  components.Form
	adminForm components.Form
}

func newProfileScreen(client *api.Client, notifier *notify.Channel, adminID int) profileScreen {
	editForm := components.NewForm([]components.Field{
		{Key: "name", Label: "Name", Placeholder: "Your name"},
		{Key: "email", Label: "Email", Placeholder: "name@example.com"},
	})
	adminForm := components.NewForm([]components.Field{
		{Key: "name", Label: "Name", Placeholder: "Admin name"},
		{Key: "email", Label: "Email", Placeholder: "name@example.com"},
		{Key: "password", Label: "Password", Kind: components.FieldPassword, Placeholder: "min 8 characters"},
	})
	return profileScreen{
		client:    client,
		notifier:  notifier,
		adminID:   adminID,
		editForm:  editForm,
		adminForm: adminForm,
	}
}

func (s profileScreen) Update(msg tea.Msg) (profileScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfileLoadedMsg:
		s.admin = msg.Admin
		s.loaded = true
		return s, nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			message := domain.ServerMessage(msg.Err)
			if message == "" {
				message = "Failed to update profile"
			}
			s.notifier.Error(message)
			return s, nil
		}
		message := msg.Message
		if message == "" {
			message = "Profile updated successfully"
		}
		s.notifier.Success(message)
		s.editForm.Hide()
		return s, LoadProfileCmd(s.client, s.adminID)

	case AdminCreatedMsg:
		if msg.Err != nil {
			message := domain.ServerMessage(msg.Err)
			if message == "" {
				message = "Failed to add admin"
			}
			s.notifier.Error(message)
			return s, nil
		}
		message := msg.Message
		if message == "" {
			message = "Admin added successfully"
		}
		s.notifier.Success(message)
		s.adminForm.Hide()
		return s, nil
	}

	if s.editForm.IsVisible() {
		return s.updateEditForm(msg)
	}
	if s.adminForm.IsVisible() {
		return s.updateAdminForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Edit):
		s.editForm.Show("Edit Profile")
		s.editForm.SetValue("name", s.admin.Name)
		s.editForm.SetValue("email", s.admin.Email)
	case key.Matches(keyMsg, keys.Add):
		s.adminForm.Show("Add Admin")
	}
	return s, nil
}

func (s profileScreen) updateEditForm(msg tea.Msg) (profileScreen, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	s.editForm, cmd, action = s.editForm.Update(msg)
	if action == components.FormSubmitted {
		draft := domain.ProfileDraft{
			Name:  strings.TrimSpace(s.editForm.Value("name")),
			Email: strings.TrimSpace(s.editForm.Value("email")),
		}
		if errs := validate.ProfileDraft(draft); !errs.Valid() {
			s.editForm.SetErrors(errs)
			return s, nil
		}
		return s, SaveProfileCmd(s.client, s.adminID, draft)
	}
	return s, cmd
}

func (s profileScreen) updateAdminForm(msg tea.Msg) (profileScreen, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	s.adminForm, cmd, action = s.adminForm.Update(msg)
	if action == components.FormSubmitted {
		draft := domain.AdminDraft{
			Name:     strings.TrimSpace(s.adminForm.Value("name")),
			Email:    strings.TrimSpace(s.adminForm.Value("email")),
			Password: s.adminForm.Value("password"),
		}
		if errs := validate.AdminDraft(draft); !errs.Valid() {
			s.adminForm.SetErrors(errs)
			return s, nil
		}
		return s, AddAdminCmd(s.client, draft)
	}
	return s, cmd
}

func (s profileScreen) View(width, height int) string {
	if s.editForm.IsVisible() {
		return s.editForm.View()
	}
	if s.adminForm.IsVisible() {
		return s.adminForm.View()
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Profile") + "\n\n")

	if !s.loaded {
		b.WriteString(styles.DimStyle.Render("Loading profile..."))
		return b.String()
	}

	b.WriteString(styles.AccentStyle.Render("  Name   ") + s.admin.Name + "\n")
	b.WriteString(styles.AccentStyle.Render("  Email  ") + s.admin.Email + "\n")

	b.WriteString("\n")
	b.WriteString(styles.HelpDescStyle.Render("e edit profile · a add admin"))
	return b.String()
}
