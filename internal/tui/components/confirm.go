package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// ConfirmModal asks a yes/no question before a destructive action.
type ConfirmModal struct {
	visible bool
	title   string
	message string
}

// NewConfirmModal creates a hidden confirm modal.
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal.
func (m *ConfirmModal) Show(title, message string) {
	m.visible = true
	m.title = title
	m.message = message
}

// Hide dismisses the modal.
func (m *ConfirmModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown.
func (m ConfirmModal) IsVisible() bool { return m.visible }

// Update handles input events, returning (modal, decided, accepted).
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, bool, bool) {
	if !m.visible {
		return m, false, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false, false
	}
	switch keyMsg.String() {
	case "y", "enter":
		m.Hide()
		return m, true, true
	case "n", "esc":
		m.Hide()
		return m, true, false
	}
	return m, false, false
}

// View renders the confirm modal.
func (m ConfirmModal) View() string {
	if !m.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKeyStyle.Render("y") + styles.HelpDescStyle.Render(" confirm · "))
	b.WriteString(styles.HelpKeyStyle.Render("n") + styles.HelpDescStyle.Render(" cancel"))
	return styles.ModalStyle.Render(b.String())
}
