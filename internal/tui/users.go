package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// usersScreen is the read-only reader roster.
type usersScreen struct {
	sync   *collection.Synchronizer[domain.User]
	cursor int
}

func (s usersScreen) Update(msg tea.Msg) (usersScreen, tea.Cmd) {
	if msg, ok := msg.(CollectionLoadedMsg); ok && msg.Collection == "users" {
		if count := len(s.sync.View()); s.cursor >= count {
			s.cursor = 0
		}
		return s, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	users := s.sync.View()
	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(users)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s usersScreen) View(width, height int) string {
	var b strings.Builder
	users := s.sync.View()

	b.WriteString(styles.TitleStyle.Render("Users"))
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d registered", len(users))))
	b.WriteString("\n\n")

	if len(users) == 0 {
		b.WriteString(styles.DimStyle.Render("No registered users."))
		return b.String()
	}

	for i, user := range users {
		line := fmt.Sprintf("%s %s",
			styles.Truncate(user.Name, 28),
			styles.DimStyle.Render(user.Email))
		if i == s.cursor {
			line = styles.TableSelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
