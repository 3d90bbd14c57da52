package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/activity"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// activityScreen shows borrowing activity grouped per user, joined live from
// the record, user, and book snapshots.
type activityScreen struct {
	borrowed *collection.Synchronizer[domain.BorrowRecord]
	returned *collection.Synchronizer[domain.BorrowRecord]
	users    *collection.Synchronizer[domain.User]
	books    *collection.Synchronizer[domain.Book]

	cursor int
}

func (s activityScreen) groups() []activity.UserActivity {
	records := append(s.borrowed.Snapshot(), s.returned.Snapshot()...)
	return activity.GroupByUser(records, s.users.Snapshot(), s.books.Snapshot())
}

func (s activityScreen) Update(msg tea.Msg) (activityScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	count := len(s.groups())
	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < count-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s activityScreen) View(width, height int) string {
	var b strings.Builder
	groups := s.groups()

	b.WriteString(styles.TitleStyle.Render("Borrowing Activity"))
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d active readers", len(groups))))
	b.WriteString("\n\n")

	if len(groups) == 0 {
		b.WriteString(styles.DimStyle.Render("No borrowing activity yet."))
		return b.String()
	}
	if s.cursor >= len(groups) {
		s.cursor = len(groups) - 1
	}

	for i, group := range groups {
		line := fmt.Sprintf("%s %s",
			styles.Truncate(group.User.Name, 28),
			styles.DimStyle.Render(fmt.Sprintf("%d on loan · %d returned", len(group.Current), len(group.History))))
		if i == s.cursor {
			line = styles.TableSelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	selected := groups[s.cursor]
	b.WriteString("\n" + styles.SubtitleStyle.Render(selected.User.Name) + "\n")
	for _, entry := range selected.Current {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			styles.PendingBadge.Render("⌛"),
			styles.Truncate(entry.Book.Name, 32),
			styles.DimStyle.Render("due "+domain.FormatDate(entry.Record.DueDate, "—"))))
	}
	for _, entry := range selected.History {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			styles.SuccessStyle.Render("✓"),
			styles.Truncate(entry.Book.Name, 32),
			styles.DimStyle.Render("returned "+domain.FormatDate(entry.Record.ReturnDate, "—"))))
	}
	return b.String()
}
