package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/stats"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// dashboardScreen shows counters derived from the loaded snapshots.
type dashboardScreen struct {
	books      *collection.Synchronizer[domain.Book]
	librarians *collection.Synchronizer[domain.Librarian]
	pending    *collection.Synchronizer[domain.Librarian]
	users      *collection.Synchronizer[domain.User]
	borrowed   *collection.Synchronizer[domain.BorrowRecord]
	returned   *collection.Synchronizer[domain.BorrowRecord]
}

func (s dashboardScreen) Update(msg tea.Msg) (dashboardScreen, tea.Cmd) {
	return s, nil
}

func (s dashboardScreen) View(width, height int) string {
	d := stats.Derive(
		s.books.Snapshot(),
		s.librarians.Snapshot(),
		s.pending.Snapshot(),
		s.users.Snapshot(),
		s.borrowed.Snapshot(),
		s.returned.Snapshot(),
	)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Dashboard") + "\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Books", fmt.Sprintf("%d total · %s available · %s unavailable",
			d.TotalBooks,
			styles.SuccessStyle.Render(fmt.Sprintf("%d", d.AvailableBooks)),
			styles.ErrorStyle.Render(fmt.Sprintf("%d", d.UnavailableBooks)))},
		{"Librarians", fmt.Sprintf("%d approved · %s pending",
			d.TotalLibrarians,
			styles.PendingBadge.Render(fmt.Sprintf("%d", d.PendingLibrarians)))},
		{"Users", fmt.Sprintf("%d registered", d.TotalUsers)},
		{"Borrowing", fmt.Sprintf("%d on loan · %d returned", d.BooksOnLoan, d.CompletedBorrows)},
	}

	for _, row := range rows {
		b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("  %-12s", row.label)))
		b.WriteString(row.value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDescStyle.Render("tab switch screens · r refresh all · ? help · q quit"))
	return b.String()
}
