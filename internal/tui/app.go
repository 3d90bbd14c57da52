// Package tui is the terminal front end. One model owns all screens; every
// piece of remote state lives in a collection synchronizer injected at
// startup, so screens never talk to the network directly.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dareenhdeya/iaProj/internal/api"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/search"
	"github.com/dareenhdeya/iaProj/internal/tui/components"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// Screen identifies one of the top-level screens
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenBooks
	ScreenLibrarians
	ScreenUsers
	ScreenActivity
	ScreenProfile

	screenCount
)

var screenNames = [screenCount]string{
	"Dashboard", "Books", "Librarians", "Users", "Activity", "Profile",
}

// Deps carries everything the TUI needs, wired up in main.
type Deps struct {
	Client   *api.Client
	Notifier *notify.Channel
	Logger   *slog.Logger
	AdminID  int

	Books      *collection.Synchronizer[domain.Book]
	Librarians *collection.Synchronizer[domain.Librarian]
	Pending    *collection.Synchronizer[domain.Librarian]
	Users      *collection.Synchronizer[domain.User]
	Borrowed   *collection.Synchronizer[domain.BorrowRecord]
	Returned   *collection.Synchronizer[domain.BorrowRecord]
	Index      *search.BookIndex
}

// Model is the main Bubble Tea model for the application
type Model struct {
	deps   Deps
	logger *slog.Logger

	screen   Screen
	width    int
	height   int
	showHelp bool

	// Footer error from the most recent failed fetch
	loadErr string

	// Token of the toast whose dismissal is already scheduled
	lastToast uint64

	// Collections still loading; the spinner runs while any are in flight
	spin    spinner.Model
	loading int

	dashboard  dashboardScreen
	books      booksScreen
	librarians librariansScreen
	users      usersScreen
	activity   activityScreen
	profile    profileScreen
}

// NewModel creates the root model from injected dependencies.
func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.AccentStyle))
	return Model{
		deps:    deps,
		logger:  logger,
		spin:    spin,
		loading: collectionLoads,
		dashboard: dashboardScreen{
			books:      deps.Books,
			librarians: deps.Librarians,
			pending:    deps.Pending,
			users:      deps.Users,
			borrowed:   deps.Borrowed,
			returned:   deps.Returned,
		},
		books:      newBooksScreen(deps.Books, deps.Index),
		librarians: newLibrariansScreen(deps.Librarians, deps.Pending, deps.Client),
		users:      usersScreen{sync: deps.Users},
		activity: activityScreen{
			borrowed: deps.Borrowed,
			returned: deps.Returned,
			users:    deps.Users,
			books:    deps.Books,
		},
		profile: newProfileScreen(deps.Client, deps.Notifier, deps.AdminID),
	}
}

// collectionLoads is the number of collections reloadAll fetches, tracked so
// the spinner stops once every one has answered.
const collectionLoads = 6

// Init kicks off the initial load of every collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(append(m.reloadAll(), m.spin.Tick)...)
}

func (m Model) reloadAll() []tea.Cmd {
	return []tea.Cmd{
		LoadCollectionCmd(m.deps.Books, "books"),
		LoadCollectionCmd(m.deps.Librarians, "librarians"),
		LoadCollectionCmd(m.deps.Pending, "pending librarians"),
		LoadCollectionCmd(m.deps.Users, "users"),
		LoadCollectionCmd(m.deps.Borrowed, "borrowed books"),
		LoadCollectionCmd(m.deps.Returned, "returned books"),
		LoadProfileCmd(m.deps.Client, m.deps.AdminID),
	}
}

// capturing reports whether the active screen owns the keyboard (a form,
// modal, or text input is open), in which case global bindings are off.
func (m Model) capturing() bool {
	switch m.screen {
	case ScreenBooks:
		return m.books.form.IsVisible() || m.books.confirm.IsVisible() ||
			m.books.filtering || m.books.searching
	case ScreenLibrarians:
		return m.librarians.addForm.IsVisible() || m.librarians.editForm.IsVisible() ||
			m.librarians.confirm.IsVisible() || m.librarians.rejectIn.IsVisible()
	case ScreenProfile:
		return m.profile.editForm.IsVisible() || m.profile.adminForm.IsVisible()
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrMsg:
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		m.loadErr = msg.Error()
		if m.loading > 0 {
			m.loading--
		}
		return m, nil

	case ToastExpiredMsg:
		m.deps.Notifier.DismissExpired(msg.Token)
		return m, nil

	case spinner.TickMsg:
		if m.loading == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case CollectionLoadedMsg:
		m.loadErr = ""
		if m.loading > 0 {
			m.loading--
		}

	case tea.KeyMsg:
		if !m.capturing() {
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			case key.Matches(msg, keys.NextTab):
				m.screen = (m.screen + 1) % screenCount
				return m, nil
			case key.Matches(msg, keys.PrevTab):
				m.screen = (m.screen - 1 + screenCount) % screenCount
				return m, nil
			case key.Matches(msg, keys.Refresh):
				m.loading = collectionLoads
				return m, tea.Batch(append(m.reloadAll(), m.spin.Tick)...)
			}
		}
		// Key events go only to the active screen.
		cmds = append(cmds, m.routeToScreen(m.screen, msg)...)
		return m, m.withToastSchedule(cmds)
	}

	// Data messages fan out to every screen; each picks what concerns it.
	for screen := Screen(0); screen < screenCount; screen++ {
		cmds = append(cmds, m.routeToScreen(screen, msg)...)
	}
	return m, m.withToastSchedule(cmds)
}

// routeToScreen delivers msg to one screen and collects its command. The
// method mutates the receiver's screen fields, so callers must use the
// returned model via value semantics of Update.
func (m *Model) routeToScreen(screen Screen, msg tea.Msg) []tea.Cmd {
	var cmd tea.Cmd
	switch screen {
	case ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ScreenBooks:
		m.books, cmd = m.books.Update(msg)
	case ScreenLibrarians:
		m.librarians, cmd = m.librarians.Update(msg)
	case ScreenUsers:
		m.users, cmd = m.users.Update(msg)
	case ScreenActivity:
		m.activity, cmd = m.activity.Update(msg)
	case ScreenProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	if cmd == nil {
		return nil
	}
	return []tea.Cmd{cmd}
}

// withToastSchedule appends an auto-dismiss command when a new notification
// appeared during this update cycle.
func (m *Model) withToastSchedule(cmds []tea.Cmd) tea.Cmd {
	if token := m.deps.Notifier.Token(); token != m.lastToast {
		m.lastToast = token
		cmds = append(cmds, DismissToastCmd(token))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	bar := m.tabBar()
	if m.loading > 0 {
		bar += "  " + m.spin.View() + styles.DimStyle.Render("loading")
	}
	b.WriteString(bar + "\n\n")

	body := ""
	switch m.screen {
	case ScreenDashboard:
		body = m.dashboard.View(m.width, m.height)
	case ScreenBooks:
		body = m.books.View(m.width, m.height)
	case ScreenLibrarians:
		body = m.librarians.View(m.width, m.height)
	case ScreenUsers:
		body = m.users.View(m.width, m.height)
	case ScreenActivity:
		body = m.activity.View(m.width, m.height)
	case ScreenProfile:
		body = m.profile.View(m.width, m.height)
	}
	b.WriteString(body)

	if footer := m.footer(); footer != "" {
		b.WriteString("\n\n" + footer)
	}
	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, screenCount)
	for i := Screen(0); i < screenCount; i++ {
		if i == m.screen {
			tabs = append(tabs, styles.ActiveTabStyle.Render(screenNames[i]))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(screenNames[i]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) footer() string {
	if toast := components.Toast(m.deps.Notifier.Current()); toast != "" {
		return toast
	}
	if m.loadErr != "" {
		return styles.ErrorStyle.Render(m.loadErr)
	}
	return ""
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Help") + "\n\n")

	bindings := []struct {
		keyLabel string
		desc     string
	}{
		{"tab / shift+tab", "switch screen"},
		{"↑/k ↓/j", "move cursor"},
		{"a", "add entry"},
		{"e", "edit entry"},
		{"d", "delete / reject entry"},
		{"enter", "approve pending librarian"},
		{"t", "toggle approved / pending"},
		{"/", "filter books by keyword"},
		{"s", "fuzzy title search"},
		{"r", "refresh all collections"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, bind := range bindings {
		b.WriteString("  " + styles.HelpKeyStyle.Render(bind.keyLabel))
		b.WriteString(strings.Repeat(" ", 20-len(bind.keyLabel)))
		b.WriteString(styles.HelpDescStyle.Render(bind.desc) + "\n")
	}
	return b.String()
}
