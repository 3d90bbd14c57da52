package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/search"
	"github.com/dareenhdeya/iaProj/internal/tui/components"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// booksScreen is the catalog: filterable list, add/edit form, delete
// confirmation, and the fuzzy title search overlay.
type booksScreen struct {
	sync  *collection.Synchronizer[domain.Book]
	index *search.BookIndex

	cursor int

	// Debounced keyword filter. seq invalidates in-flight commits when a
	// newer keystroke arrives.
	filtering     bool
	filterInput   textinput.Model
	filterSeq     int
	keyword       string
	availableOnly bool

	// Fuzzy title search overlay
	searching     bool
	searchInput   textinput.Model
	searchResults []domain.Book

	form    components.Form
	editing bool
	editID  int

	confirm components.ConfirmModal
}

func newBooksScreen(sync *collection.Synchronizer[domain.Book], index *search.BookIndex) booksScreen {
	filter := textinput.New()
	filter.Placeholder = "name, author, or category..."
	filter.Prompt = "/ "
	filter.PromptStyle = styles.FilterPromptStyle
	filter.CharLimit = 60

	searchIn := textinput.New()
	searchIn.Placeholder = "fuzzy title search..."
	searchIn.Prompt = "» "
	searchIn.PromptStyle = styles.FilterPromptStyle
	searchIn.CharLimit = 60

	form := components.NewForm([]components.Field{
		{Key: "name", Label: "Name", Placeholder: "Book title"},
		{Key: "author", Label: "Author", Placeholder: "Author name"},
		{Key: "category", Label: "Category", Kind: components.FieldSelect, Options: domain.Categories},
		{Key: "quantity", Label: "Quantity", Placeholder: "0"},
		{Key: "description", Label: "Description", Placeholder: "Optional"},
		{Key: "image", Label: "Image URL", Placeholder: "https://..."},
	})

	return booksScreen{
		sync:        sync,
		index:       index,
		filterInput: filter,
		searchInput: searchIn,
		form:        form,
		confirm:     components.NewConfirmModal(),
	}
}

func (s booksScreen) Update(msg tea.Msg) (booksScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case CollectionLoadedMsg:
		if msg.Collection == "books" {
			s.index.Reindex(s.sync.Snapshot())
			s.keyword = ""
			s.availableOnly = false
			s.filterInput.SetValue("")
			s.clampCursor()
		}
		return s, nil

	case FilterCommitMsg:
		if msg.Seq != s.filterSeq {
			return s, nil // superseded by a newer keystroke
		}
		s.applyKeyword()
		return s, nil

	case MutationDoneMsg:
		if msg.Collection != "books" {
			return s, nil
		}
		switch msg.Result.Outcome {
		case collection.OutcomeInvalid:
			s.form.SetErrors(msg.Result.FieldErrors)
		case collection.OutcomeSaved:
			s.form.Hide()
			s.index.Reindex(s.sync.Snapshot())
			s.clampCursor()
		}
		return s, nil
	}

	if s.form.IsVisible() {
		return s.updateForm(msg)
	}
	if s.confirm.IsVisible() {
		return s.updateConfirm(msg)
	}
	if s.searching {
		return s.updateSearch(msg)
	}
	if s.filtering {
		return s.updateFilter(msg)
	}
	return s.updateList(msg)
}

func (s booksScreen) updateList(msg tea.Msg) (booksScreen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	books := s.sync.View()

	switch {
	case key.Matches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if s.cursor < len(books)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, keys.Filter):
		s.filtering = true
		s.filterInput.SetValue(s.keyword)
		s.filterInput.Focus()
		return s, textinput.Blink
	case key.Matches(keyMsg, keys.Search):
		s.searching = true
		s.searchInput.SetValue("")
		s.searchResults = nil
		s.searchInput.Focus()
		return s, textinput.Blink
	case key.Matches(keyMsg, keys.Add):
		s.editing = false
		s.form.Show("Add Book")
	case key.Matches(keyMsg, keys.Edit):
		if s.cursor < len(books) {
			book := books[s.cursor]
			s.editing = true
			s.editID = book.ID
			s.form.Show("Edit Book")
			s.form.SetValue("name", book.Name)
			s.form.SetValue("author", book.Author)
			s.form.SetValue("category", book.Category)
			s.form.SetValue("quantity", strconv.Itoa(book.Quantity))
			s.form.SetValue("description", book.Description)
			s.form.SetValue("image", book.Image)
		}
	case key.Matches(keyMsg, keys.Delete):
		if s.cursor < len(books) {
			book := books[s.cursor]
			s.sync.SetPendingDelete(book.ID)
			s.confirm.Show("Remove Book", fmt.Sprintf("Remove %q from the catalog?", book.Name))
		}
	case key.Matches(keyMsg, keys.Toggle):
		s.availableOnly = !s.availableOnly
		s.applyKeyword()
	case keyMsg.String() == "esc" && (s.keyword != "" || s.availableOnly):
		s.keyword = ""
		s.availableOnly = false
		s.filterInput.SetValue("")
		s.sync.ResetFilter()
		s.clampCursor()
	}
	return s, nil
}

func (s booksScreen) updateFilter(msg tea.Msg) (booksScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			s.filtering = false
			s.filterInput.Blur()
			s.applyKeyword()
			return s, nil
		case "esc":
			s.filtering = false
			s.filterInput.Blur()
			s.keyword = ""
			s.filterInput.SetValue("")
			s.sync.ResetFilter()
			s.clampCursor()
			return s, nil
		}
	}

	var cmd tea.Cmd
	before := s.filterInput.Value()
	s.filterInput, cmd = s.filterInput.Update(msg)
	if s.filterInput.Value() != before {
		s.keyword = s.filterInput.Value()
		s.filterSeq++
		return s, tea.Batch(cmd, CommitFilterCmd(s.filterSeq))
	}
	return s, cmd
}

// applyKeyword recomputes the view from the snapshot for the current keyword
// and availability toggle.
func (s *booksScreen) applyKeyword() {
	keyword := s.keyword
	availableOnly := s.availableOnly
	if keyword == "" && !availableOnly {
		s.sync.ResetFilter()
	} else {
		s.sync.ApplyFilter(func(b domain.Book) bool {
			if availableOnly && !b.Available() {
				return false
			}
			return search.MatchesKeyword(b, keyword)
		})
	}
	s.clampCursor()
}

func (s booksScreen) updateSearch(msg tea.Msg) (booksScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter":
			s.searching = false
			s.searchInput.Blur()
			return s, nil
		}
	}

	var cmd tea.Cmd
	before := s.searchInput.Value()
	s.searchInput, cmd = s.searchInput.Update(msg)
	if s.searchInput.Value() != before {
		s.searchResults = s.index.Search(s.searchInput.Value())
	}
	return s, cmd
}

func (s booksScreen) updateForm(msg tea.Msg) (booksScreen, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	s.form, cmd, action = s.form.Update(msg)

	if action == components.FormSubmitted {
		draft := s.draftFromForm()
		if s.editing {
			draft.ID = s.editID
			return s, UpdateCmd(s.sync, "books", s.editID, draft)
		}
		return s, CreateCmd(s.sync, "books", draft)
	}
	return s, cmd
}

func (s booksScreen) updateConfirm(msg tea.Msg) (booksScreen, tea.Cmd) {
	var decided, accepted bool
	s.confirm, decided, accepted = s.confirm.Update(msg)
	if !decided {
		return s, nil
	}
	id, ok := s.sync.PendingDelete()
	if !ok {
		return s, nil
	}
	if !accepted {
		s.sync.ClearPendingDelete()
		return s, nil
	}
	return s, RemoveCmd(s.sync, "books", id)
}

func (s *booksScreen) clampCursor() {
	count := len(s.sync.View())
	if s.cursor >= count {
		s.cursor = count - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s booksScreen) View(width, height int) string {
	if s.form.IsVisible() {
		return s.form.View()
	}
	if s.confirm.IsVisible() {
		return s.confirm.View()
	}
	if s.searching {
		return s.searchView(width)
	}

	var b strings.Builder
	books := s.sync.View()

	header := styles.TitleStyle.Render("Books")
	count := styles.DimStyle.Render(fmt.Sprintf("  %d of %d", len(books), s.sync.Count()))
	b.WriteString(header + count)
	if s.availableOnly {
		b.WriteString("  " + styles.AvailableBadge.Render("available only"))
	}
	b.WriteString("\n")

	if s.filtering || s.keyword != "" {
		b.WriteString(s.filterInput.View() + "\n")
	}
	b.WriteString("\n")

	if len(books) == 0 {
		b.WriteString(styles.DimStyle.Render("No books match."))
		return b.String()
	}

	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}

	for i := start; i < len(books) && i < start+visible; i++ {
		book := books[i]
		badge := styles.AvailableBadge.Render("●")
		if !book.AvailabilityStatus {
			badge = styles.UnavailableBadge.Render("●")
		}
		line := fmt.Sprintf("%s %s %s %s",
			badge,
			styles.Truncate(book.Name, 34),
			styles.DimStyle.Render(styles.Truncate(book.Author, 22)),
			styles.SubtitleStyle.Render(fmt.Sprintf("%s · qty %d", book.Category, book.Quantity)),
		)
		if i == s.cursor {
			line = styles.TableSelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDescStyle.Render("a add · e edit · d delete · / filter · t available · s search · r refresh"))
	return b.String()
}

func (s booksScreen) searchView(width int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Title Search") + "\n")
	b.WriteString(s.searchInput.View() + "\n\n")

	if len(s.searchResults) == 0 {
		b.WriteString(styles.DimStyle.Render("No matches."))
		return b.String()
	}
	for i, book := range s.searchResults {
		if i >= 10 {
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.Truncate(book.Name, 40),
			styles.DimStyle.Render(book.Author)))
	}
	return b.String()
}

// draftFromForm builds a book from the form fields. A non-numeric quantity
// becomes zero, which validation then rejects as non-positive.
func (s booksScreen) draftFromForm() domain.Book {
	quantity, _ := strconv.Atoi(strings.TrimSpace(s.form.Value("quantity")))
	return domain.Book{
		Name:        strings.TrimSpace(s.form.Value("name")),
		Author:      strings.TrimSpace(s.form.Value("author")),
		Category:    s.form.Value("category"),
		Quantity:    quantity,
		Description: strings.TrimSpace(s.form.Value("description")),
		Image:       strings.TrimSpace(s.form.Value("image")),
	}
}
