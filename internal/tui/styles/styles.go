package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Indigo     = lipgloss.Color("#6366F1")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Indigo)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Indigo).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Padding(0, 1)
)

// Toast styles
var (
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Green).
				Padding(0, 1)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Red).
			Padding(0, 1)
)

// Form styles
var (
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Indigo).
				Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(Red)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Indigo).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Badge styles
var (
	AvailableBadge = lipgloss.NewStyle().
			Foreground(Green)

	UnavailableBadge = lipgloss.NewStyle().
				Foreground(Red)

	PendingBadge = lipgloss.NewStyle().
			Foreground(Amber)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Indigo)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(White).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(SlateLight).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Indigo).
				Bold(true)
)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
