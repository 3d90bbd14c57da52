package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
	"github.com/dareenhdeya/iaProj/internal/validate"
)

// FieldKind controls how a form field is edited and rendered.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldPassword
	FieldSelect
)

// Field describes one form field. Key is the name used for values and for
// validation errors.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        FieldKind
	Options     []string // FieldSelect only
}

// FormAction is the result of feeding a key event to the form.
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmitted
	FormCancelled
)

// Form is a multi-field entry modal. Field errors from validation render
// inline under their field and clear on the next submit attempt.
type Form struct {
	visible  bool
	title    string
	fields   []Field
	inputs   []textinput.Model
	selected []int      // option index per field, FieldSelect only
	preset   [][]string // original option lists, restored on Show
	errors   validate.Errors
	focus    int
}

// NewForm creates a form with the given fields.
func NewForm(fields []Field) Form {
	inputs := make([]textinput.Model, len(fields))
	selected := make([]int, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 200
		ti.Width = 40
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		if f.Kind == FieldPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	preset := make([][]string, len(fields))
	for i, f := range fields {
		preset[i] = f.Options
	}
	return Form{fields: fields, inputs: inputs, selected: selected, preset: preset}
}

// Show displays the form with a title, clearing prior values and errors.
func (f *Form) Show(title string) {
	f.visible = true
	f.title = title
	f.errors = nil
	f.focus = 0
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
		f.selected[i] = 0
		f.fields[i].Options = f.preset[i]
	}
	f.inputs[0].Focus()
}

// Hide dismisses the form.
func (f *Form) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown.
func (f Form) IsVisible() bool { return f.visible }

// SetValue pre-fills the field with the given key, for edit flows.
func (f *Form) SetValue(key, value string) {
	for i, field := range f.fields {
		if field.Key != key {
			continue
		}
		if field.Kind == FieldSelect {
			for j, opt := range field.Options {
				if opt == value {
					f.selected[i] = j
					return
				}
			}
			if value != "" {
				// A record can carry an option outside the preset list;
				// keep it selectable rather than snapping to the first one.
				f.fields[i].Options = append(append([]string(nil), field.Options...), value)
				f.selected[i] = len(f.fields[i].Options) - 1
			}
		} else {
			f.inputs[i].SetValue(value)
		}
		return
	}
}

// Value returns the current value of the field with the given key.
func (f Form) Value(key string) string {
	for i, field := range f.fields {
		if field.Key != key {
			continue
		}
		if field.Kind == FieldSelect {
			if len(field.Options) == 0 {
				return ""
			}
			return field.Options[f.selected[i]]
		}
		return f.inputs[i].Value()
	}
	return ""
}

// SetErrors attaches validation errors to render inline.
func (f *Form) SetErrors(errs validate.Errors) {
	f.errors = errs
}

// Update handles input events.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd, FormAction) {
	if !f.visible {
		return f, nil, FormNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return f, nil, FormSubmitted
		case "esc":
			f.Hide()
			return f, nil, FormCancelled
		case "tab", "down":
			f.moveFocus(1)
			return f, nil, FormNone
		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil, FormNone
		case "left", "right":
			if f.fields[f.focus].Kind == FieldSelect {
				f.cycleOption(keyMsg.String() == "right")
				return f, nil, FormNone
			}
		}
	}

	if f.fields[f.focus].Kind == FieldSelect {
		return f, nil, FormNone
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, FormNone
}

func (f *Form) moveFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	if f.fields[f.focus].Kind != FieldSelect {
		f.inputs[f.focus].Focus()
	}
}

func (f *Form) cycleOption(forward bool) {
	opts := f.fields[f.focus].Options
	if len(opts) == 0 {
		return
	}
	if forward {
		f.selected[f.focus] = (f.selected[f.focus] + 1) % len(opts)
	} else {
		f.selected[f.focus] = (f.selected[f.focus] - 1 + len(opts)) % len(opts)
	}
}

// View renders the form modal.
func (f Form) View() string {
	if !f.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(f.title))
	b.WriteString("\n")

	for i, field := range f.fields {
		label := styles.FormLabelStyle
		if i == f.focus {
			label = styles.FormLabelFocusedStyle
		}
		b.WriteString(label.Render(field.Label))
		b.WriteString("\n")

		if field.Kind == FieldSelect {
			opt := ""
			if len(field.Options) > 0 {
				opt = field.Options[f.selected[i]]
			}
			marker := "  "
			if i == f.focus {
				marker = styles.AccentStyle.Render("◂ ") + opt + styles.AccentStyle.Render(" ▸")
			} else {
				marker += opt
			}
			b.WriteString(marker)
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")

		if msg, ok := f.errors[field.Key]; ok {
			b.WriteString(styles.FieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("enter save · esc cancel · tab next field"))

	return styles.ModalStyle.Render(b.String())
}
