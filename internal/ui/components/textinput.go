package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with vocabquiz styling and an optional
// right/wrong mark shown after grading.
type TextInput struct {
	Model    textinput.Model
	MinWidth int
	marked   bool
	valid    bool
}

// NewTextInput creates a new styled, focused text input. minWidth pads the
// rendered field so short answers keep a stable column.
func NewTextInput(placeholder string, minWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	return TextInput{
		Model:    ti,
		MinWidth: minWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.MinWidth > 0 {
		view = lipgloss.NewStyle().Width(t.MinWidth).Render(view)
	}
	if t.marked {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Mark shows a right/wrong mark next to the input.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}

// ClearMark hides the mark.
func (t *TextInput) ClearMark() {
	t.marked = false
	t.valid = false
}

// Marked reports whether a mark is shown and whether it is a check.
func (t TextInput) Marked() (marked, valid bool) {
	return t.marked, t.valid
}
