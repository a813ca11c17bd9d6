package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's styling.
type TextInput struct {
	Model    textinput.Model
	MaxRunes int
	rejected bool
}

// NewTextInput creates a new focused text input limited to maxRunes.
func NewTextInput(placeholder string, maxRunes int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxRunes > 0 {
		ti.CharLimit = maxRunes
	}

	return TextInput{
		Model:    ti,
		MaxRunes: maxRunes,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears a previous rejection mark.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.rejected = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View(p theme.Palette) string {
	view := t.Model.View()
	if t.rejected {
		view += " " + lipgloss.NewStyle().Foreground(p.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reject marks the current value as refused until the next edit.
func (t *TextInput) Reject() {
	t.rejected = true
}

// Rejected reports whether the last submission was refused.
func (t TextInput) Rejected() bool {
	return t.rejected
}
