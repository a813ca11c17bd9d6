package components

import (
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// Button is a styled, non-interactive button label. Screens map keys to
// actions themselves; the button only shows whether the action is available.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
	}
}

// View renders the button.
func (b Button) View(p theme.Palette) string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Active {
		return p.ButtonActive().Render(label)
	}
	return p.ButtonInactive().Render(label)
}

// ButtonRow joins buttons with spacing.
func ButtonRow(p theme.Palette, buttons ...Button) string {
	views := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View(p))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
