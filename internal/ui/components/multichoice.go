package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// MultiChoice renders the lettered options of one question. While a test is
// running it highlights the recorded answer; in review it marks the correct
// option with ✓ and a wrong pick with ✗.
type MultiChoice struct {
	Options  []string
	Chosen   int // -1 when unanswered
	Correct  int
	Revealed bool
}

// NewMultiChoice creates an unrevealed option list.
func NewMultiChoice(options []string, chosen int) MultiChoice {
	return MultiChoice{Options: options, Chosen: chosen, Correct: -1}
}

// NewRevealedMultiChoice creates an option list for review.
func NewRevealedMultiChoice(options []string, chosen, correct int) MultiChoice {
	return MultiChoice{Options: options, Chosen: chosen, Correct: correct, Revealed: true}
}

// View renders the options.
func (m MultiChoice) View(p theme.Palette) string {
	var sb strings.Builder
	for i, opt := range m.Options {
		marker := "  "
		style := p.Unselected()

		switch {
		case m.Revealed && i == m.Correct:
			marker = "✓ "
			style = p.Correct()
		case m.Revealed && i == m.Chosen:
			marker = "✗ "
			style = p.Incorrect()
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(p.TextDim)
		case i == m.Chosen:
			marker = "● "
			style = p.Selected()
		}

		sb.WriteString(style.Render(fmt.Sprintf("%s%s)  %s", marker, bank.OptionLabel(i), opt)))
		sb.WriteString("\n")
	}
	return sb.String()
}
