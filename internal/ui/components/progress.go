package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (b ProgressBar) View(p theme.Palette) string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(p.Text).Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if b.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := max(b.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*b.Percent), 0), barWidth)
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(p.Primary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(p.Border).Render(strings.Repeat(" ", empty))

	if b.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(p.TextDim).
			Render(fmt.Sprintf("  %d%%", int(b.Percent*100)))
	}

	return result
}
