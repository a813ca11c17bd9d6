package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/prefs"
)

// Palette is the set of colors a screen renders with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Warning   color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette: navy background, amber accents.
func Dark() Palette {
	return Palette{
		Primary:   lipgloss.Color("#F59E0B"), // Amber
		Secondary: lipgloss.Color("#38BDF8"), // Sky
		Accent:    lipgloss.Color("#FBBF24"), // Light amber
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#EF4444"), // Red
		Warning:   lipgloss.Color("#F97316"), // Orange
		Text:      lipgloss.Color("#F8FAFC"), // White
		TextDim:   lipgloss.Color("#94A3B8"), // Slate
		BgCard:    lipgloss.Color("#1E293B"), // Dark slate
		Border:    lipgloss.Color("#334155"), // Slate
	}
}

// Light mirrors the site's cream look.
func Light() Palette {
	return Palette{
		Primary:   lipgloss.Color("#B45309"), // Dark amber
		Secondary: lipgloss.Color("#0369A1"), // Deep sky
		Accent:    lipgloss.Color("#D97706"),
		Success:   lipgloss.Color("#15803D"),
		Error:     lipgloss.Color("#B91C1C"),
		Warning:   lipgloss.Color("#C2410C"),
		Text:      lipgloss.Color("#0F172A"), // Navy
		TextDim:   lipgloss.Color("#64748B"),
		BgCard:    lipgloss.Color("#EFEDE0"), // Cream
		Border:    lipgloss.Color("#CBD5E1"),
	}
}

// For returns the palette for a theme preference.
func For(t prefs.Theme) Palette {
	if t == prefs.ThemeLight {
		return Light()
	}
	return Dark()
}

// Typography

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Align(lipgloss.Center)
}

func (p Palette) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextDim).Align(lipgloss.Center)
}

func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

func (p Palette) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.TextDim).Italic(true)
}

// Card is a bordered panel.
func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
}

// States

func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
}

func (p Palette) Unselected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

func (p Palette) Correct() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Success).Bold(true)
}

func (p Palette) Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Error).Bold(true)
}

// Badge renders a filled label, green for good news and red otherwise.
func (p Palette) Badge(good bool) lipgloss.Style {
	bg := p.Error
	if good {
		bg = p.Success
	}
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
}

// Components

func (p Palette) ButtonActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#0F172A")).
		Bold(true).
		Padding(0, 2)
}

func (p Palette) ButtonInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.BgCard).
		Foreground(p.TextDim).
		Padding(0, 2)
}
