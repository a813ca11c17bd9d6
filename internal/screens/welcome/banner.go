package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ████████╗ ██████╗
 ██╔══██╗╚══██╔══╝██╔═══██╗
 ██████╔╝   ██║   ██║   ██║
 ██╔══██╗   ██║   ██║   ██║
 ██║  ██║   ██║   ╚██████╔╝
 ╚═╝  ╚═╝   ╚═╝    ╚═════╝`

const bannerCompact = "R T O"

// RenderBanner returns the RTO banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 32 columns.
func RenderBanner(p theme.Palette, width int) string {
	style := lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
