package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// Traffic light lamps, top to bottom.
const (
	lampRed = iota
	lampAmber
	lampGreen
)

type tickMsg time.Time

// WelcomeScreen shows a traffic light that turns green before the banner
// appears. Any key skips to the home screen.
type WelcomeScreen struct {
	ctx          *uictx.Context
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(ctx *uictx.Context, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		ctx:         ctx,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur || w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) lit() int {
	switch {
	case w.elapsed < phase1End:
		return lampRed
	case w.elapsed < phase2End:
		return lampAmber
	default:
		return lampGreen
	}
}

func (w *WelcomeScreen) trafficLight() string {
	p := w.ctx.Palette()
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(p.Error),
		lipgloss.NewStyle().Foreground(p.Warning),
		lipgloss.NewStyle().Foreground(p.Success),
	}
	frame := lipgloss.NewStyle().Foreground(p.Border)
	off := lipgloss.NewStyle().Foreground(p.Border)

	lines := []string{frame.Render("╭─────╮")}
	for i, c := range colors {
		lamp := off.Render("○")
		if i == w.lit() {
			lamp = c.Render("●")
		}
		lines = append(lines, frame.Render("│  ")+lamp+frame.Render("  │"))
	}
	lines = append(lines, frame.Render("╰──┬──╯"), frame.Render("   │   "))
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	p := w.ctx.Palette()
	sections := []string{w.trafficLight()}

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(p, width),
			lipgloss.NewStyle().Foreground(p.Text).Bold(true).Render(w.ctx.T("app.name")),
			"",
			lipgloss.NewStyle().Foreground(p.TextDim).Render(w.ctx.T("app.tagline")),
		)
	}

	sections = append(sections, "", p.Hint().Render(w.ctx.T("welcome.prompt")))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
