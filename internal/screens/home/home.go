package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/components"
	"github.com/rajannraj/rtomock/internal/ui/layout"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

// Factories builds the screens reachable from the home menu.
type Factories struct {
	MockTest func() screen.Screen
	Settings func() screen.Screen
}

// HomeScreen is the main menu.
type HomeScreen struct {
	ctx       *uictx.Context
	examCfg   exam.Config
	menu      components.Menu
	labelKeys []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctx *uictx.Context, examCfg exam.Config, f Factories) *HomeScreen {
	labelKeys := []string{"home.start", "home.settings", "home.quit"}
	items := []components.MenuItem{
		{Action: func() tea.Cmd { return router.Push(f.MockTest()) }},
		{Action: func() tea.Cmd { return router.Push(f.Settings()) }},
		{Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{
		ctx:       ctx,
		examCfg:   examCfg,
		menu:      components.NewMenu(items),
		labelKeys: labelKeys,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// labels are refreshed on every render so a language switch in settings
// shows up as soon as the user comes back.
func (h *HomeScreen) refreshLabels() {
	for i, key := range h.labelKeys {
		h.menu.Items[i].Label = h.ctx.T(key)
	}
}

func (h *HomeScreen) View(width, height int) string {
	h.refreshLabels()
	p := h.ctx.Palette()

	title := p.Title().Render(h.ctx.T("app.name"))
	intro := p.Subtitle().Render(h.ctx.T("home.intro",
		h.examCfg.QuestionCount,
		int(h.examCfg.Duration.Minutes()),
		h.examCfg.Policy.PassPercent,
	))
	menu := p.Card().Width(min(width-4, 44)).Render(h.menu.View(p))

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", intro, "", menu)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return h.ctx.T("home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.ctx.T("key.navigate")},
		{Key: "Enter", Description: h.ctx.T("key.select")},
		{Key: "Ctrl+C", Description: h.ctx.T("key.quit")},
	}
}
