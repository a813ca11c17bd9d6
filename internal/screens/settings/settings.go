package settings

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/components"
	"github.com/rajannraj/rtomock/internal/ui/layout"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

const (
	rowTheme = iota
	rowLanguage
)

// toggledMsg reports the outcome of persisting a toggle.
type toggledMsg struct {
	err error
}

// SettingsScreen toggles the theme and language preferences.
type SettingsScreen struct {
	ctx  *uictx.Context
	menu components.Menu
	err  error
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(ctx *uictx.Context) *SettingsScreen {
	s := &SettingsScreen{ctx: ctx}
	s.menu = components.NewMenu([]components.MenuItem{
		{Action: func() tea.Cmd { return s.toggle(prefs.Preferences.ToggleTheme) }},
		{Action: func() tea.Cmd { return s.toggle(prefs.Preferences.ToggleLanguage) }},
	})
	return s
}

func (s *SettingsScreen) toggle(fn func(prefs.Preferences) prefs.Preferences) tea.Cmd {
	err := s.ctx.Apply(fn(s.ctx.Prefs()))
	return func() tea.Msg { return toggledMsg{err: err} }
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case toggledMsg:
		s.err = msg.err
		return s, nil
	case tea.KeyPressMsg:
		if msg.String() == "space" {
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) themeLabel() string {
	if s.ctx.Prefs().Theme == prefs.ThemeLight {
		return s.ctx.T("settings.light")
	}
	return s.ctx.T("settings.dark")
}

func (s *SettingsScreen) languageLabel() string {
	if s.ctx.Prefs().Language == prefs.Hindi {
		return s.ctx.T("settings.hindi")
	}
	return s.ctx.T("settings.english")
}

func (s *SettingsScreen) View(width, height int) string {
	p := s.ctx.Palette()
	s.menu.Items[rowTheme].Label = fmt.Sprintf("%-12s %s", s.ctx.T("settings.theme"), s.themeLabel())
	s.menu.Items[rowLanguage].Label = fmt.Sprintf("%-12s %s", s.ctx.T("settings.language"), s.languageLabel())

	sections := []string{
		p.Title().Render(s.ctx.T("settings.title")),
		"",
		p.Card().Width(min(width-4, 44)).Render(s.menu.View(p)),
	}
	if s.err != nil {
		sections = append(sections, "", p.Incorrect().Render(s.ctx.T("settings.save_failed", s.err)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SettingsScreen) Title() string {
	return s.ctx.T("settings.title")
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.ctx.T("key.navigate")},
		{Key: "Enter", Description: s.ctx.T("key.toggle")},
		{Key: "Esc", Description: s.ctx.T("key.back")},
	}
}
