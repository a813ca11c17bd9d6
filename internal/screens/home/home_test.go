package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newHome(ctx *uictx.Context) *HomeScreen {
	return New(ctx, exam.DefaultConfig(), Factories{
		MockTest: func() screen.Screen { return &stubScreen{title: "mock"} },
		Settings: func() screen.Screen { return &stubScreen{title: "settings"} },
	})
}

func pushed(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return msg.Screen.Title()
}

func TestMenuActions(t *testing.T) {
	h := newHome(uictx.New(prefs.Defaults(), nil, nil))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushed(t, cmd); got != "mock" {
		t.Errorf("expected mock test screen, got %q", got)
	}

	_, cmd = h.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if got := pushed(t, cmd); got != "settings" {
		t.Errorf("expected settings screen, got %q", got)
	}
}

func TestIntroShowsRules(t *testing.T) {
	h := newHome(uictx.New(prefs.Defaults(), nil, nil))
	view := h.View(80, 24)
	if !strings.Contains(view, "20 questions, 20 minutes. Score 70% to pass.") {
		t.Errorf("expected the test rules in the intro, got:\n%s", view)
	}
}

func TestLabelsFollowLanguage(t *testing.T) {
	ctx := uictx.New(prefs.Defaults(), nil, nil)
	h := newHome(ctx)
	if !strings.Contains(h.View(80, 24), "Start Mock Test") {
		t.Error("expected English menu")
	}

	_ = ctx.Apply(prefs.Preferences{Theme: prefs.ThemeDark, Language: prefs.Hindi})
	if !strings.Contains(h.View(80, 24), "मॉक टेस्ट शुरू करें") {
		t.Error("expected Hindi menu after switching language")
	}
	if h.Title() != "होम" {
		t.Errorf("expected Hindi title, got %q", h.Title())
	}
}
