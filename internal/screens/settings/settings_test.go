package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

type memSaver struct {
	last prefs.Preferences
	err  error
}

func (m *memSaver) Save(_ context.Context, p prefs.Preferences) error {
	m.last = p
	return m.err
}

// press sends a key and feeds any resulting message back, like the runtime.
func press(s screen.Screen, msg tea.KeyPressMsg) screen.Screen {
	s, cmd := s.Update(msg)
	if cmd != nil {
		s, _ = s.Update(cmd())
	}
	return s
}

func TestToggleTheme(t *testing.T) {
	saver := &memSaver{}
	ctx := uictx.New(prefs.Defaults(), saver, nil)
	var s screen.Screen = New(ctx)

	s = press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	if ctx.Prefs().Theme != prefs.ThemeLight {
		t.Errorf("expected light theme, got %s", ctx.Prefs().Theme)
	}
	if saver.last.Theme != prefs.ThemeLight {
		t.Error("expected the toggle to be persisted")
	}

	// Space toggles too.
	press(s, tea.KeyPressMsg{Code: ' ', Text: " "})
	if ctx.Prefs().Theme != prefs.ThemeDark {
		t.Errorf("expected dark theme after second toggle, got %s", ctx.Prefs().Theme)
	}
}

func TestToggleLanguage(t *testing.T) {
	ctx := uictx.New(prefs.Defaults(), &memSaver{}, nil)
	var s screen.Screen = New(ctx)

	s = press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	s = press(s, tea.KeyPressMsg{Code: tea.KeyEnter})

	if ctx.Prefs().Language != prefs.Hindi {
		t.Fatalf("expected hindi, got %s", ctx.Prefs().Language)
	}
	if !strings.Contains(s.View(80, 20), "भाषा") {
		t.Error("expected the settings view to switch language immediately")
	}
}

func TestSaveErrorShown(t *testing.T) {
	ctx := uictx.New(prefs.Defaults(), &memSaver{err: errors.New("read-only")}, nil)
	var s screen.Screen = New(ctx)

	s = press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(80, 20), "read-only") {
		t.Error("expected the save error in the view")
	}
}
