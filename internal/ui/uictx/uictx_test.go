package uictx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/ui/theme"
)

type recordingSaver struct {
	saved []prefs.Preferences
	err   error
}

func (r *recordingSaver) Save(_ context.Context, p prefs.Preferences) error {
	r.saved = append(r.saved, p)
	return r.err
}

func TestApply(t *testing.T) {
	s := &recordingSaver{}
	c := New(prefs.Defaults(), s, nil)
	assert.Equal(t, theme.Dark(), c.Palette())
	assert.Equal(t, "Settings", c.T("home.settings"))

	next := prefs.Preferences{Theme: prefs.ThemeLight, Language: prefs.Hindi}
	assert.NoError(t, c.Apply(next))
	assert.Equal(t, next, c.Prefs())
	assert.Equal(t, theme.Light(), c.Palette())
	assert.Equal(t, "सेटिंग्स", c.T("home.settings"))
	assert.Equal(t, []prefs.Preferences{next}, s.saved)
}

func TestApply_SaveFailureStillSwitches(t *testing.T) {
	s := &recordingSaver{err: errors.New("disk full")}
	c := New(prefs.Defaults(), s, nil)

	err := c.Apply(prefs.Defaults().ToggleTheme())
	assert.Error(t, err)
	assert.Equal(t, prefs.ThemeLight, c.Prefs().Theme)
}

func TestApply_NoSaver(t *testing.T) {
	c := New(prefs.Defaults(), nil, nil)
	assert.NoError(t, c.Apply(prefs.Defaults().ToggleLanguage()))
	assert.Equal(t, prefs.Hindi, c.Prefs().Language)
}
