// Package uictx carries the ambient UI state (preferences, palette and
// string catalog) that screens read. It is created once at startup and
// passed explicitly to every screen.
package uictx

import (
	"context"

	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/i18n"
	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// Saver persists preferences. *prefs.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, p prefs.Preferences) error
}

// Context is the shared UI state.
type Context struct {
	prefs   prefs.Preferences
	palette theme.Palette
	catalog i18n.Catalog
	saver   Saver
	log     *zap.Logger
}

// New creates a Context for p. saver may be nil, in which case changes are
// kept in memory only.
func New(p prefs.Preferences, saver Saver, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Context{saver: saver, log: log}
	c.set(p)
	return c
}

func (c *Context) set(p prefs.Preferences) {
	c.prefs = p
	c.palette = theme.For(p.Theme)
	c.catalog = i18n.For(p.Language)
}

// Prefs returns the current preferences.
func (c *Context) Prefs() prefs.Preferences { return c.prefs }

// Palette returns the palette for the current theme.
func (c *Context) Palette() theme.Palette { return c.palette }

// T looks up a string in the current language.
func (c *Context) T(key string, args ...any) string { return c.catalog.T(key, args...) }

// Apply switches to p and persists it. The new preferences take effect even
// if saving fails.
func (c *Context) Apply(p prefs.Preferences) error {
	c.set(p)
	if c.saver == nil {
		return nil
	}
	if err := c.saver.Save(context.Background(), p); err != nil {
		c.log.Error("failed to save preferences", zap.Error(err))
		return err
	}
	c.log.Info("preferences saved",
		zap.String("theme", string(p.Theme)),
		zap.String("language", string(p.Language)),
	)
	return nil
}
