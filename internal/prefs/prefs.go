// Package prefs holds the process-wide UI preferences (theme and language)
// and persists them in a small SQLite key-value table.
package prefs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by Set for keys other than theme and language.
var ErrUnknownKey = errors.New("unknown preference key")

// ErrInvalidValue is returned when a value is not allowed for its key.
var ErrInvalidValue = errors.New("invalid preference value")

// Preference keys as stored and as accepted on the command line.
const (
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Theme selects the color palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Language selects the string catalog.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Preferences is the ambient UI state shared by every screen.
type Preferences struct {
	Theme    Theme
	Language Language
}

// Defaults returns dark theme, English.
func Defaults() Preferences {
	return Preferences{Theme: ThemeDark, Language: English}
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("%w: theme %q (want dark or light)", ErrInvalidValue, s)
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Hindi:
		return l, nil
	}
	return "", fmt.Errorf("%w: language %q (want en or hi)", ErrInvalidValue, s)
}

// ToggleTheme switches between dark and light.
func (p Preferences) ToggleTheme() Preferences {
	if p.Theme == ThemeLight {
		p.Theme = ThemeDark
	} else {
		p.Theme = ThemeLight
	}
	return p
}

// ToggleLanguage switches between English and Hindi.
func (p Preferences) ToggleLanguage() Preferences {
	if p.Language == Hindi {
		p.Language = English
	} else {
		p.Language = Hindi
	}
	return p
}

// With returns p with key set to value after validation.
func (p Preferences) With(key, value string) (Preferences, error) {
	switch key {
	case KeyTheme:
		t, err := ParseTheme(value)
		if err != nil {
			return p, err
		}
		p.Theme = t
	case KeyLanguage:
		l, err := ParseLanguage(value)
		if err != nil {
			return p, err
		}
		p.Language = l
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return p, nil
}

func (p Preferences) pairs() map[string]string {
	return map[string]string{
		KeyTheme:    string(p.Theme),
		KeyLanguage: string(p.Language),
	}
}
