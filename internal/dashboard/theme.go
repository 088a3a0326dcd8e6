package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/store"
)

// ErrUnknownTheme is returned by ParseTheme for anything but dark or light.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the light/dark display preference.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme parses "dark" or "light", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("%q: %w (want dark or light)", s, ErrUnknownTheme)
}

// Theme returns the stored preference; absent or unrecognised reads as light.
func (s *Service) Theme() (Theme, error) {
	v, ok, err := s.st.Get(store.KeyTheme)
	if err != nil {
		return ThemeLight, fmt.Errorf("loading theme: %w", err)
	}
	if ok && Theme(v) == ThemeDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

// SetTheme stores the preference.
func (s *Service) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.st.Set(store.KeyTheme, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// ToggleTheme flips between dark and light and returns the new value.
func (s *Service) ToggleTheme() (Theme, error) {
	cur, err := s.Theme()
	if err != nil {
		return cur, err
	}
	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	return next, s.SetTheme(next)
}
