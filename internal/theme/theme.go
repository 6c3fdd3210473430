// Package theme resolves module colors and symbols from data-driven tables.
package theme

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Veraticus/powerline/internal/terminal"
)

// ErrUnknownTheme is returned when a builtin theme name is not recognized.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultName is the builtin theme used when none is configured.
const DefaultName = "rainbow"

// Fallback colors used when no theme layer defines defaults.
const (
	FallbackFg = terminal.LightGrey
	FallbackBg = terminal.Black
)

// Theme answers color and symbol lookups for a module property.
type Theme interface {
	Color(module, property string) (terminal.Color, bool)
	Palette(module, property string) ([]terminal.Color, bool)
	Symbol(module, property string) (string, bool)
	Defaults() (fg, bg terminal.Color)
}

// defaultsSource is implemented by themes whose defaults may be partial.
type defaultsSource interface {
	defaultFg() (terminal.Color, bool)
	defaultBg() (terminal.Color, bool)
}

// Layered consults each theme in order; the first hit wins.
type Layered []Theme

// Color implements Theme.
func (l Layered) Color(module, property string) (terminal.Color, bool) {
	for _, t := range l {
		if c, ok := t.Color(module, property); ok {
			return c, true
		}
	}
	return 0, false
}

// Palette implements Theme.
func (l Layered) Palette(module, property string) ([]terminal.Color, bool) {
	for _, t := range l {
		if p, ok := t.Palette(module, property); ok {
			return p, true
		}
	}
	return nil, false
}

// Symbol implements Theme.
func (l Layered) Symbol(module, property string) (string, bool) {
	for _, t := range l {
		if s, ok := t.Symbol(module, property); ok {
			return s, true
		}
	}
	return "", false
}

// Defaults implements Theme.
func (l Layered) Defaults() (terminal.Color, terminal.Color) {
	fg, fgOK := FallbackFg, false
	bg, bgOK := FallbackBg, false
	for _, t := range l {
		if fgOK && bgOK {
			break
		}
		src, partial := t.(defaultsSource)
		if !partial {
			f, b := t.Defaults()
			if !fgOK {
				fg, fgOK = f, true
			}
			if !bgOK {
				bg, bgOK = b, true
			}
			continue
		}
		if c, ok := src.defaultFg(); ok && !fgOK {
			fg, fgOK = c, true
		}
		if c, ok := src.defaultBg(); ok && !bgOK {
			bg, bgOK = c, true
		}
	}
	return fg, bg
}

// Resolve returns the named builtin theme, overlaid by the theme file at
// path when one is given.
func Resolve(fs afero.Fs, name, path string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	base, err := Builtin(name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}
	user, err := LoadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("load theme file: %w", err)
	}
	return Layered{user, base}, nil
}

// Scope narrows lookups to one module and supplies fallbacks on a miss.
type Scope struct {
	theme  Theme
	module string
}

// For returns the lookup scope of module within t. A nil theme yields
// fallbacks for every lookup.
func For(t Theme, module string) Scope {
	return Scope{theme: t, module: module}
}

// Fg returns the property's color, or the theme's default foreground.
func (s Scope) Fg(property string) terminal.Color {
	fg, _ := s.defaults()
	return s.Color(property, fg)
}

// Bg returns the property's color, or the theme's default background.
func (s Scope) Bg(property string) terminal.Color {
	_, bg := s.defaults()
	return s.Color(property, bg)
}

// Color returns the property's color or fallback.
func (s Scope) Color(property string, fallback terminal.Color) terminal.Color {
	if s.theme == nil {
		return fallback
	}
	if c, ok := s.theme.Color(s.module, property); ok {
		return c
	}
	return fallback
}

// Palette returns the property's color list or fallback.
func (s Scope) Palette(property string, fallback ...terminal.Color) []terminal.Color {
	if s.theme != nil {
		if p, ok := s.theme.Palette(s.module, property); ok && len(p) > 0 {
			return p
		}
	}
	return fallback
}

// Symbol returns the property's string or fallback.
func (s Scope) Symbol(property, fallback string) string {
	if s.theme == nil {
		return fallback
	}
	if v, ok := s.theme.Symbol(s.module, property); ok {
		return v
	}
	return fallback
}

func (s Scope) defaults() (terminal.Color, terminal.Color) {
	if s.theme == nil {
		return FallbackFg, FallbackBg
	}
	return s.theme.Defaults()
}
