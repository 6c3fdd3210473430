package powerline

import "github.com/Veraticus/powerline/internal/terminal"

// Style is the immutable paint of a segment.
type Style struct {
	Fg terminal.Color
	Bg terminal.Color
	// Separator pins the glyph for the boundary adjoining this segment.
	// The zero value falls back to the composer's ambient separator.
	Separator Separator
	// SeparatorFg colors that boundary glyph.
	SeparatorFg terminal.Color
}

// Simple returns a style using the ambient separator, colored like bg.
func Simple(fg, bg terminal.Color) Style {
	return Style{Fg: fg, Bg: bg, SeparatorFg: bg}
}

// Custom returns a style that pins its own separator.
func Custom(fg, bg terminal.Color, sep Separator) Style {
	return Style{Fg: fg, Bg: bg, Separator: sep, SeparatorFg: bg}
}

// WithSeparatorFg returns a copy of s with a different separator color.
func (s Style) WithSeparatorFg(c terminal.Color) Style {
	s.SeparatorFg = c
	return s
}

func (s Style) separatorOr(ambient Separator) Separator {
	if s.Separator.IsZero() {
		return ambient
	}
	return s.Separator
}

// Segment is one styled piece of prompt content.
type Segment struct {
	Content string
	Style   Style
	// Padded segments get one space on each side.
	Padded bool
}

// Module produces segments into a composer. Producers that find nothing to
// show append nothing.
type Module interface {
	Produce(c *Composer)
}

// ModuleFunc adapts a plain function to Module.
type ModuleFunc func(c *Composer)

// Produce calls f(c).
func (f ModuleFunc) Produce(c *Composer) {
	f(c)
}
