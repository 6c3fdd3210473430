package powerline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeparator is returned by ParseSeparator for unrecognized names.
var ErrUnknownSeparator = errors.New("unknown separator")

// Separator is a pair of glyphs drawn between adjacent segments. The left
// glyph points right and is used while building the left side; the right
// glyph points left and is used on the right side.
type Separator struct {
	name  string
	left  rune
	right rune
}

// Builtin separators from the Powerline private-use range.
var (
	Chevron   = Separator{name: "chevron", left: '\ue0b0', right: '\ue0b2'}
	Round     = Separator{name: "round", left: '\ue0b4', right: '\ue0b6'}
	AngleLine = Separator{name: "angle_line", left: '\ue0b1', right: '\ue0b3'}
	Slant     = Separator{name: "slant", left: '\ue0bc', right: '\ue0ba'}
)

var separatorsByName = map[string]Separator{
	Chevron.name:   Chevron,
	Round.name:     Round,
	AngleLine.name: AngleLine,
	Slant.name:     Slant,
}

// CustomSeparator builds a separator from an arbitrary glyph pair.
func CustomSeparator(left, right rune) Separator {
	return Separator{name: "custom", left: left, right: right}
}

// ParseSeparator resolves a separator by name.
func ParseSeparator(name string) (Separator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Chevron, nil
	}
	if sep, ok := separatorsByName[key]; ok {
		return sep, nil
	}
	return Separator{}, fmt.Errorf("%w: %q", ErrUnknownSeparator, name)
}

// SeparatorNames lists the names accepted by ParseSeparator.
func SeparatorNames() []string {
	return []string{Chevron.name, Round.name, AngleLine.name, Slant.name}
}

// Glyph returns the glyph used when building in the given direction.
func (s Separator) Glyph(d Direction) rune {
	if d == Right {
		return s.right
	}
	return s.left
}

// IsZero reports whether the separator is unset.
func (s Separator) IsZero() bool {
	return s.left == 0 && s.right == 0
}

func (s Separator) String() string {
	if s.IsZero() {
		return "unset"
	}
	return s.name
}
