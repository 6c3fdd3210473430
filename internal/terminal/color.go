// Package terminal holds the color model of the prompt and the shell-dialect
// escape adapter that serializes it.
package terminal

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cast"
)

// ErrInvalidColor is returned when a color value cannot be interpreted.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit terminal palette index.
type Color uint8

// String returns the palette index as decimal text.
func (c Color) String() string {
	return strconv.Itoa(int(c))
}

// Named palette entries.
const (
	Black          Color = 0
	Red            Color = 1
	Green          Color = 2
	Yellow         Color = 3
	Blue           Color = 4
	Purple         Color = 5
	Turquoise      Color = 6
	Grey           Color = 7
	LightRed       Color = 9
	LightGreen     Color = 10
	LightYellow    Color = 11
	LightBlue      Color = 12
	LightPurple    Color = 13
	LightTurquoise Color = 14
	White          Color = 15
	DarkBlue       Color = 19
	DarkGreen      Color = 22
	MidGreen       Color = 28
	TurquoiseBlue  Color = 31
	DarkRed        Color = 52
	NicePurple     Color = 55
	MidRed         Color = 124
	Orange         Color = 130
	DarkYellow     Color = 136
	WarningRed     Color = 160
	BrightOrange   Color = 202
	BurntOrange    Color = 214
	DarkGrey       Color = 234
	MidGrey        Color = 240
	LightGrey      Color = 250
)

var colorNames = map[string]Color{
	"black":           Black,
	"red":             Red,
	"green":           Green,
	"yellow":          Yellow,
	"blue":            Blue,
	"purple":          Purple,
	"turquoise":       Turquoise,
	"grey":            Grey,
	"light_red":       LightRed,
	"light_green":     LightGreen,
	"light_yellow":    LightYellow,
	"light_blue":      LightBlue,
	"light_purple":    LightPurple,
	"light_turquoise": LightTurquoise,
	"white":           White,
	"dark_blue":       DarkBlue,
	"dark_green":      DarkGreen,
	"forest_green":    DarkGreen,
	"mid_green":       MidGreen,
	"turquoise_blue":  TurquoiseBlue,
	"dark_red":        DarkRed,
	"burgundy":        DarkRed,
	"nice_purple":     NicePurple,
	"mid_red":         MidRed,
	"orange":          Orange,
	"dark_yellow":     DarkYellow,
	"warning_red":     WarningRed,
	"bright_orange":   BrightOrange,
	"burnt_orange":    BurntOrange,
	"dark_grey":       DarkGrey,
	"mid_grey":        MidGrey,
	"light_grey":      LightGrey,
}

// ColorNames returns the known color names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor interprets a palette index ("31"), a color name ("dark_grey")
// or a hex triplet ("#5f87af"). Hex values map to the nearest entry of the
// xterm 256-color cube and grey ramp.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		return nearest(hex), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(n), nil
}

// ColorFromValue interprets a decoded config value (number or string).
func ColorFromValue(v any) (Color, error) {
	switch t := v.(type) {
	case string:
		return ParseColor(t)
	case nil:
		return 0, fmt.Errorf("%w: missing value", ErrInvalidColor)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidColor, v)
	}
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %d out of range", ErrInvalidColor, n)
	}
	return Color(n), nil
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// nearest finds the closest palette entry in the 6x6x6 cube (16-231) and
// the grey ramp (232-255). The first 16 entries are skipped because their
// actual RGB values depend on the terminal's theme.
func nearest(target colorful.Color) Color {
	best := Color(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		d := target.DistanceLab(paletteRGB(Color(i)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = Color(i), d
		}
	}
	return best
}

func paletteRGB(c Color) colorful.Color {
	if c >= 232 {
		v := float64(8+10*(int(c)-232)) / 255
		return colorful.Color{R: v, G: v, B: v}
	}
	i := int(c) - 16
	r, g, b := cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
