package modules

import (
	"fmt"

	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

// Default path shortening limits.
const (
	DefaultMaxLength    = 50
	DefaultWantedSegNum = 4
)

// rainbowCycle is the short_cwd palette when the theme has none.
var rainbowCycle = []terminal.Color{
	terminal.Red,
	terminal.Orange,
	terminal.Yellow,
	terminal.Green,
	terminal.Blue,
	terminal.NicePurple,
}

type cwdOptions struct {
	MaxLength       int  `mapstructure:"max_length"`
	WantedSegNum    int  `mapstructure:"wanted_seg_num"`
	ResolveSymlinks bool `mapstructure:"resolve_symlinks"`
}

func decodeCwdOptions(opts map[string]any) (cwdOptions, error) {
	o := cwdOptions{MaxLength: DefaultMaxLength, WantedSegNum: DefaultWantedSegNum}
	if err := decodeOptions(opts, &o); err != nil {
		return o, err
	}
	if o.MaxLength < 1 || o.WantedSegNum < 1 {
		return o, fmt.Errorf("%w: max_length and wanted_seg_num must be positive", ErrInvalidOptions)
	}
	return o, nil
}

type cwd struct {
	env    *Env
	opts   cwdOptions
	fg     terminal.Color
	rootBg terminal.Color
	bgs    []terminal.Color
	// pinned draws every boundary with a chevron regardless of the ambient
	// separator.
	pinned bool
}

func newCwd(env *Env, opts map[string]any) (powerline.Module, error) {
	o, err := decodeCwdOptions(opts)
	if err != nil {
		return nil, err
	}
	s := env.scope("cwd")
	return &cwd{
		env:    env,
		opts:   o,
		fg:     s.Fg("path_fg"),
		rootBg: s.Bg("path_bg"),
		bgs:    s.Palette("bg_colors", s.Bg("path_bg")),
	}, nil
}

func newShortCwd(env *Env, opts map[string]any) (powerline.Module, error) {
	o, err := decodeCwdOptions(opts)
	if err != nil {
		return nil, err
	}
	s := env.scope("short_cwd")
	return &cwd{
		env:    env,
		opts:   o,
		fg:     s.Color("path_fg", terminal.White),
		rootBg: s.Bg("path_bg"),
		bgs:    s.Palette("bg_colors", rainbowCycle...),
		pinned: true,
	}, nil
}

// Produce adds one unpadded segment per displayed directory, cycling the
// background through the palette.
func (m *cwd) Produce(c *powerline.Composer) {
	dir := m.env.dir(m.opts.ResolveSymlinks)
	if dir == "" {
		return
	}
	if dir == "/" {
		c.AddSegment("/", powerline.Simple(m.fg, m.rootBg))
		return
	}

	parts := pathParts(dir, m.env.getenv("HOME"), m.opts.MaxLength, m.opts.WantedSegNum)
	for i, part := range parts {
		bg := m.bgs[i%len(m.bgs)]
		style := powerline.Simple(m.fg, bg)
		if m.pinned {
			style = powerline.Custom(m.fg, bg, powerline.Chevron)
		}
		c.AddShortSegment(" "+part, style)
	}
}
