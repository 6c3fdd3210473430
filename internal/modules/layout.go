package modules

import (
	"fmt"

	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

type spacer struct {
	style powerline.Style
	large bool
}

func newSpacer(large bool) Factory {
	return func(env *Env, opts map[string]any) (powerline.Module, error) {
		if err := noOptions(opts); err != nil {
			return nil, err
		}
		bg := env.scope("spacer").Color("bg", terminal.Black)
		return &spacer{
			style: powerline.Custom(terminal.LightGrey, bg, powerline.Chevron),
			large: large,
		}, nil
	}
}

// Produce adds an empty segment; a large spacer keeps its padding.
func (s *spacer) Produce(c *powerline.Composer) {
	if s.large {
		c.AddSegment("", s.style)
		return
	}
	c.AddShortSegment("", s.style)
}

type separatorOptions struct {
	Style string `mapstructure:"style"`
}

func newSeparator(_ *Env, opts map[string]any) (powerline.Module, error) {
	var o separatorOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	sep, err := powerline.ParseSeparator(o.Style)
	if err != nil {
		return nil, err
	}
	return powerline.ModuleFunc(func(c *powerline.Composer) {
		c.SetSeparator(sep)
	}), nil
}

type paddingOptions struct {
	Width int `mapstructure:"width"`
}

func newPadding(_ *Env, opts map[string]any) (powerline.Module, error) {
	var o paddingOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if o.Width < 0 {
		return nil, fmt.Errorf("%w: padding width %d", ErrInvalidOptions, o.Width)
	}
	return powerline.ModuleFunc(func(c *powerline.Composer) {
		c.AddPadding(o.Width)
	}), nil
}
