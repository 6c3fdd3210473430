package modules

import (
	"github.com/ncruces/go-strftime"
	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/powerline"
)

// DefaultTimeFormat is the strftime layout of the time segment.
const DefaultTimeFormat = "%H:%M:%S"

type localityOptions struct {
	ShowOnLocal bool `mapstructure:"show_on_local"`
	MaxWidth    int  `mapstructure:"max_width"`
}

func decodeLocality(opts map[string]any) (localityOptions, error) {
	o := localityOptions{ShowOnLocal: true}
	err := decodeOptions(opts, &o)
	return o, err
}

type host struct {
	env   *Env
	opts  localityOptions
	style powerline.Style
}

func newHost(env *Env, opts map[string]any) (powerline.Module, error) {
	o, err := decodeLocality(opts)
	if err != nil {
		return nil, err
	}
	s := env.scope("host")
	return &host{env: env, opts: o, style: powerline.Simple(s.Fg("fg"), s.Bg("bg"))}, nil
}

// Produce shows the hostname, only over SSH unless show_on_local is set.
func (m *host) Produce(c *powerline.Composer) {
	if !m.opts.ShowOnLocal && !m.env.isRemoteShell() {
		return
	}
	if m.env.Hostname == nil {
		return
	}
	name, err := m.env.Hostname()
	if err != nil || name == "" {
		m.env.log().Debug("hostname unavailable", zap.Error(err))
		return
	}
	c.AddSegment(truncateText(name, m.opts.MaxWidth), m.style)
}

type userModule struct {
	env   *Env
	opts  localityOptions
	style powerline.Style
	root  powerline.Style
}

func newUser(env *Env, opts map[string]any) (powerline.Module, error) {
	o, err := decodeLocality(opts)
	if err != nil {
		return nil, err
	}
	s := env.scope("user")
	return &userModule{
		env:   env,
		opts:  o,
		style: powerline.Simple(s.Fg("fg"), s.Bg("bg")),
		root:  powerline.Simple(s.Fg("fg"), s.Color("root_bg", s.Bg("bg"))),
	}, nil
}

// Produce shows the user name, on the root background for uid 0.
func (m *userModule) Produce(c *powerline.Composer) {
	if !m.opts.ShowOnLocal && !m.env.isRemoteShell() {
		return
	}
	if m.env.CurrentUser == nil {
		return
	}
	u, err := m.env.CurrentUser()
	if err != nil {
		m.env.log().Debug("user lookup failed", zap.Error(err))
		return
	}
	style := m.style
	if u.Uid == "0" {
		style = m.root
	}
	c.AddSegment(truncateText(u.Username, m.opts.MaxWidth), style)
}

type shellName struct {
	env   *Env
	style powerline.Style
}

func newShellName(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("shell_name")
	return &shellName{env: env, style: powerline.Simple(s.Fg("fg"), s.Bg("bg"))}, nil
}

// Produce shows the shell the prompt renders for, or the basename of
// $SHELL when none was given.
func (m *shellName) Produce(c *powerline.Composer) {
	name := m.env.Runtime.ShellName
	if name == "" {
		name = baseName(m.env.getenv("SHELL"))
	}
	if name != "" {
		c.AddShortSegment(name, m.style)
	}
}

type timeOptions struct {
	Format string `mapstructure:"format"`
}

type clock struct {
	env    *Env
	format string
	style  powerline.Style
}

func newTime(env *Env, opts map[string]any) (powerline.Module, error) {
	o := timeOptions{Format: DefaultTimeFormat}
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	s := env.scope("time")
	return &clock{env: env, format: o.Format, style: powerline.Simple(s.Fg("fg"), s.Bg("bg"))}, nil
}

// Produce shows the current local time.
func (m *clock) Produce(c *powerline.Composer) {
	if m.env.Now == nil {
		return
	}
	c.AddSegment(strftime.Format(m.format, m.env.Now()), m.style)
}
