package modules

import (
	"fmt"
	"time"

	"github.com/Veraticus/powerline/internal/powerline"
)

const (
	defaultUserSymbol   = "$"
	defaultRootSymbol   = "#"
	defaultDurationIcon = "\U000F1ACC"
)

// succeeded reports whether status is a successful or absent exit code.
func succeeded(status string) bool {
	return status == "" || status == "0"
}

type cmd struct {
	env        *Env
	userSymbol string
	rootSymbol string
	passed     powerline.Style
	failed     powerline.Style
}

func newCmd(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("cmd")
	return &cmd{
		env:        env,
		userSymbol: s.Symbol("user_symbol", defaultUserSymbol),
		rootSymbol: s.Symbol("root_symbol", defaultRootSymbol),
		passed:     powerline.Simple(s.Fg("passed_fg"), s.Bg("passed_bg")),
		failed:     powerline.Simple(s.Fg("failed_fg"), s.Bg("failed_bg")),
	}, nil
}

// Produce shows the prompt symbol after a success and the exit status
// after a failure.
func (m *cmd) Produce(c *powerline.Composer) {
	status := m.env.Runtime.LastStatus
	if !succeeded(status) {
		c.AddShortSegment(status, m.failed)
		return
	}
	symbol := m.userSymbol
	if m.env.isRoot() {
		symbol = m.rootSymbol
	}
	c.AddShortSegment(symbol, m.passed)
}

type exitCode struct {
	env   *Env
	style powerline.Style
}

func newExitCode(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("exit_code")
	return &exitCode{env: env, style: powerline.Simple(s.Fg("fg"), s.Bg("bg"))}, nil
}

// Produce shows a non-zero exit status.
func (m *exitCode) Produce(c *powerline.Composer) {
	if status := m.env.Runtime.LastStatus; !succeeded(status) {
		c.AddSegment(status, m.style)
	}
}

type durationOptions struct {
	MinRunTime time.Duration `mapstructure:"min_run_time"`
}

type lastCmdDuration struct {
	env   *Env
	min   time.Duration
	icon  string
	style powerline.Style
}

func newLastCmdDuration(env *Env, opts map[string]any) (powerline.Module, error) {
	var o durationOptions
	if err := decodeOptions(opts, &o); err != nil {
		return nil, err
	}
	if o.MinRunTime < 0 {
		return nil, fmt.Errorf("%w: negative min_run_time %s", ErrInvalidOptions, o.MinRunTime)
	}
	s := env.scope("last_cmd_duration")
	return &lastCmdDuration{
		env:   env,
		min:   o.MinRunTime,
		icon:  s.Symbol("icon", defaultDurationIcon),
		style: powerline.Simple(s.Fg("fg"), s.Bg("bg")),
	}, nil
}

// Produce shows how long the last command ran once it exceeds the
// minimum run time.
func (m *lastCmdDuration) Produce(c *powerline.Composer) {
	d := m.env.Runtime.LastDuration
	if d == nil || *d <= m.min {
		return
	}
	c.AddShortSegment(" "+niceDuration(*d)+m.icon, m.style)
}

// niceDuration formats d with the coarsest unit that fits.
func niceDuration(d time.Duration) string {
	switch {
	case d > time.Minute:
		secs := int64(d / time.Second)
		return fmt.Sprintf("%dm%ds", secs/60, secs%60)
	case d > time.Second:
		return fmt.Sprintf("%.2fs", float64(d.Milliseconds())/1000)
	case d > time.Millisecond:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%dµs", d.Microseconds())
}
