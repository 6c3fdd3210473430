package modules

import "github.com/Veraticus/powerline/internal/powerline"

// DefaultReadOnlySymbol is the padlock shown for a read-only directory.
const DefaultReadOnlySymbol = "\ue0a2"

type readOnly struct {
	env    *Env
	symbol string
	style  powerline.Style
}

func newReadOnly(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("read_only")
	return &readOnly{
		env:    env,
		symbol: s.Symbol("symbol", DefaultReadOnlySymbol),
		style:  powerline.Simple(s.Fg("fg"), s.Bg("bg")),
	}, nil
}

// Produce adds the symbol when the working directory is not writable.
func (m *readOnly) Produce(c *powerline.Composer) {
	if m.env.Writable == nil {
		return
	}
	dir := m.env.dir(true)
	if dir == "" || m.env.Writable(dir) {
		return
	}
	c.AddSegment(m.symbol, m.style)
}
