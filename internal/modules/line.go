package modules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/config"
	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

// Line is one prompt row of built producers.
type Line struct {
	Left  []powerline.Module
	Right []powerline.Module
}

// BuildLines builds the producers of every configured row.
func BuildLines(r *Registry, env *Env, rows []config.Row) ([]Line, error) {
	lines := make([]Line, 0, len(rows))
	for i, row := range rows {
		left, err := buildSide(r, env, row.Left)
		if err != nil {
			return nil, fmt.Errorf("row %d left: %w", i, err)
		}
		right, err := buildSide(r, env, row.Right)
		if err != nil {
			return nil, fmt.Errorf("row %d right: %w", i, err)
		}
		lines = append(lines, Line{Left: left, Right: right})
	}
	return lines, nil
}

func buildSide(r *Registry, env *Env, segments []config.Segment) ([]powerline.Module, error) {
	mods := make([]powerline.Module, 0, len(segments))
	for _, seg := range segments {
		m, err := r.Build(env, seg)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// Render runs the row's producers into a fresh composer and renders it.
func (l Line) Render(dialect terminal.Dialect, sep powerline.Separator, columns int) string {
	return l.compose(dialect, sep).Render(columns)
}

func (l Line) compose(dialect terminal.Dialect, sep powerline.Separator) *powerline.Composer {
	c := powerline.NewComposer(dialect, sep)
	for _, m := range l.Left {
		m.Produce(c)
	}
	if len(l.Right) > 0 {
		c.StartRight()
		for _, m := range l.Right {
			m.Produce(c)
		}
	}
	return c
}

// RenderLines renders every row for env's runtime.
func RenderLines(lines []Line, env *Env, sep powerline.Separator) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		c := line.compose(env.Runtime.Dialect, sep)
		env.log().Debug("rendered row",
			zap.Int("row", i),
			zap.Int("columns", env.Runtime.Columns),
			zap.Int("left", c.LeftColumns()),
			zap.Int("right", c.RightColumns()))
		out = append(out, c.Render(env.Runtime.Columns))
	}
	return out
}
