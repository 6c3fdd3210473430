// Package powerline accumulates styled segments into a left and an optional
// right-aligned buffer, drawing separator glyphs between them and tracking
// the visible width of each side.
package powerline

import (
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/powerline/internal/terminal"
)

// Direction is the side currently receiving segments.
type Direction int

// Directions. A composer moves from Left to Right at most once.
const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

type runState int

const (
	runEmpty runState = iota
	runBuilding
	runClosed
)

// run tracks the adjacency of segments on one side.
type run struct {
	state runState
	last  Style
}

// extend records style as the newest segment of an open run.
func (r *run) extend(style Style) {
	r.state = runBuilding
	r.last = style
}

// close ends an open run, returning the style of its last segment.
func (r *run) close() (Style, bool) {
	if r.state != runBuilding {
		return Style{}, false
	}
	r.state = runClosed
	return r.last, true
}

// previous returns the last style of an open run.
func (r run) previous() (Style, bool) {
	return r.last, r.state == runBuilding
}

type side struct {
	buf     strings.Builder
	columns int
	run     run
	// gap is set by padding; the next segment opens with a leading cap.
	gap bool

	// Last painted colors, cleared by a reset.
	fg, bg       terminal.Color
	fgSet, bgSet bool
}

// Composer builds one prompt line. It is not safe for concurrent use.
type Composer struct {
	dialect   terminal.Dialect
	separator Separator
	direction Direction
	left      side
	right     side
}

// NewComposer returns an empty composer in the Left direction.
func NewComposer(dialect terminal.Dialect, sep Separator) *Composer {
	if sep.IsZero() {
		sep = Chevron
	}
	return &Composer{dialect: dialect, separator: sep}
}

// Direction returns the side currently receiving segments.
func (c *Composer) Direction() Direction { return c.direction }

// LeftColumns returns the visible width of the left buffer so far.
func (c *Composer) LeftColumns() int { return c.left.columns }

// RightColumns returns the visible width of the right buffer so far.
func (c *Composer) RightColumns() int { return c.right.columns }

// Separator returns the ambient separator.
func (c *Composer) Separator() Separator { return c.separator }

// Dialect returns the escape dialect the composer writes.
func (c *Composer) Dialect() terminal.Dialect { return c.dialect }

// SetSeparator changes the ambient separator for later boundaries.
func (c *Composer) SetSeparator(sep Separator) {
	if !sep.IsZero() {
		c.separator = sep
	}
}

// AddSegment appends content with one space of padding on each side.
func (c *Composer) AddSegment(content string, style Style) {
	c.Append(Segment{Content: content, Style: style, Padded: true})
}

// AddShortSegment appends content without padding.
func (c *Composer) AddShortSegment(content string, style Style) {
	c.Append(Segment{Content: content, Style: style})
}

// Append adds seg to the current side.
func (c *Composer) Append(seg Segment) {
	if c.direction == Right {
		c.appendRight(seg)
		return
	}
	c.appendLeft(seg)
}

func (c *Composer) appendLeft(seg Segment) {
	s := &c.left
	sep := seg.Style.separatorOr(c.separator)

	if prev, open := s.run.previous(); open {
		c.paintBg(s, seg.Style.Bg)
		c.paintFg(s, prev.SeparatorFg)
		s.glyph(sep.Glyph(Left))
	} else if s.gap {
		// Leading cap drawn on the default background.
		c.paintFg(s, seg.Style.Bg)
		s.glyph(sep.Glyph(Right))
	}

	c.writeBody(s, seg)
}

func (c *Composer) appendRight(seg Segment) {
	s := &c.right
	sep := seg.Style.separatorOr(c.separator)

	if prev, open := s.run.previous(); open {
		c.paintBg(s, prev.Bg)
	} else if s.bgSet {
		c.reset(s)
	}
	c.paintFg(s, seg.Style.SeparatorFg)
	s.glyph(sep.Glyph(Right))

	c.writeBody(s, seg)
}

func (c *Composer) writeBody(s *side, seg Segment) {
	c.paintBg(s, seg.Style.Bg)
	c.paintFg(s, seg.Style.Fg)
	content := seg.Content
	if seg.Padded {
		content = " " + content + " "
	}
	s.buf.WriteString(c.dialect.Text(content))
	s.columns += utf8.RuneCountInString(content)
	s.gap = false
	s.run.extend(seg.Style)
}

// StartRight closes the left side and directs later segments to the right
// buffer. It panics when called twice.
func (c *Composer) StartRight() {
	if c.direction == Right {
		panic("powerline: StartRight called twice")
	}
	c.closeRun(&c.left)
	c.direction = Right
}

// AddPadding closes the open run on the current side and writes n spaces.
// The next segment on that side starts a new run with a leading cap.
func (c *Composer) AddPadding(n int) {
	s := c.current()
	c.closeRun(s)
	if n > 0 {
		s.text(strings.Repeat(" ", n))
	}
	s.gap = true
}

func (c *Composer) current() *side {
	if c.direction == Right {
		return &c.right
	}
	return &c.left
}

// closeRun writes the trailing separator of an open run.
func (c *Composer) closeRun(s *side) {
	last, ok := s.run.close()
	if !ok {
		return
	}
	s.buf.WriteString(c.closing(last))
	s.columns++
	s.fgSet, s.bgSet = false, false
}

// closing is the trailing separator for a run ending in last: the glyph on
// the default background, followed by a reset.
func (c *Composer) closing(last Style) string {
	return c.dialect.Reset() +
		c.dialect.Fg(last.SeparatorFg) +
		string(c.separator.Glyph(Left)) +
		c.dialect.Reset()
}

// Render returns the finished line without modifying the composer. With no
// right side the columns argument is ignored; otherwise the gap between the
// sides is sized so the right side ends one column before the edge.
func (c *Composer) Render(columns int) string {
	var out strings.Builder

	left, leftColumns := c.finalLeft()
	out.WriteString(left)

	if c.direction == Left {
		return out.String()
	}

	padding := columns - leftColumns - c.right.columns - 1
	if padding > 0 {
		out.WriteString(strings.Repeat(" ", padding))
	}
	out.WriteString(c.right.buf.String())
	out.WriteString(c.dialect.Reset())
	return out.String()
}

func (c *Composer) finalLeft() (string, int) {
	s := c.left.buf.String()
	if last, open := c.left.run.previous(); open {
		return s + c.closing(last), c.left.columns + 1
	}
	return s, c.left.columns
}

func (c *Composer) paintFg(s *side, color terminal.Color) {
	if s.fgSet && s.fg == color {
		return
	}
	s.buf.WriteString(c.dialect.Fg(color))
	s.fg, s.fgSet = color, true
}

func (c *Composer) paintBg(s *side, color terminal.Color) {
	if s.bgSet && s.bg == color {
		return
	}
	s.buf.WriteString(c.dialect.Bg(color))
	s.bg, s.bgSet = color, true
}

func (c *Composer) reset(s *side) {
	s.buf.WriteString(c.dialect.Reset())
	s.fgSet, s.bgSet = false, false
}

func (s *side) glyph(r rune) {
	s.buf.WriteRune(r)
	s.columns++
}

func (s *side) text(t string) {
	s.buf.WriteString(t)
	s.columns += utf8.RuneCountInString(t)
}
