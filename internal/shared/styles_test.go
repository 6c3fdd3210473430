package shared

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/powerline/internal/terminal"
)

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, "196", string(PaletteColor(196)))
	assert.Equal(t, "0", string(PaletteColor(terminal.Black)))
}

func TestChip(t *testing.T) {
	assert.Equal(t, " main ", ansi.Strip(Chip("main", terminal.White, terminal.Blue)))
}

func TestSwatch(t *testing.T) {
	assert.Equal(t, "███ 124", ansi.Strip(Swatch(terminal.MidRed)))
}
