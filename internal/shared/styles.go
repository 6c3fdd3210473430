// Package shared provides the styles of the powerline CLI's own messages.
package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/powerline/internal/terminal"
)

// Standard color definitions.
var (
	Red    = lipgloss.Color("#f38ba8")
	Green  = lipgloss.Color("#a6e3a1")
	Yellow = lipgloss.Color("#f9e2af")
	Blue   = lipgloss.Color("#89dceb")
	Mauve  = lipgloss.Color("#cba6f7")
	Text   = lipgloss.Color("#cdd6f4")
	Subtle = lipgloss.Color("#6c7086")
)

// Styles for common output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	WarningStyle = lipgloss.NewStyle().Foreground(Yellow)
	InfoStyle    = lipgloss.NewStyle().Foreground(Blue)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
)

// PaletteColor converts a prompt color to its lipgloss equivalent.
func PaletteColor(c terminal.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

// Chip renders text in the prompt colors fg on bg.
func Chip(text string, fg, bg terminal.Color) string {
	return lipgloss.NewStyle().
		Foreground(PaletteColor(fg)).
		Background(PaletteColor(bg)).
		Padding(0, 1).
		Render(text)
}

// Swatch renders a small block of c followed by its palette index.
func Swatch(c terminal.Color) string {
	block := lipgloss.NewStyle().Foreground(PaletteColor(c)).Render("███")
	return block + " " + SubtleStyle.Render(c.String())
}
