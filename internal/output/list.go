// Package output formats the CLI's listings.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/powerline/internal/shared"
)

// ListRenderer provides list formatting.
type ListRenderer struct {
	titleStyle  lipgloss.Style
	itemStyle   lipgloss.Style
	bulletStyle lipgloss.Style
	bullet      string
	indent      string
}

// NewListRenderer creates a new list renderer with default styling.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(shared.Mauve),
		itemStyle:   lipgloss.NewStyle().Foreground(shared.Text),
		bulletStyle: lipgloss.NewStyle().Foreground(shared.Blue),
		bullet:      "•",
		indent:      "  ",
	}
}

// Section is a titled group of pre-rendered lines.
type Section struct {
	Name  string
	Lines []string
}

// Render formats a title and list of items.
func (l *ListRenderer) Render(title string, items []string) string {
	var sb strings.Builder
	l.writeTitle(&sb, title)

	for _, item := range items {
		sb.WriteString(l.indent)
		sb.WriteString(l.bulletStyle.Render(l.bullet))
		sb.WriteString(" ")
		sb.WriteString(l.itemStyle.Render(item))
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderMap formats a title and key-value pairs sorted by key.
func (l *ListRenderer) RenderMap(title string, items map[string]string) string {
	var sb strings.Builder
	l.writeTitle(&sb, title)

	keys := make([]string, 0, len(items))
	maxKeyLen := 0
	for key := range items {
		keys = append(keys, key)
		maxKeyLen = max(maxKeyLen, len(key))
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(l.indent)
		sb.WriteString(l.bulletStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, key)))
		sb.WriteString(": ")
		sb.WriteString(l.itemStyle.Render(items[key]))
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderSections formats sections in order, each line indented under its
// section name.
func (l *ListRenderer) RenderSections(title string, sections []Section) string {
	var sb strings.Builder
	l.writeTitle(&sb, title)

	for _, section := range sections {
		sb.WriteString(l.indent)
		sb.WriteString(l.bulletStyle.Render(section.Name))
		sb.WriteString(":\n")

		for _, line := range section.Lines {
			sb.WriteString(l.indent)
			sb.WriteString(l.indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (l *ListRenderer) writeTitle(sb *strings.Builder, title string) {
	if title != "" {
		sb.WriteString(l.titleStyle.Render(title))
		sb.WriteString("\n")
	}
}
