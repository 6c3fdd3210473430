package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/powerline/internal/terminal"
)

// ErrInvalidTheme is returned when a theme document cannot be decoded.
var ErrInvalidTheme = errors.New("invalid theme")

// Table is a theme decoded from a YAML or JSON document of the form
//
//	defaults: {fg: light_grey, bg: black}
//	modules:
//	  git: {clean_bg: 148, staged_symbol: "+"}
//	  cwd: {bg_colors: [red, orange]}
//
// Properties ending in "symbol" or "icon" hold strings; all others hold a
// color or a list of colors.
type Table struct {
	name    string
	fg, bg  *terminal.Color
	colors  map[string]map[string][]terminal.Color
	symbols map[string]map[string]string
}

type tableFile struct {
	Defaults struct {
		Fg any `yaml:"fg"`
		Bg any `yaml:"bg"`
	} `yaml:"defaults"`
	Modules map[string]map[string]any `yaml:"modules"`
}

// Parse decodes a theme document.
func Parse(name string, data []byte) (*Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidTheme, name, err)
	}

	t := &Table{
		name:    name,
		colors:  make(map[string]map[string][]terminal.Color),
		symbols: make(map[string]map[string]string),
	}

	var err error
	if t.fg, err = optionalColor(doc.Defaults.Fg); err != nil {
		return nil, fmt.Errorf("%w %s: defaults.fg: %w", ErrInvalidTheme, name, err)
	}
	if t.bg, err = optionalColor(doc.Defaults.Bg); err != nil {
		return nil, fmt.Errorf("%w %s: defaults.bg: %w", ErrInvalidTheme, name, err)
	}

	for module, props := range doc.Modules {
		module = strings.ToLower(module)
		for prop, raw := range props {
			prop = strings.ToLower(prop)
			if isSymbolProperty(prop) {
				s, err := cast.ToStringE(raw)
				if err != nil {
					return nil, fmt.Errorf("%w %s: %s.%s: %w", ErrInvalidTheme, name, module, prop, err)
				}
				if t.symbols[module] == nil {
					t.symbols[module] = make(map[string]string)
				}
				t.symbols[module][prop] = s
				continue
			}

			palette, err := decodePalette(raw)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %s.%s: %w", ErrInvalidTheme, name, module, prop, err)
			}
			if t.colors[module] == nil {
				t.colors[module] = make(map[string][]terminal.Color)
			}
			t.colors[module][prop] = palette
		}
	}
	return t, nil
}

// LoadFile reads and decodes a theme document from fs.
func LoadFile(fs afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	return Parse(path, data)
}

// Name returns the theme's name or source path.
func (t *Table) Name() string { return t.name }

// Color implements Theme. A palette property yields its first color.
func (t *Table) Color(module, property string) (terminal.Color, bool) {
	p, ok := t.Palette(module, property)
	if !ok || len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// Palette implements Theme.
func (t *Table) Palette(module, property string) ([]terminal.Color, bool) {
	p, ok := t.colors[module][property]
	return p, ok
}

// Symbol implements Theme.
func (t *Table) Symbol(module, property string) (string, bool) {
	s, ok := t.symbols[module][property]
	return s, ok
}

// Defaults implements Theme.
func (t *Table) Defaults() (terminal.Color, terminal.Color) {
	fg, bg := FallbackFg, FallbackBg
	if t.fg != nil {
		fg = *t.fg
	}
	if t.bg != nil {
		bg = *t.bg
	}
	return fg, bg
}

func (t *Table) defaultFg() (terminal.Color, bool) {
	if t.fg == nil {
		return 0, false
	}
	return *t.fg, true
}

func (t *Table) defaultBg() (terminal.Color, bool) {
	if t.bg == nil {
		return 0, false
	}
	return *t.bg, true
}

// Modules lists the modules the table has entries for.
func (t *Table) Modules() []string {
	seen := make(map[string]struct{})
	for m := range t.colors {
		seen[m] = struct{}{}
	}
	for m := range t.symbols {
		seen[m] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Properties lists a module's color properties.
func (t *Table) Properties(module string) []string {
	out := make([]string, 0, len(t.colors[module]))
	for p := range t.colors[module] {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// SymbolProperties lists a module's symbol and icon properties.
func (t *Table) SymbolProperties(module string) []string {
	out := make([]string, 0, len(t.symbols[module]))
	for p := range t.symbols[module] {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func isSymbolProperty(prop string) bool {
	return strings.HasSuffix(prop, "symbol") || strings.HasSuffix(prop, "icon")
}

func optionalColor(raw any) (*terminal.Color, error) {
	if raw == nil {
		return nil, nil
	}
	c, err := terminal.ColorFromValue(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func decodePalette(raw any) ([]terminal.Color, error) {
	list, ok := raw.([]any)
	if !ok {
		c, err := terminal.ColorFromValue(raw)
		if err != nil {
			return nil, err
		}
		return []terminal.Color{c}, nil
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty color list", terminal.ErrInvalidColor)
	}
	out := make([]terminal.Color, 0, len(list))
	for i, item := range list {
		c, err := terminal.ColorFromValue(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
