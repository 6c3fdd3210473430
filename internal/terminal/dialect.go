package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDialect is returned by ParseDialect for unsupported shells.
var ErrUnknownDialect = errors.New("unknown shell dialect")

// Dialect selects how color escapes are wrapped so the target shell does not
// count them toward the prompt's visible width.
type Dialect int

// Supported dialects.
const (
	Bare Dialect = iota
	Bash
	Zsh
	Fish
)

var dialectNames = map[Dialect]string{
	Bare: "bare",
	Bash: "bash",
	Zsh:  "zsh",
	Fish: "fish",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect maps a shell name to its dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "bare", "none", "":
		return Bare, nil
	}
	return Bare, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// Fg returns the escape that sets the foreground color.
func (d Dialect) Fg(c Color) string {
	return d.wrap(fmt.Sprintf("\x1b[38;5;%dm", c))
}

// Bg returns the escape that sets the background color.
func (d Dialect) Bg(c Color) string {
	return d.wrap(fmt.Sprintf("\x1b[48;5;%dm", c))
}

// Reset returns the escape that restores default colors.
func (d Dialect) Reset() string {
	switch d {
	case Bash:
		return `\[\e[0m\]`
	case Zsh:
		return "%{\x1b[39m%}%{\x1b[49m%}"
	default:
		return "\x1b[0m"
	}
}

// Bash decodes PS1 backslash escapes and then expands it like a
// double-quoted string, so every special character needs two levels.
// A lone "\$" would decode to "#" for root.
var bashText = strings.NewReplacer(
	`\`, `\\\\`,
	"$", `\\$`,
	"`", "\\\\`",
)

var zshText = strings.NewReplacer("%", "%%")

// Text escapes literal prompt text so the shell shows it verbatim instead
// of expanding it.
func (d Dialect) Text(s string) string {
	switch d {
	case Bash:
		return bashText.Replace(s)
	case Zsh:
		return zshText.Replace(s)
	default:
		return s
	}
}

func (d Dialect) wrap(code string) string {
	switch d {
	case Bash:
		// Bash expands \e itself; the literal form keeps PS1 readable.
		return `\[\e` + code[1:] + `\]`
	case Zsh:
		return "%{" + code + "%}"
	default:
		return code
	}
}
