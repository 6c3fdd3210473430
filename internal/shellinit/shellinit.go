// Package shellinit renders the scripts that hook the prompt into a shell.
package shellinit

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

//go:embed scripts/*.tmpl
var scripts embed.FS

// ErrUnsupportedShell is returned for shells without an init script.
var ErrUnsupportedShell = errors.New("unsupported shell")

// DefaultBinary is used when the executable path is unknown.
const DefaultBinary = "powerline"

var quoters = map[string]func(string) string{
	"bash": quotePOSIX,
	"zsh":  quotePOSIX,
	"fish": quoteFish,
}

// Shells returns the shells with an init script.
func Shells() []string {
	shells := make([]string, 0, len(quoters))
	for name := range quoters {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// Script returns the init script for shell invoking binary.
func Script(shell, binary string) (string, error) {
	quote, ok := quoters[shell]
	if !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)",
			ErrUnsupportedShell, shell, strings.Join(Shells(), ", "))
	}
	if binary == "" {
		binary = DefaultBinary
	}

	tmpl, err := template.ParseFS(scripts, "scripts/"+shell+".tmpl")
	if err != nil {
		return "", fmt.Errorf("parse %s script: %w", shell, err)
	}

	var buf bytes.Buffer
	data := struct{ Binary string }{Binary: quote(binary)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s script: %w", shell, err)
	}
	return buf.String(), nil
}

// quotePOSIX single-quotes s unless it is made only of safe characters.
func quotePOSIX(s string) string {
	if isBare(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	if isBare(s) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, "'", `\'`)
	return "'" + r.Replace(s) + "'"
}

func isBare(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("/._-+", r):
		default:
			return false
		}
	}
	return s != ""
}
