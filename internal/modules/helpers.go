package modules

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"
)

// ellipsis marks a path shortened by dropping middle directories.
const ellipsis = "..."

// truncateText truncates text to a maximum display width with ellipsis.
func truncateText(text string, maxWidth int) string {
	width := runewidth.StringWidth(text)
	if maxWidth <= 0 || width <= maxWidth {
		return text
	}

	const ellipsisWidth = 1
	return runewidth.Truncate(text, maxWidth-ellipsisWidth, "") + "…"
}

// pathParts splits dir into display parts. A directory under home starts
// with "~". When the remainder is wider than maxLength and deeper than
// wanted, only the first wanted/2 and last wanted-wanted/2 directories are
// kept around an ellipsis part.
func pathParts(dir, home string, maxLength, wanted int) []string {
	var parts []string
	rest := dir
	if home != "" && home != "/" {
		home = strings.TrimSuffix(home, "/")
		if rest == home || strings.HasPrefix(rest, home+"/") {
			parts = append(parts, "~")
			rest = strings.TrimPrefix(rest, home)
		}
	}

	var dirs []string
	for _, p := range strings.Split(rest, "/") {
		if p != "" {
			dirs = append(dirs, truncateText(p, maxLength))
		}
	}

	if runewidth.StringWidth(rest) > maxLength && len(dirs) > wanted {
		left := wanted / 2
		right := wanted - left
		parts = append(parts, dirs[:left]...)
		parts = append(parts, ellipsis)
		return append(parts, dirs[len(dirs)-right:]...)
	}
	return append(parts, dirs...)
}

// readTrimmed returns the trimmed contents of path, or false if it can't
// be read.
func readTrimmed(fs afero.Fs, path string) (string, bool) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// baseName is filepath.Base without the "." for empty input.
func baseName(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
