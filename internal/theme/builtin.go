package theme

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the named theme shipped with the binary.
func Builtin(name string) (*Table, error) {
	data, err := Source(name)
	if err != nil {
		return nil, err
	}
	return Parse(strings.ToLower(strings.TrimSpace(name)), data)
}

// Names lists the builtin themes in sorted order.
func Names() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw document of a builtin theme, for users who want a
// starting point for their own file.
func Source(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || strings.ContainsAny(key, "/\\.") {
		return nil, unknownTheme(name)
	}
	data, err := builtinFS.ReadFile(path.Join("builtin", key+".yaml"))
	if err != nil {
		return nil, unknownTheme(name)
	}
	return data, nil
}

func unknownTheme(name string) error {
	return fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}
