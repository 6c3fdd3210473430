package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when no probe can determine the terminal width.
const DefaultWidth = 80

// WidthDetector finds the terminal width when the shell did not pass one.
type WidthDetector struct {
	// Getenv reads environment variables; nil means os.Getenv.
	Getenv func(string) string
	// Files are probed in order with term.GetSize.
	Files []*os.File
	// TTYPath is opened as a last resort; empty disables the probe.
	TTYPath string
}

// NewWidthDetector probes stderr, stdout and stdin, then /dev/tty.
func NewWidthDetector() *WidthDetector {
	return &WidthDetector{
		Getenv:  os.Getenv,
		Files:   []*os.File{os.Stderr, os.Stdout, os.Stdin},
		TTYPath: "/dev/tty",
	}
}

// Width returns the detected terminal width in columns.
func (w *WidthDetector) Width() int {
	getenv := w.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	// Explicit override, then the variable most shells export.
	for _, key := range []string{"POWERLINE_COLUMNS", "COLUMNS"} {
		if width, ok := positive(getenv(key)); ok {
			return width
		}
	}

	for _, f := range w.Files {
		if width := fileWidth(f); width > 0 {
			return width
		}
	}

	for _, path := range []string{w.TTYPath, sshTTY(getenv, w.TTYPath)} {
		if path == "" {
			continue
		}
		if tty, err := os.Open(path); err == nil {
			width := fileWidth(tty)
			_ = tty.Close()
			if width > 0 {
				return width
			}
		}
	}

	return DefaultWidth
}

func sshTTY(getenv func(string) string, ttyPath string) string {
	if ttyPath == "" {
		return ""
	}
	return getenv("SSH_TTY")
}

func fileWidth(f *os.File) int {
	if f == nil {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func positive(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
