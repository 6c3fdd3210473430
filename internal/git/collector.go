package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// DefaultTimeout bounds a single status query. Prompts render on every
// command, so a slow repository loses its git segments rather than
// delaying the shell.
const DefaultTimeout = 75 * time.Millisecond

// ErrNotRepository is returned when no repository root is known.
var ErrNotRepository = errors.New("not a git repository")

// Collector queries working-tree status through git.
type Collector struct {
	Runner  CommandRunner
	Fs      afero.Fs
	Timeout time.Duration
}

// NewCollector creates a collector using the git binary and the OS
// filesystem.
func NewCollector(timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Collector{
		Runner:  &ExecRunner{},
		Fs:      afero.NewOsFs(),
		Timeout: timeout,
	}
}

// Collect returns the status of the repository rooted at root.
func (c *Collector) Collect(ctx context.Context, root string) (Status, error) {
	if root == "" {
		return Status{}, ErrNotRepository
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := c.Runner.OutputContext(ctx, "git",
		"-C", root,
		"--no-optional-locks",
		"status", "--porcelain=v2", "--branch", "-z",
	)
	if err != nil {
		return Status{}, fmt.Errorf("git status in %s: %w", root, err)
	}

	st, err := ParseStatus(out)
	if err != nil {
		return Status{}, fmt.Errorf("git status in %s: %w", root, err)
	}

	if c.Fs != nil {
		st.Operation = Operation(c.Fs, root)
	}
	return st, nil
}
