// Package modules provides the segment producers a prompt row is built from
// and the registry that maps config tags to them.
package modules

import (
	"context"
	"os"
	"os/user"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/git"
	"github.com/Veraticus/powerline/internal/terminal"
	"github.com/Veraticus/powerline/internal/theme"
)

// DefaultProbeTimeout bounds helper commands such as the python version
// lookup.
const DefaultProbeTimeout = 150 * time.Millisecond

// Runtime is the per-invocation metadata passed in by the shell.
type Runtime struct {
	Columns      int
	LastStatus   string
	LastDuration *time.Duration
	Dialect      terminal.Dialect
	ShellName    string
}

// EnvReader reads environment variables.
type EnvReader interface {
	Get(key string) string
}

// DefaultEnvReader implements EnvReader using os.Getenv.
type DefaultEnvReader struct{}

// Get retrieves an environment variable.
func (e *DefaultEnvReader) Get(key string) string {
	return os.Getenv(key)
}

// CommandRunner executes external commands. It is the runner git uses, so
// one fake serves both in tests.
type CommandRunner = git.CommandRunner

// StatusCollector summarizes a git working tree.
type StatusCollector interface {
	Collect(ctx context.Context, root string) (git.Status, error)
}

// Env holds everything producers read from the outside world.
type Env struct {
	Theme   theme.Theme
	Runtime Runtime
	Fs      afero.Fs
	Vars    EnvReader
	Runner  CommandRunner
	Git     StatusCollector
	Logger  *zap.Logger
	Context context.Context

	// Cwd is the logical working directory; empty means $PWD.
	Cwd          string
	ProbeTimeout time.Duration

	Hostname    func() (string, error)
	CurrentUser func() (*user.User, error)
	Writable    func(path string) bool
	Getwd       func() (string, error)
	Now         func() time.Time
}

// NewEnv creates production dependencies.
func NewEnv(th theme.Theme, rt Runtime, gitTimeout time.Duration, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Env{
		Theme:        th,
		Runtime:      rt,
		Fs:           afero.NewOsFs(),
		Vars:         &DefaultEnvReader{},
		Runner:       &git.ExecRunner{},
		Git:          git.NewCollector(gitTimeout),
		Logger:       logger,
		Context:      context.Background(),
		ProbeTimeout: DefaultProbeTimeout,
		Hostname:     os.Hostname,
		CurrentUser:  user.Current,
		Writable:     writable,
		Getwd:        os.Getwd,
		Now:          time.Now,
	}
}

func (e *Env) ctx() context.Context {
	if e.Context == nil {
		return context.Background()
	}
	return e.Context
}

func (e *Env) log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Env) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func (e *Env) getenv(key string) string {
	if e.Vars == nil {
		return ""
	}
	return e.Vars.Get(key)
}

func (e *Env) scope(module string) theme.Scope {
	return theme.For(e.Theme, module)
}

// dir returns the logical working directory, or the physical one when
// physical is set or nothing else is known.
func (e *Env) dir(physical bool) string {
	if !physical {
		if e.Cwd != "" {
			return e.Cwd
		}
		if pwd := e.getenv("PWD"); pwd != "" {
			return pwd
		}
	}
	if e.Getwd != nil {
		if wd, err := e.Getwd(); err == nil {
			return wd
		}
	}
	return e.Cwd
}

func (e *Env) exists(path string) bool {
	ok, err := afero.Exists(e.fs(), path)
	return err == nil && ok
}

// isRemoteShell reports whether the session came in over SSH.
func (e *Env) isRemoteShell() bool {
	for _, key := range []string{"SSH_CLIENT", "SSH_TTY", "SSH_CONNECTION"} {
		if e.getenv(key) != "" {
			return true
		}
	}
	return false
}

func (e *Env) isRoot() bool {
	if e.CurrentUser == nil {
		return false
	}
	u, err := e.CurrentUser()
	return err == nil && u.Uid == "0"
}
