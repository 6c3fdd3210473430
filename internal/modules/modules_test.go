package modules

import (
	"context"
	"os/user"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Veraticus/powerline/internal/config"
	"github.com/Veraticus/powerline/internal/git"
	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
	"github.com/Veraticus/powerline/internal/theme"
)

// Glyphs of the chevron separator as they appear in rendered output.
const (
	chevron     = "\ue0b0"
	chevronBack = "\ue0b2"
)

// mockEnvReader implements EnvReader for testing.
type mockEnvReader map[string]string

func (m mockEnvReader) Get(key string) string {
	return m[key]
}

// mockCommandRunner implements CommandRunner for testing.
type mockCommandRunner struct {
	responses map[string][]byte
	err       error
	calls     []string
}

func (m *mockCommandRunner) OutputContext(_ context.Context, name string, args ...string) ([]byte, error) {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	if m.err != nil {
		return nil, m.err
	}
	return m.responses[key], nil
}

// mockCollector implements StatusCollector for testing.
type mockCollector struct {
	status git.Status
	err    error
	roots  []string
}

func (m *mockCollector) Collect(_ context.Context, root string) (git.Status, error) {
	m.roots = append(m.roots, root)
	return m.status, m.err
}

type testEnv struct {
	*Env
	fs        afero.Fs
	vars      mockEnvReader
	runner    *mockCommandRunner
	collector *mockCollector
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	vars := mockEnvReader{"HOME": "/home/dev"}
	runner := &mockCommandRunner{responses: make(map[string][]byte)}
	collector := &mockCollector{}

	env := &Env{
		Fs:      fs,
		Vars:    vars,
		Runner:  runner,
		Git:     collector,
		Logger:  zaptest.NewLogger(t),
		Context: context.Background(),
		Hostname: func() (string, error) {
			return "devbox", nil
		},
		CurrentUser: func() (*user.User, error) {
			return &user.User{Uid: "1000", Username: "dev"}, nil
		},
		Writable: func(string) bool { return true },
		Now: func() time.Time {
			return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
		},
		Runtime: Runtime{Dialect: terminal.Bare},
	}
	te := &testEnv{Env: env, fs: fs, vars: vars, runner: runner, collector: collector}
	te.chdir("/home/dev")
	return te
}

// chdir sets both the logical and the physical working directory.
func (e *testEnv) chdir(dir string) {
	e.Cwd = dir
	e.Getwd = func() (string, error) { return dir, nil }
}

func (e *testEnv) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.fs, path, []byte(content), 0o644))
}

func (e *testEnv) useTheme(t *testing.T, name string) {
	t.Helper()
	th, err := theme.Builtin(name)
	require.NoError(t, err)
	e.Theme = th
}

func build(t *testing.T, env *Env, tag string, opts map[string]any) powerline.Module {
	t.Helper()
	m, err := NewRegistry().Build(env, config.Segment{Type: tag, Options: opts})
	require.NoError(t, err)
	return m
}

// render produces m into a left-only bare composer.
func render(m powerline.Module, sep powerline.Separator) string {
	c := powerline.NewComposer(terminal.Bare, sep)
	m.Produce(c)
	return c.Render(0)
}

// visible is the rendered text without escapes.
func visible(m powerline.Module) string {
	return ansi.Strip(render(m, powerline.Chevron))
}

func bg(c terminal.Color) string {
	return terminal.Bare.Bg(c)
}
