package modules

import (
	"errors"
	"os/user"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/powerline/internal/git"
	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

func TestSpacers(t *testing.T) {
	env := newTestEnv(t).Env
	assert.Equal(t, "  "+chevron, visible(build(t, env, "large_spacer", nil)))
	assert.Equal(t, chevron, visible(build(t, env, "small_spacer", nil)))

	// The spacer pins the chevron whatever the ambient separator is.
	c := powerline.NewComposer(terminal.Bare, powerline.Round)
	c.AddSegment("a", powerline.Simple(terminal.White, terminal.Blue))
	build(t, env, "small_spacer", nil).Produce(c)
	assert.Equal(t, " a "+chevron+round, ansi.Strip(c.Render(0)))
}

func TestPathParts(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		home      string
		maxLength int
		wanted    int
		want      []string
	}{
		{name: "home", dir: "/home/dev", home: "/home/dev", maxLength: 50, wanted: 4, want: []string{"~"}},
		{name: "under home", dir: "/home/dev/src/app", home: "/home/dev", maxLength: 50, wanted: 4, want: []string{"~", "src", "app"}},
		{name: "home with trailing slash", dir: "/home/dev/src", home: "/home/dev/", maxLength: 50, wanted: 4, want: []string{"~", "src"}},
		{name: "sibling of home", dir: "/home/devx/a", home: "/home/dev", maxLength: 50, wanted: 4, want: []string{"home", "devx", "a"}},
		{name: "outside home", dir: "/usr/local/lib", home: "/home/dev", maxLength: 50, wanted: 4, want: []string{"usr", "local", "lib"}},
		{name: "no home", dir: "/usr/lib", maxLength: 50, wanted: 4, want: []string{"usr", "lib"}},
		{
			name:      "long and deep",
			dir:       "/home/dev/alpha/bravo/charlie/delta/echo/foxtrot",
			home:      "/home/dev",
			maxLength: 20,
			wanted:    4,
			want:      []string{"~", "alpha", "bravo", ellipsis, "echo", "foxtrot"},
		},
		{
			name:      "odd wanted keeps more on the right",
			dir:       "/a1/b2/c3/d4/e5/f6",
			maxLength: 5,
			wanted:    3,
			want:      []string{"a1", ellipsis, "d4", "e5", "f6"},
		},
		{name: "long but shallow", dir: "/a/b/c", maxLength: 1, wanted: 4, want: []string{"a", "b", "c"}},
		{name: "deep but short", dir: "/a/b/c/d/e/f", maxLength: 50, wanted: 2, want: []string{"a", "b", "c", "d", "e", "f"}},
		{name: "wide directory", dir: "/abcdefgh", maxLength: 5, wanted: 4, want: []string{"abcd…"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pathParts(tt.dir, tt.home, tt.maxLength, tt.wanted)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pathParts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCwd(t *testing.T) {
	env := newTestEnv(t)
	env.chdir("/home/dev/src/app")
	m := build(t, env.Env, "cwd", nil)
	assert.Equal(t, " ~"+chevron+" src"+chevron+" app"+chevron, visible(m))

	env.chdir("/")
	assert.Equal(t, " / "+chevron, visible(m))
}

func TestCwdCyclesPalette(t *testing.T) {
	env := newTestEnv(t)
	env.useTheme(t, "rainbow")
	env.chdir("/home/dev/a/b/c/d/e/f")

	out := render(build(t, env.Env, "cwd", map[string]any{"wanted_seg_num": 8}), powerline.Chevron)

	// ~ a b c d e f: seven parts over a six color palette.
	assert.Equal(t, 2, strings.Count(out, bg(terminal.Red)))
	assert.Equal(t, 1, strings.Count(out, bg(terminal.NicePurple)))
	assert.Contains(t, out, terminal.Bare.Fg(terminal.White)+" ~")
}

func TestCwdResolveSymlinks(t *testing.T) {
	env := newTestEnv(t)
	env.Cwd = "/home/dev/link"
	env.Getwd = func() (string, error) { return "/home/dev/real", nil }

	logical := build(t, env.Env, "cwd", nil)
	physical := build(t, env.Env, "cwd", map[string]any{"resolve_symlinks": true})

	assert.Equal(t, " ~"+chevron+" link"+chevron, visible(logical))
	assert.Equal(t, " ~"+chevron+" real"+chevron, visible(physical))
}

func TestCwdFallsBackToPWD(t *testing.T) {
	env := newTestEnv(t)
	env.Cwd = ""
	env.vars["PWD"] = "/home/dev/from-env"
	assert.Equal(t, " ~"+chevron+" from-env"+chevron, visible(build(t, env.Env, "cwd", nil)))
}

func TestShortCwd(t *testing.T) {
	env := newTestEnv(t)
	env.chdir("/home/dev/a")
	m := build(t, env.Env, "short_cwd", nil)

	// Inner boundaries stay chevrons under a round ambient separator; the
	// closing glyph follows the ambient one.
	out := render(m, powerline.Round)
	assert.Equal(t, " ~"+chevron+" a"+round, ansi.Strip(out))
	assert.Contains(t, out, bg(terminal.Red))
	assert.Contains(t, out, bg(terminal.Orange))

	env.chdir("/")
	assert.Equal(t, " / "+chevron, visible(m))
}

func TestReadOnly(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "read_only", nil)
	assert.Empty(t, visible(m))

	var checked string
	env.Writable = func(path string) bool {
		checked = path
		return false
	}
	assert.Equal(t, " \ue0a2 "+chevron, visible(m))
	assert.Equal(t, "/home/dev", checked)

	env.useTheme(t, "rainbow")
	m = build(t, env.Env, "read_only", nil)
	assert.Equal(t, " \U000F0221 "+chevron, visible(m))
}

func TestGit(t *testing.T) {
	tests := []struct {
		name   string
		status git.Status
		err    error
		want   string
	}{
		{
			name:   "clean",
			status: git.Status{Branch: "main"},
			want:   " \ue0a0 main " + chevron,
		},
		{
			name: "dirty with remote",
			status: git.Status{
				Branch:    "feature",
				HasRemote: true,
				Ahead:     3,
				Behind:    1,
				Staged:    1,
				Unstaged:  2,
				Untracked: 4,
			},
			want: " \ue0a0 feature " + chevron +
				" 2 \ueae9 " + chevron +
				" 4 ? " + chevron +
				" 1 + " + chevron +
				" \ue709 3\uf062 1\uf063 " + chevron,
		},
		{
			name:   "remote in sync",
			status: git.Status{Branch: "main", HasRemote: true},
			want:   " \ue0a0 main " + chevron + " \ue709 " + chevron,
		},
		{
			name:   "merge in progress",
			status: git.Status{Branch: "main", Conflicted: 1, Operation: git.OpMerging},
			want:   " \ue0a0 main|MERGING " + chevron + " 1 \u273c " + chevron,
		},
		{
			name: "collector failure",
			err:  errors.New("git status in /home/dev/repo: context deadline exceeded"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			require.NoError(t, env.fs.MkdirAll("/home/dev/repo/.git", 0o755))
			env.chdir("/home/dev/repo/internal/pkg")
			env.collector.status = tt.status
			env.collector.err = tt.err

			assert.Equal(t, tt.want, visible(build(t, env.Env, "git", nil)))
			assert.Equal(t, []string{"/home/dev/repo"}, env.collector.roots)
		})
	}
}

func TestGitOutsideRepository(t *testing.T) {
	env := newTestEnv(t)
	assert.Empty(t, visible(build(t, env.Env, "git", nil)))
	assert.Empty(t, env.collector.roots)
}

func TestGitColors(t *testing.T) {
	env := newTestEnv(t)
	env.useTheme(t, "rainbow")
	require.NoError(t, env.fs.MkdirAll("/home/dev/.git", 0o755))
	m := build(t, env.Env, "git", nil)

	env.collector.status = git.Status{Branch: "main"}
	assert.Contains(t, render(m, powerline.Chevron), bg(terminal.Blue))

	env.collector.status = git.Status{Branch: "main", Untracked: 1}
	out := render(m, powerline.Chevron)
	assert.Contains(t, out, bg(terminal.BrightOrange))
	assert.Contains(t, out, bg(terminal.WarningRed))
}

func TestPythonEnv(t *testing.T) {
	const versionKey = "python -c " + pythonVersionCmd

	t.Run("virtualenv", func(t *testing.T) {
		env := newTestEnv(t)
		env.vars["VIRTUAL_ENV"] = "/home/dev/.venvs/tools"
		env.runner.responses[versionKey] = []byte("3.12.1\n")

		assert.Equal(t, "\ue73c tools "+chevron+" 3.12.1 "+chevron, visible(build(t, env.Env, "python_env", nil)))
		assert.Equal(t, []string{versionKey}, env.runner.calls)
	})

	t.Run("conda env in a project", func(t *testing.T) {
		env := newTestEnv(t)
		env.vars["CONDA_DEFAULT_ENV"] = "science"
		env.writeFile(t, "/home/dev/pyproject.toml", "[project]\n")
		env.runner.err = errors.New("python: not found")

		assert.Equal(t, "\ue73c \U000F150E science "+chevron, visible(build(t, env.Env, "python_env", nil)))
	})

	t.Run("pinned version", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile(t, "/home/dev/.python-version", "3.11.4\n")

		assert.Equal(t, "\ue73c "+chevron+" 3.11.4 "+chevron, visible(build(t, env.Env, "python_env", nil)))
		assert.Empty(t, env.runner.calls)
	})

	t.Run("no python", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Empty(t, visible(build(t, env.Env, "python_env", nil)))
	})
}

func TestNvm(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "nvm", nil)
	assert.Empty(t, visible(m))

	env.writeFile(t, "/home/dev/.nvmrc", "lts/iron\n")
	assert.Equal(t, " \ued0d lts/iron "+chevron, visible(m))

	env.vars["nvm_current_version"] = "v20.11.0"
	assert.Equal(t, " \ued0d v20.11.0 "+chevron, visible(m))
}

func TestCargo(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "cargo", nil)
	assert.Empty(t, visible(m))

	env.writeFile(t, "/home/dev/Cargo.toml", "[package]\n")
	assert.Equal(t, "\U0001F980"+chevron, visible(m))
}

func TestJavaCandidate(t *testing.T) {
	tests := []struct {
		rc         string
		wantMajor  string
		wantDistro string
		wantOK     bool
	}{
		{rc: "java=21.0.2-tem", wantMajor: "21", wantDistro: "tem", wantOK: true},
		{rc: "# java=8.0.402-zulu\njava=17.0.9-graalce", wantMajor: "17", wantDistro: "graalce", wantOK: true},
		{rc: "sdkman_auto_env=true\njava=11-open", wantMajor: "11", wantDistro: "open", wantOK: true},
		{rc: "java=17"},
		{rc: "gradle=8.5"},
		{rc: ""},
	}

	for _, tt := range tests {
		major, distro, ok := javaCandidate(tt.rc)
		assert.Equal(t, tt.wantOK, ok, tt.rc)
		assert.Equal(t, tt.wantMajor, major, tt.rc)
		assert.Equal(t, tt.wantDistro, distro, tt.rc)
	}
}

func TestSdkmanJava(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "sdkman_java", nil)
	assert.Empty(t, visible(m))

	env.vars["SDKMAN_ENV"] = "/home/dev/service"
	env.writeFile(t, "/home/dev/service/.sdkmanrc", "java=21.0.2-amzn\n")
	assert.Equal(t, " 21 \ue738\uf270 "+chevron, visible(m))

	env.writeFile(t, "/home/dev/service/.sdkmanrc", "java=17.0.10-tem\n")
	assert.Equal(t, " 17 \ue738tem "+chevron, visible(m))
}

func TestHost(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, " devbox "+chevron, visible(build(t, env.Env, "host", nil)))

	remoteOnly := build(t, env.Env, "host", map[string]any{"show_on_local": false})
	assert.Empty(t, visible(remoteOnly))
	env.vars["SSH_CONNECTION"] = "10.0.0.2 51234 10.0.0.1 22"
	assert.Equal(t, " devbox "+chevron, visible(remoteOnly))

	narrow := build(t, env.Env, "host", map[string]any{"max_width": 4})
	assert.Equal(t, " dev… "+chevron, visible(narrow))

	env.Hostname = func() (string, error) { return "", errors.New("no hostname") }
	assert.Empty(t, visible(remoteOnly))
}

func TestUser(t *testing.T) {
	env := newTestEnv(t)
	env.useTheme(t, "simple")
	m := build(t, env.Env, "user", nil)

	out := render(m, powerline.Chevron)
	assert.Equal(t, " dev "+chevron, ansi.Strip(out))
	assert.Contains(t, out, bg(terminal.MidGrey))

	env.CurrentUser = func() (*user.User, error) {
		return &user.User{Uid: "0", Username: "root"}, nil
	}
	out = render(m, powerline.Chevron)
	assert.Equal(t, " root "+chevron, ansi.Strip(out))
	assert.Contains(t, out, bg(terminal.MidRed))

	remoteOnly := build(t, env.Env, "user", map[string]any{"show_on_local": false})
	assert.Empty(t, visible(remoteOnly))
	env.vars["SSH_TTY"] = "/dev/pts/3"
	assert.Equal(t, " root "+chevron, visible(remoteOnly))
}

func TestShellName(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "shell_name", nil)
	assert.Empty(t, visible(m))

	env.vars["SHELL"] = "/usr/bin/fish"
	assert.Equal(t, "fish"+chevron, visible(m))

	env.Runtime.ShellName = "zsh"
	assert.Equal(t, "zsh"+chevron, visible(m))
}

func TestTime(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, " 14:07:09 "+chevron, visible(build(t, env.Env, "time", nil)))

	dated := build(t, env.Env, "time", map[string]any{"format": "%Y-%m-%d %H:%M"})
	assert.Equal(t, " 2024-03-05 14:07 "+chevron, visible(dated))
}

func TestCmd(t *testing.T) {
	tests := []struct {
		name   string
		status string
		root   bool
		theme  string
		want   string
	}{
		{name: "no status", want: "$"},
		{name: "success", status: "0", want: "$"},
		{name: "failure", status: "127", want: "127"},
		{name: "root", status: "0", root: true, want: "#"},
		{name: "themed symbol", theme: "rainbow", want: "\uf105"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.Runtime.LastStatus = tt.status
			if tt.root {
				env.CurrentUser = func() (*user.User, error) {
					return &user.User{Uid: "0", Username: "root"}, nil
				}
			}
			if tt.theme != "" {
				env.useTheme(t, tt.theme)
			}
			assert.Equal(t, tt.want+chevron, visible(build(t, env.Env, "cmd", nil)))
		})
	}
}

func TestCmdColors(t *testing.T) {
	env := newTestEnv(t)
	env.useTheme(t, "rainbow")
	m := build(t, env.Env, "cmd", nil)

	assert.Contains(t, render(m, powerline.Chevron), bg(terminal.Black))
	env.Runtime.LastStatus = "1"
	assert.Contains(t, render(m, powerline.Chevron), bg(terminal.WarningRed))
}

func TestExitCode(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "exit_code", nil)

	for _, status := range []string{"", "0"} {
		env.Runtime.LastStatus = status
		assert.Empty(t, visible(m), status)
	}
	env.Runtime.LastStatus = "2"
	assert.Equal(t, " 2 "+chevron, visible(m))
}

func TestLastCmdDuration(t *testing.T) {
	env := newTestEnv(t)
	m := build(t, env.Env, "last_cmd_duration", map[string]any{"min_run_time": "2s"})
	assert.Empty(t, visible(m))

	short := 1500 * time.Millisecond
	env.Runtime.LastDuration = &short
	assert.Empty(t, visible(m))

	long := 3 * time.Second
	env.Runtime.LastDuration = &long
	assert.Equal(t, " 3.00s\U000F1ACC"+chevron, visible(m))

	env.useTheme(t, "rainbow")
	m = build(t, env.Env, "last_cmd_duration", nil)
	assert.Equal(t, " 3.00s\uf253"+chevron, visible(m))
}

func TestNiceDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 90 * time.Second, want: "1m30s"},
		{d: 61 * time.Second, want: "1m1s"},
		{d: time.Minute, want: "60.00s"},
		{d: 2500 * time.Millisecond, want: "2.50s"},
		{d: time.Second, want: "1000ms"},
		{d: 42 * time.Millisecond, want: "42ms"},
		{d: time.Millisecond, want: "1000µs"},
		{d: 250 * time.Microsecond, want: "250µs"},
		{d: 0, want: "0µs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, niceDuration(tt.d), tt.d.String())
	}
}
