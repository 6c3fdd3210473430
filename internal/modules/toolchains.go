package modules

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
)

const (
	pythonLogo       = "\ue73c"
	pythonSnake      = "\U000F150E"
	pythonVersionCmd = `from sys import version_info as v; print(f"{v.major}.{v.minor}.{v.micro}")`

	defaultNvmIcon   = "\ued0d"
	defaultCargoIcon = "\U0001F980"
	defaultJavaIcon  = "\ue738"
)

var javaDistroIcons = map[string]string{
	"amzn":    "\uf270",
	"graal":   "\ueae8",
	"graalce": "\ueae8",
	"oracle":  "\uee1c",
	"open":    "\uedf5",
	"zulu":    "\U000F0B07",
}

type pythonEnv struct {
	env    *Env
	envSty powerline.Style
	verSty powerline.Style
}

func newPythonEnv(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("python_env")
	return &pythonEnv{
		env:    env,
		envSty: powerline.Simple(s.Fg("env_fg"), s.Bg("env_bg")),
		verSty: powerline.Simple(s.Fg("version_fg"), s.Bg("version_bg")),
	}, nil
}

// Produce shows the active virtualenv or conda env with the interpreter
// version. Without one, a project marked by .python-version or
// pyproject.toml still gets the logo and the pinned version.
func (m *pythonEnv) Produce(c *powerline.Composer) {
	dir := m.env.dir(true)
	pyproject := m.env.exists(filepath.Join(dir, "pyproject.toml"))
	logo := pythonLogo
	if pyproject {
		logo += " " + pythonSnake
	}

	if venv := m.activeEnv(); venv != "" {
		c.AddShortSegment(fmt.Sprintf("%s %s ", logo, baseName(venv)), m.envSty)
		if version := m.interpreterVersion(); version != "" {
			c.AddSegment(version, m.verSty)
		}
		return
	}

	pinned, ok := readTrimmed(m.env.fs(), filepath.Join(dir, ".python-version"))
	if !ok && !pyproject {
		return
	}
	c.AddShortSegment(logo+" ", m.envSty)
	if pinned != "" {
		c.AddSegment(pinned, m.verSty)
	}
}

func (m *pythonEnv) activeEnv() string {
	for _, key := range []string{"VIRTUAL_ENV", "CONDA_ENV_PATH", "CONDA_DEFAULT_ENV"} {
		if v := m.env.getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func (m *pythonEnv) interpreterVersion() string {
	if m.env.Runner == nil {
		return ""
	}
	timeout := m.env.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(m.env.ctx(), timeout)
	defer cancel()

	out, err := m.env.Runner.OutputContext(ctx, "python", "-c", pythonVersionCmd)
	if err != nil {
		m.env.log().Debug("python version unavailable", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(string(out))
}

type nvm struct {
	env      *Env
	icon     string
	active   powerline.Style
	inactive powerline.Style
}

func newNvm(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("nvm")
	return &nvm{
		env:      env,
		icon:     s.Symbol("icon", defaultNvmIcon),
		active:   powerline.Simple(s.Fg("fg"), s.Bg("bg")),
		inactive: powerline.Simple(s.Fg("fg"), s.Bg("inactive_bg")),
	}, nil
}

// Produce shows the active node version, or the version pinned by .nvmrc
// in the inactive colors.
func (m *nvm) Produce(c *powerline.Composer) {
	if version := m.env.getenv("nvm_current_version"); version != "" {
		c.AddSegment(m.icon+" "+version, m.active)
		return
	}
	if pinned, ok := readTrimmed(m.env.fs(), filepath.Join(m.env.dir(true), ".nvmrc")); ok && pinned != "" {
		c.AddSegment(m.icon+" "+pinned, m.inactive)
	}
}

type cargo struct {
	env   *Env
	icon  string
	style powerline.Style
}

func newCargo(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("cargo")
	return &cargo{
		env:   env,
		icon:  s.Symbol("icon", defaultCargoIcon),
		style: powerline.Simple(s.Color("fg", terminal.White), s.Bg("bg")),
	}, nil
}

// Produce marks directories holding a Cargo.toml.
func (m *cargo) Produce(c *powerline.Composer) {
	if m.env.exists(filepath.Join(m.env.dir(true), "Cargo.toml")) {
		c.AddShortSegment(m.icon, m.style)
	}
}

type sdkmanJava struct {
	env   *Env
	icon  string
	style powerline.Style
}

func newSdkmanJava(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("sdkman_java")
	return &sdkmanJava{
		env:   env,
		icon:  s.Symbol("icon", defaultJavaIcon),
		style: powerline.Simple(s.Fg("fg"), s.Bg("bg")),
	}, nil
}

// Produce shows the java major version and distribution pinned by the
// .sdkmanrc of the active sdkman env.
func (m *sdkmanJava) Produce(c *powerline.Composer) {
	root := m.env.getenv("SDKMAN_ENV")
	if root == "" {
		return
	}
	rc, ok := readTrimmed(m.env.fs(), filepath.Join(root, ".sdkmanrc"))
	if !ok {
		return
	}
	major, distro, ok := javaCandidate(rc)
	if !ok {
		return
	}
	c.AddSegment(fmt.Sprintf("%s %s%s", major, m.icon, javaDistroIcon(distro)), m.style)
}

// javaCandidate finds the first "java=VERSION-DISTRO" line of an
// .sdkmanrc and returns the major version and distribution.
func javaCandidate(rc string) (string, string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(rc))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		candidate, found := strings.CutPrefix(line, "java=")
		if !found {
			continue
		}
		version, distro, found := strings.Cut(candidate, "-")
		if !found {
			return "", "", false
		}
		major, _, _ := strings.Cut(version, ".")
		return major, distro, true
	}
	return "", "", false
}

func javaDistroIcon(distro string) string {
	if icon, ok := javaDistroIcons[distro]; ok {
		return icon
	}
	return distro
}
