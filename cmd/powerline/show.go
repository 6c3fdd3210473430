package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/config"
	"github.com/Veraticus/powerline/internal/modules"
	"github.com/Veraticus/powerline/internal/powerline"
	"github.com/Veraticus/powerline/internal/terminal"
	"github.com/Veraticus/powerline/internal/theme"
)

// fallbackPrompt is printed when the prompt cannot be rendered, so the
// shell stays usable.
const fallbackPrompt = "> "

// cursorGap follows the last row so typed input does not touch the
// closing glyph.
const cursorGap = " "

type showOptions struct {
	status     string
	columns    int
	shell      string
	configPath string
	theme      string
}

func (a *app) showCmd() *cobra.Command {
	var opts showOptions
	cmd := &cobra.Command{
		Use:   "show [DURATION_MS]",
		Short: "Print the prompt",
		Long: `Print the prompt rows. DURATION_MS is how long the last command ran,
in milliseconds. Init scripts pass it along with the exit status and the
terminal width.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := a.renderPrompt(cmd, opts, args)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), fallbackPrompt)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.status, "status", "s", "", "Exit status of the last command")
	flags.IntVarP(&opts.columns, "columns", "c", 0, "Terminal width; 0 detects it")
	flags.StringVar(&opts.shell, "shell", "", "Escape dialect: bash, zsh, fish or bare")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: search the config paths)")
	flags.StringVar(&opts.theme, "theme", "", "Builtin theme, overriding the config")
	return cmd
}

func (a *app) renderPrompt(cmd *cobra.Command, opts showOptions, args []string) (string, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return "", err
	}

	shell := cfg.Shell
	if opts.shell != "" {
		shell = opts.shell
	}
	dialect, err := terminal.ParseDialect(shell)
	if err != nil {
		return "", err
	}

	themeName := cfg.Theme
	if opts.theme != "" {
		themeName = opts.theme
	}
	th, err := theme.Resolve(a.fs, themeName, cfg.ThemeFile)
	if err != nil {
		return "", err
	}

	sep, err := powerline.ParseSeparator(cfg.Separator)
	if err != nil {
		return "", err
	}

	rt := modules.Runtime{
		Columns:    opts.columns,
		LastStatus: opts.status,
		Dialect:    dialect,
	}
	if rt.Columns <= 0 {
		rt.Columns = terminal.NewWidthDetector().Width()
	}
	if dialect != terminal.Bare {
		rt.ShellName = dialect.String()
	}
	if len(args) == 1 && args[0] != "" {
		ms, err := strconv.ParseUint(args[0], 10, 63)
		if err != nil {
			return "", fmt.Errorf("parse duration %q: %w", args[0], err)
		}
		d := time.Duration(ms) * time.Millisecond
		rt.LastDuration = &d
	}

	logger := a.logger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()
	logger.Debug("rendering prompt",
		zap.String("config", cfg.Source()),
		zap.String("theme", themeName),
		zap.Stringer("dialect", dialect),
		zap.Int("columns", rt.Columns))

	env := modules.NewEnv(th, rt, cfg.GitTimeout, logger)
	env.Fs = a.fs
	env.Vars = envFunc(a.getenv)
	env.Context = cmd.Context()

	lines, err := modules.BuildLines(modules.NewRegistry(), env, cfg.Rows)
	if err != nil {
		return "", err
	}
	return strings.Join(modules.RenderLines(lines, env, sep), "\n") + cursorGap, nil
}

// envFunc adapts a getenv function to modules.EnvReader.
type envFunc func(string) string

func (f envFunc) Get(key string) string { return f(key) }
