package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/logging"
)

// app carries the global flags and the outside world of every command.
type app struct {
	verbose bool
	fs      afero.Fs
	getenv  func(string) string
}

func newApp() *app {
	return &app{
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "powerline",
		Short: "Render a powerline-style shell prompt",
		Long: `powerline renders a shell prompt made of colored segments joined by
powerline glyphs. Hook it into your shell with:

  eval "$(powerline init bash)"    # or zsh
  powerline init fish | source`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Write debug logs to stderr")

	root.AddCommand(
		a.showCmd(),
		a.initCmd(),
		a.themesCmd(),
		a.modulesCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) logger(w io.Writer) *zap.Logger {
	return logging.New(a.verbose || logging.Enabled(a.getenv), w)
}
