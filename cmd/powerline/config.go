package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/powerline/internal/config"
	"github.com/Veraticus/powerline/internal/output"
	"github.com/Veraticus/powerline/internal/shared"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the configuration file",
	}
	cmd.AddCommand(a.configDefaultCmd(), a.configInitCmd(), a.configPathCmd())
	return cmd
}

func (a *app) configDefaultCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "default",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.MarshalDefault(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml, toml or json")
	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to the user config path, or to --path.
The format follows the file extension. An existing file is kept unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(a.fs, path, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared.SuccessStyle.Render("Wrote "+path))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Where to write the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (a *app) configPathCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			loaded := cfg.Source()
			if loaded == "" {
				loaded = "(builtin defaults)"
			}
			fmt.Fprint(cmd.OutOrStdout(), output.NewListRenderer().RenderMap("Config", map[string]string{
				"loaded":  loaded,
				"default": config.DefaultPath(),
				"theme":   cfg.Theme,
				"shell":   cfg.Shell,
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: search the config paths)")
	return cmd
}
