package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"github.com/Veraticus/powerline/internal/shared"
)

var version = "dev"

func (a *app) versionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "powerline %s\n", version)
			if !check {
				return nil
			}

			res, err := latest.Check(&latest.GithubTag{
				Owner:      "Veraticus",
				Repository: "powerline",
			}, version)
			if err != nil {
				return fmt.Errorf("check latest version: %w", err)
			}
			if res.Outdated {
				fmt.Fprintln(out, shared.WarningStyle.Render(
					fmt.Sprintf("A new version is available: %s (you have %s)", res.Current, version)))
				return nil
			}
			fmt.Fprintln(out, shared.SuccessStyle.Render("You are using the latest version."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
