package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/powerline/internal/shellinit"
)

func (a *app) initCmd() *cobra.Command {
	var binary string
	cmd := &cobra.Command{
		Use:       "init SHELL",
		Short:     "Print the script that installs the prompt in SHELL",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shellinit.Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if binary == "" {
				binary = executable()
			}
			script, err := shellinit.Script(args[0], binary)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
	cmd.Flags().StringVar(&binary, "binary", "", "Path of the powerline binary the script calls")
	return cmd
}

func executable() string {
	path, err := os.Executable()
	if err != nil {
		return shellinit.DefaultBinary
	}
	return path
}
