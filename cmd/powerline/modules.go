package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/powerline/internal/modules"
	"github.com/Veraticus/powerline/internal/output"
)

func (a *app) modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the segment types rows can use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			list := output.NewListRenderer()
			fmt.Fprint(cmd.OutOrStdout(), list.Render("Modules", modules.NewRegistry().Tags()))
		},
	}
}
