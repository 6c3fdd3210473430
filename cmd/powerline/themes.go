package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/powerline/internal/output"
	"github.com/Veraticus/powerline/internal/shared"
	"github.com/Veraticus/powerline/internal/terminal"
	"github.com/Veraticus/powerline/internal/theme"
)

func (a *app) themesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the builtin themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			names := theme.Names()
			for i, name := range names {
				if name == theme.DefaultName {
					names[i] = name + shared.SubtleStyle.Render(" (default)")
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), output.NewListRenderer().Render("Themes", names))
		},
	}
	cmd.AddCommand(a.themeShowCmd())
	return cmd
}

func (a *app) themeShowCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show the colors and symbols of a theme",
		Long: `Show the colors and symbols of a builtin theme, or of a theme file
given with --file.`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				table *theme.Table
				err   error
			)
			switch {
			case file != "":
				table, err = theme.LoadFile(a.fs, file)
			case len(args) == 1:
				table, err = theme.Builtin(args[0])
			default:
				table, err = theme.Builtin(theme.DefaultName)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), describeTheme(table))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Theme file to show instead of a builtin")
	return cmd
}

func describeTheme(t *theme.Table) string {
	fg, bg := t.Defaults()
	sections := []output.Section{{
		Name: "defaults",
		Lines: []string{
			propertyLine("fg", shared.Swatch(fg)),
			propertyLine("bg", shared.Swatch(bg)),
			propertyLine("sample", shared.Chip("text", fg, bg)),
		},
	}}

	for _, module := range t.Modules() {
		var lines []string
		for _, prop := range t.Properties(module) {
			palette, _ := t.Palette(module, prop)
			lines = append(lines, propertyLine(prop, swatches(palette)))
		}
		for _, prop := range t.SymbolProperties(module) {
			symbol, _ := t.Symbol(module, prop)
			lines = append(lines, propertyLine(prop, symbol))
		}
		sections = append(sections, output.Section{Name: module, Lines: lines})
	}
	return output.NewListRenderer().RenderSections(t.Name(), sections)
}

func swatches(palette []terminal.Color) string {
	parts := make([]string, 0, len(palette))
	for _, c := range palette {
		parts = append(parts, shared.Swatch(c))
	}
	return strings.Join(parts, "  ")
}

func propertyLine(prop, value string) string {
	return fmt.Sprintf("%-18s %s", prop, value)
}
