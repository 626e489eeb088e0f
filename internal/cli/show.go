// Package cli provides the theme inspection command.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/export"
	"github.com/opencode-ai/themes/internal/tui/components"
	"github.com/opencode-ai/themes/internal/tui/styles"
)

var (
	showFormat   string
	showSwatches bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFormat, "format", "", "print the full theme as json or yaml")
	showCmd.Flags().BoolVar(&showSwatches, "swatches", false, "render color swatches")
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme",
	Long:  "Show a summary of a theme, or the full token set with --json or --format.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		requested := ""
		if len(args) == 1 {
			requested = args[0]
		}
		name, err := resolveThemeName(reg, requested)
		if err != nil {
			return err
		}
		entry, err := reg.Entry(name)
		if err != nil {
			return err
		}
		th := entry.Theme

		out := cmd.OutOrStdout()
		if IsJSONOutput() || showFormat != "" {
			format, err := export.ParseFormat(showFormat)
			if err != nil {
				return err
			}
			return export.Write(out, th, format)
		}

		rows := [][]string{
			{"name", th.Name},
			{"variant", formatVariant(th.IsDark())},
			{"source", formatSource(entry.Source)},
			{"editor.background", th.Editor.Background.Hex()},
			{"text.primary", th.TextColor.Primary.Hex()},
			{"text.muted", th.TextColor.Muted.Hex()},
			{"border.error", th.BorderColor.Error.Hex()},
			{"highlight.selection", th.Editor.Highlight.Selection.Hex()},
			{"players", strconv.Itoa(len(th.Player))},
			{"syntax kinds", strconv.Itoa(len(th.Syntax.Kinds()))},
			{"shadowAlpha", strconv.FormatFloat(th.ShadowAlpha.Value, 'f', -1, 64)},
		}
		if err := writeTable(out, nil, rows); err != nil {
			return err
		}

		if showSwatches {
			styleSet := styles.BuildStyles(th)
			fmt.Fprintln(out)
			fmt.Fprintln(out, components.StateRow(styleSet, "background.500", th.BackgroundColor.L500))
			fmt.Fprintln(out, components.Swatch(styleSet, "line.active", th.Editor.Line.Active))
			for _, kind := range th.Syntax.Kinds() {
				fmt.Fprintln(out, components.SyntaxSample(styleSet, kind))
			}
			for _, id := range th.Player.IDs() {
				fmt.Fprintln(out, components.PlayerRow(styleSet, id, th.Player[id]))
			}
		}
		return nil
	},
}
