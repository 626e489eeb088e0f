// Package cli provides theme listing commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/themes"
	"github.com/opencode-ai/themes/internal/tui/components"
	"github.com/opencode-ai/themes/internal/tui/styles"
)

var listFilter string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "only show themes whose name contains this text")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  "List built-in themes and theme files found in the search paths.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		items := make([]ThemeListItem, 0)
		userThemes := 0
		for _, entry := range reg.Entries() {
			if entry.Source != themes.SourceBuiltin {
				userThemes++
			}
			if listFilter != "" && !strings.Contains(strings.ToLower(entry.Theme.Name), strings.ToLower(listFilter)) {
				continue
			}
			items = append(items, ThemeListItem{
				Name:    entry.Theme.Name,
				Variant: variantName(entry.Theme.IsDark()),
				Source:  entry.Source,
				Builtin: entry.Source == themes.SourceBuiltin,
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, items)
		}

		styleSet := styles.DefaultStyles()
		if len(items) == 0 {
			fmt.Fprintln(out, components.EmptyThemesFiltered(listFilter).Render(styleSet))
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{item.Name, formatVariant(item.Variant == "dark"), formatYesNo(item.Builtin), formatSource(item.Source)})
		}
		if err := writeTable(out, []string{"NAME", "VARIANT", "BUILTIN", "SOURCE"}, rows); err != nil {
			return err
		}

		if userThemes == 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, components.EmptyUserThemes(searchPaths()).RenderCompact(styleSet))
		}
		return nil
	},
}

// ThemeListItem is one row of `themes list --json`.
type ThemeListItem struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
	Source  string `json:"source"`
	Builtin bool   `json:"builtin"`
}

func variantName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
