// Package cli provides the theme build command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/export"
	"github.com/opencode-ai/themes/internal/theme"
)

var (
	buildOut    string
	buildFormat string
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (default from config build.out)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "", "json or yaml (default from config build.format)")
}

var buildCmd = &cobra.Command{
	Use:   "build [names...]",
	Short: "Write theme files",
	Long:  "Validate themes and write one file per theme for the editor to load. Builds every registered theme when no names are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := buildOut
		if out == "" {
			out = cfg.Build.Out
		}
		format, err := export.ParseFormat(firstNonEmpty(buildFormat, cfg.Build.Format))
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			names = reg.Names()
		}

		selected := make([]theme.Theme, 0, len(names))
		for _, name := range names {
			resolved, err := resolveThemeName(reg, name)
			if err != nil {
				return err
			}
			th, err := reg.Get(resolved)
			if err != nil {
				return err
			}
			selected = append(selected, th)
		}

		progress := newBuildProgress(cmd.ErrOrStderr(), len(selected))
		paths, err := export.WriteDir(out, selected, format, export.OnWritten(func(t theme.Theme, path string) {
			logger.Info().Str("theme", t.Name).Str("path", path).Str("format", string(format)).Msg("theme written")
			progress.themeWritten(t, path)
		}))
		if err != nil {
			progress.failed(err)
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), BuildResult{Format: string(format), Files: paths})
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

// BuildResult is the payload returned by `themes build --json`.
type BuildResult struct {
	Format string   `json:"format"`
	Files  []string `json:"files"`
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
