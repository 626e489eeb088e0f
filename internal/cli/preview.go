// Package cli provides the interactive preview command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [name]",
	Short: "Preview a theme in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "run from a TTY without --non-interactive or THEMES_NON_INTERACTIVE",
				NextStep: "themes show --swatches",
			}
		}

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

		logger.Debug().Str("theme", name).Msg("starting preview")
		return tui.Run(tui.Config{
			Registry: reg,
			Theme:    name,
			Logger:   logger,
		})
	},
}
