// Package cli provides the theme file validation command.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themes/internal/themes"
)

// ErrValidationFailed is returned when at least one theme file is invalid.
var ErrValidationFailed = errors.New("theme validation failed")

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Validate theme files",
	Long:  "Parse theme files and check that every token is present and well formed.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]ValidationResult, 0, len(args))
		failed := 0
		for _, path := range args {
			result := ValidationResult{Path: path, Valid: true}
			entry, err := themes.LoadTheme(path)
			if err != nil {
				result.Valid = false
				result.Error = err.Error()
				failed++
				logger.Debug().Err(err).Str("path", path).Msg("theme file invalid")
			} else {
				result.Name = entry.Theme.Name
			}
			results = append(results, result)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if err := WriteOutput(out, results); err != nil {
				return err
			}
		} else {
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				var err error
				if !result.Valid {
					err = errors.New(result.Error)
				}
				rows = append(rows, []string{result.Path, result.Name, formatValidation(err)})
			}
			if err := writeTable(out, []string{"FILE", "THEME", "STATUS"}, rows); err != nil {
				return err
			}
			for _, result := range results {
				if !result.Valid {
					fmt.Fprintf(out, "\n%s:\n  %s\n", result.Path, result.Error)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d file(s)", ErrValidationFailed, failed, len(results))
		}
		return nil
	},
}

// ValidationResult reports the outcome for one theme file.
type ValidationResult struct {
	Path  string `json:"path"`
	Name  string `json:"name,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
