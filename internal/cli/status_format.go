// Package cli provides status formatting helpers.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/themes"
)

var (
	colorGreen  = themes.SolarizedAccents().Green
	colorRed    = themes.SolarizedAccents().Red
	colorYellow = themes.SolarizedAccents().Yellow
	colorCyan   = themes.SolarizedAccents().Cyan
)

func formatValidation(err error) string {
	if err == nil {
		return colorize("OK", colorGreen)
	}
	return colorize(formatStatusLabel("ERR", "invalid"), colorRed)
}

func formatSource(source string) string {
	if source == themes.SourceBuiltin {
		return colorize(source, colorCyan)
	}
	return source
}

func formatVariant(dark bool) string {
	if dark {
		return "dark"
	}
	return colorize("light", colorYellow)
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}

func colorize(text string, c color.Color) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(text)
}

func colorEnabled() bool {
	if IsJSONOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}
