package themes

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VariantEnv forces the dark or light variant regardless of the terminal.
const VariantEnv = "THEMES_VARIANT"

// DetectDark reports whether the dark variant should be used, based on
// THEMES_VARIANT and then the terminal background.
func DetectDark() bool {
	return detectDark(os.Getenv, lipgloss.HasDarkBackground)
}

func detectDark(getenv func(string) string, hasDarkBackground func() bool) bool {
	switch strings.ToLower(strings.TrimSpace(getenv(VariantEnv))) {
	case "dark":
		return true
	case "light":
		return false
	}
	return hasDarkBackground()
}
