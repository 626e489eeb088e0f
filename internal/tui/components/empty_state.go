// Package components provides reusable rendering pieces for the preview and CLI.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themes/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "themes build --out dist").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Muted.Render(e.Title)}

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyUserThemes is shown when no theme files exist in any search path.
func EmptyUserThemes(searchPaths []string) EmptyState {
	subtitle := "Only built-in themes are available."
	if len(searchPaths) > 0 {
		subtitle = fmt.Sprintf("Searched: %s", strings.Join(searchPaths, ", "))
	}
	return EmptyState{
		Title:    "No user themes found",
		Subtitle: subtitle,
		Suggestions: []Suggestion{
			{Command: "themes build --format yaml --out .themes solarized-dark", Description: "start from a built-in theme"},
			{Command: "themes show solarized-dark", Description: "inspect a built-in theme"},
		},
	}
}

// EmptyThemesFiltered is shown when a name filter matches nothing.
func EmptyThemesFiltered(filter string) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("No themes match '%s'", filter),
		Subtitle: "Run themes list without --filter to see every theme.",
	}
}
