// Package styles converts theme tokens into lipgloss styles for terminal rendering.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/theme"
	"github.com/opencode-ai/themes/internal/themes"
)

// Styles contains lipgloss styles derived from a theme.
type Styles struct {
	Theme        theme.Theme
	Canvas       lipgloss.Style
	Title        lipgloss.Style
	Text         lipgloss.Style
	Secondary    lipgloss.Style
	Muted        lipgloss.Style
	Placeholder  lipgloss.Style
	Accent       lipgloss.Style
	Panel        lipgloss.Style
	Border       lipgloss.Style
	Focus        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Info         lipgloss.Style
	Gutter       lipgloss.Style
	GutterActive lipgloss.Style
	LineActive   lipgloss.Style
	Selection    lipgloss.Style
	Match        lipgloss.Style
	Players      []lipgloss.Style
	Syntax       map[string]lipgloss.Style
}

// DefaultStyles builds styles from Solarized, picking the variant that suits
// the terminal.
func DefaultStyles() Styles {
	return BuildStyles(themes.Solarized(themes.DetectDark()))
}

// BuildStyles converts theme tokens into lipgloss styles. Translucent colors
// are flattened over the editor background.
func BuildStyles(t theme.Theme) Styles {
	bg := t.Editor.Background
	fg := func(c color.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(Flat(c, bg))
	}
	text := t.TextColor

	styles := Styles{
		Theme:        t,
		Canvas:       lipgloss.NewStyle().Foreground(Flat(text.Primary, bg)).Background(Flat(bg, bg)),
		Title:        fg(text.Active).Bold(true),
		Text:         fg(text.Primary),
		Secondary:    fg(text.Secondary),
		Muted:        fg(text.Muted),
		Placeholder:  fg(text.Placeholder),
		Accent:       fg(text.Feature),
		Panel:        fg(text.Primary).Background(Flat(t.BackgroundColor.L300.Base, bg)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Flat(t.BorderColor.Primary, bg)),
		Border:       fg(t.BorderColor.Muted),
		Focus:        fg(t.BorderColor.Focused).Bold(true),
		Success:      fg(text.Ok),
		Warning:      fg(text.Warning),
		Error:        fg(text.Error),
		Info:         fg(text.Info),
		Gutter:       fg(t.Editor.Gutter.Primary),
		GutterActive: fg(t.Editor.Gutter.Active),
		LineActive:   fg(text.Primary).Background(Flat(t.Editor.Line.Active, bg)),
		Selection:    fg(text.Primary).Background(Flat(t.Editor.Highlight.Selection, bg)),
		Match:        fg(text.Primary).Background(Flat(t.Editor.Highlight.Match, bg)),
		Syntax:       make(map[string]lipgloss.Style),
	}

	for _, id := range t.Player.IDs() {
		styles.Players = append(styles.Players, fg(t.Player[id].CursorColor).Bold(true))
	}

	for _, kind := range t.Syntax.Kinds() {
		styles.Syntax[kind.Name] = SyntaxStyle(kind.Style, bg)
	}

	return styles
}

// SyntaxStyle renders one syntax token style.
func SyntaxStyle(s theme.SyntaxStyle, bg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Flat(s.Color, bg)).
		Bold(s.Weight.IsBold()).
		Italic(s.Italic).
		Underline(s.Underline)
}

// Flat returns c composited over bg as a terminal color.
func Flat(c, bg color.Color) lipgloss.Color {
	return c.Flatten(bg).Lipgloss()
}
