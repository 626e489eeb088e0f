package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/theme"
	"github.com/opencode-ai/themes/internal/tui/styles"
)

const (
	swatchBlock = "    "
	labelWidth  = 18
)

// Swatch renders a color block followed by its label and hex value.
func Swatch(styleSet styles.Styles, label string, c color.Color) string {
	block := lipgloss.NewStyle().
		Background(styles.Flat(c, styleSet.Theme.Editor.Background)).
		Render(swatchBlock)
	return fmt.Sprintf("%s %s %s", block, styleSet.Text.Render(pad(label)), styleSet.Muted.Render(c.Hex()))
}

// StateRow renders every state of a group on one line.
func StateRow(styleSet styles.Styles, label string, group theme.StateColors) string {
	bg := styleSet.Theme.Editor.Background
	cells := make([]string, 0, 4)
	for _, state := range []struct {
		name string
		c    color.Color
	}{
		{"base", group.Base},
		{"hovered", group.Hovered},
		{"active", group.Active},
		{"focused", group.Focused},
	} {
		cells = append(cells, lipgloss.NewStyle().
			Foreground(styles.Flat(styleSet.Theme.TextColor.Primary, bg)).
			Background(styles.Flat(state.c, bg)).
			Render(" "+state.name+" "))
	}
	return fmt.Sprintf("%s %s", styleSet.Text.Render(pad(label)), strings.Join(cells, " "))
}

// SyntaxSample renders a token kind name in its own style.
func SyntaxSample(styleSet styles.Styles, kind theme.SyntaxKind) string {
	style, ok := styleSet.Syntax[kind.Name]
	if !ok {
		style = styles.SyntaxStyle(kind.Style, styleSet.Theme.Editor.Background)
	}
	attrs := []string{string(kind.Style.Weight)}
	if kind.Style.Italic {
		attrs = append(attrs, "italic")
	}
	if kind.Style.Underline {
		attrs = append(attrs, "underline")
	}
	return fmt.Sprintf("%s %s", style.Render(pad(kind.Name)), styleSet.Muted.Render(strings.Join(attrs, ", ")))
}

// PlayerRow renders a collaborator cursor and selection sample.
func PlayerRow(styleSet styles.Styles, id int, player theme.Player) string {
	bg := styleSet.Theme.Editor.Background
	cursor := lipgloss.NewStyle().Foreground(styles.Flat(player.CursorColor, bg)).Render("|")
	selection := lipgloss.NewStyle().
		Foreground(styles.Flat(styleSet.Theme.TextColor.Primary, bg)).
		Background(styles.Flat(player.SelectionColor, bg)).
		Render(" selected text ")
	border := lipgloss.NewStyle().Foreground(styles.Flat(player.BorderColor, bg)).Render("[avatar]")
	return fmt.Sprintf("%s %s%s %s %s", styleSet.Text.Render(fmt.Sprintf("player %d", id)), cursor, selection, border, styleSet.Muted.Render(player.BaseColor.Hex()))
}

func pad(label string) string {
	if len(label) >= labelWidth {
		return label
	}
	return label + strings.Repeat(" ", labelWidth-len(label))
}
