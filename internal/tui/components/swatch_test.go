package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/themes/internal/theme"
)

func TestSwatch(t *testing.T) {
	styleSet := testStyles()
	out := Swatch(styleSet, "editor.background", styleSet.Theme.Editor.Background)

	if !strings.Contains(out, "editor.background") {
		t.Fatalf("expected label in swatch, got %q", out)
	}
	if !strings.Contains(out, "#002b36") {
		t.Fatalf("expected hex in swatch, got %q", out)
	}
}

func TestStateRow(t *testing.T) {
	styleSet := testStyles()
	out := StateRow(styleSet, "background.100", styleSet.Theme.BackgroundColor.L100)

	for _, want := range []string{"background.100", "base", "hovered", "active", "focused"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestSyntaxSample(t *testing.T) {
	styleSet := testStyles()
	kinds := styleSet.Theme.Syntax.Kinds()

	out := SyntaxSample(styleSet, kinds[len(kinds)-1])
	if !strings.Contains(out, "linkText") || !strings.Contains(out, "italic") {
		t.Fatalf("unexpected linkText sample: %q", out)
	}

	out = SyntaxSample(styleSet, theme.SyntaxKind{Name: "custom", Style: theme.Bold(styleSet.Theme.TextColor.Info)})
	if !strings.Contains(out, "custom") || !strings.Contains(out, "bold") {
		t.Fatalf("unexpected custom sample: %q", out)
	}
}

func TestPlayerRow(t *testing.T) {
	styleSet := testStyles()
	out := PlayerRow(styleSet, 3, styleSet.Theme.Player[3])

	if !strings.Contains(out, "player 3") || !strings.Contains(out, "#d33682") {
		t.Fatalf("unexpected player row: %q", out)
	}
}
