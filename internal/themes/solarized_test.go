package themes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/tokens"
)

func TestSolarizedComplete(t *testing.T) {
	for _, dark := range []bool{true, false} {
		th := Solarized(dark)
		require.NoError(t, th.Validate(), "dark=%t", dark)
		require.Equal(t, dark, th.IsDark())
	}
}

func TestSolarizedName(t *testing.T) {
	require.Equal(t, "solarized-dark", Solarized(true).Name)
	require.Equal(t, "solarized-light", Solarized(false).Name)
}

func TestSolarizedIconColorMatchesText(t *testing.T) {
	for _, dark := range []bool{true, false} {
		th := Solarized(dark)
		require.Equal(t, th.TextColor, th.IconColor)
	}
}

func TestSolarizedShadowAlpha(t *testing.T) {
	for _, dark := range []bool{true, false} {
		th := Solarized(dark)
		require.Equal(t, 0.32, th.ShadowAlpha.Value)
		require.Equal(t, tokens.NumberTokenType, th.ShadowAlpha.Type)
	}
}

func TestSolarizedPlayers(t *testing.T) {
	palette := SolarizedAccents()
	accents := map[string]bool{}
	for _, c := range []color.Color{
		palette.Red, palette.Orange, palette.Yellow, palette.Green,
		palette.Cyan, palette.Blue, palette.Violet, palette.Magenta,
	} {
		accents[c.Hex()] = true
	}

	th := Solarized(true)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, th.Player.IDs())

	seen := map[string]bool{}
	for _, id := range th.Player.IDs() {
		base := th.Player[id].BaseColor.Hex()
		require.True(t, accents[base], "player %d uses non-accent %s", id, base)
		require.False(t, seen[base], "player %d reuses %s", id, base)
		seen[base] = true
	}

	require.Equal(t, "#268bd2", th.Player[1].BaseColor.Hex())
	require.Equal(t, "#b58900", th.Player[8].BaseColor.Hex())
}

func TestSolarizedOpacityDerived(t *testing.T) {
	dark := Solarized(true)
	light := Solarized(false)

	tests := []struct {
		name  string
		got   color.Color
		base  string
		alpha float64
	}{
		{"dark line.active", dark.Editor.Line.Active, "#fdf6e3", 0.07},
		{"dark line.highlighted", dark.Editor.Line.Highlighted, "#fdf6e3", 0.12},
		{"dark highlight.occurrence", dark.Editor.Highlight.Occurrence, "#002b36", 0.12},
		{"dark highlight.activeOccurrence", dark.Editor.Highlight.ActiveOccurrence, "#002b36", 0.16},
		{"dark highlight.match", dark.Editor.Highlight.Match, "#6c71c4", 0.5},
		{"dark highlight.activeMatch", dark.Editor.Highlight.ActiveMatch, "#6c71c4", 0.7},
		{"light line.active", light.Editor.Line.Active, "#002b36", 0.07},
		{"light highlight.occurrence", light.Editor.Highlight.Occurrence, "#fdf6e3", 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := color.MustParse(tt.base)
			r1, g1, b1 := base.RGB255()
			r2, g2, b2 := tt.got.RGB255()
			require.Equal(t, [3]uint8{r1, g1, b1}, [3]uint8{r2, g2, b2})
			require.Equal(t, tt.alpha, tt.got.Alpha())
		})
	}
}

func TestSolarizedStatusColorsModeInvariant(t *testing.T) {
	dark := Solarized(true)
	light := Solarized(false)

	require.Equal(t, "#dc322f", dark.BorderColor.Error.Hex())
	require.Equal(t, dark.BorderColor.Error, light.BorderColor.Error)
	require.Equal(t, dark.BorderColor.Ok, light.BorderColor.Ok)
	require.Equal(t, dark.BorderColor.Warning, light.BorderColor.Warning)
	require.Equal(t, dark.BorderColor.Info, light.BorderColor.Info)
	require.Equal(t, dark.BackgroundColor.Error, light.BackgroundColor.Error)
	require.Equal(t, dark.TextColor.Info, light.TextColor.Info)
}

func TestSolarizedSurfaces(t *testing.T) {
	dark := Solarized(true)

	require.Equal(t, "#073642", dark.BackgroundColor.L100.Base.Hex())
	require.Equal(t, "#657b83", dark.BackgroundColor.L100.Hovered.Hex())
	require.Equal(t, "#002b36", dark.BackgroundColor.L500.Base.Hex())
	require.Equal(t, "#002b36", dark.Editor.Background.Hex())
	require.Equal(t, "#eee8d5", dark.TextColor.Primary.Hex())
	require.Equal(t, "#839496", dark.TextColor.Placeholder.Hex())
	require.Equal(t, dark.TextColor.Placeholder, dark.Editor.Gutter.Primary)
	require.Equal(t, dark.Player[1].SelectionColor, dark.Editor.Highlight.Selection)
	require.Equal(t, dark.BackgroundColor.Ok.Active, dark.Editor.Line.Inserted)

	light := Solarized(false)
	require.Equal(t, "#fdf6e3", light.Editor.Background.Hex())
	require.Equal(t, "#073642", light.TextColor.Primary.Hex())
}

func TestSolarizedSyntax(t *testing.T) {
	th := Solarized(true)

	require.Equal(t, tokens.WeightBold, th.Syntax.Title.Weight)
	require.Equal(t, tokens.WeightBold, th.Syntax.EmphasisStrong.Weight)
	require.Equal(t, th.TextColor.Feature, th.Syntax.Emphasis.Color)
	require.True(t, th.Syntax.LinkURI.Underline)
	require.True(t, th.Syntax.LinkText.Italic)
	require.False(t, th.Syntax.Keyword.Italic)
	require.Equal(t, "#2aa198", th.Syntax.Type.Color.Hex())
	require.Equal(t, th.TextColor.Muted, th.Syntax.Predictive.Color)
}

func TestSolarizedAccentsReturnsCopy(t *testing.T) {
	palette := SolarizedAccents()
	palette.Red = color.MustParse("#000000")

	require.Equal(t, "#dc322f", SolarizedAccents().Red.Hex())
	require.Equal(t, "#dc322f", Solarized(true).BorderColor.Error.Hex())
}

func TestSolarizedDeterministic(t *testing.T) {
	for _, dark := range []bool{true, false} {
		require.Equal(t, Solarized(dark), Solarized(dark))
	}
}
