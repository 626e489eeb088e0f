package themes

import (
	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/theme"
	"github.com/opencode-ai/themes/internal/tokens"
)

// Grayscale ramps. Dark runs darkest to lightest, light runs lightest to darkest.
var (
	solarizedDark = [4]color.Color{
		color.MustParse("#002b36"),
		color.MustParse("#073642"),
		color.MustParse("#586e75"),
		color.MustParse("#657b83"),
	}
	solarizedLight = [4]color.Color{
		color.MustParse("#fdf6e3"),
		color.MustParse("#eee8d5"),
		color.MustParse("#93a1a1"),
		color.MustParse("#839496"),
	}
)

// Accents are the eight named accent colors of a palette.
type Accents struct {
	Red, Orange, Yellow, Green, Cyan, Blue, Violet, Magenta color.Color
}

var solarizedAccents = Accents{
	Red:     color.MustParse("#dc322f"),
	Orange:  color.MustParse("#cb4b16"),
	Yellow:  color.MustParse("#b58900"),
	Green:   color.MustParse("#859900"),
	Cyan:    color.MustParse("#2aa198"),
	Blue:    color.MustParse("#268bd2"),
	Violet:  color.MustParse("#6c71c4"),
	Magenta: color.MustParse("#d33682"),
}

const solarizedShadowAlpha = 0.32

// SolarizedAccents returns a copy of the accent colors shared by both variants.
func SolarizedAccents() Accents {
	return solarizedAccents
}

// Solarized builds the dark or light Solarized theme.
func Solarized(darkTheme bool) theme.Theme {
	fg, bg, name := solarizedDark, solarizedLight, "solarized-light"
	if darkTheme {
		fg, bg, name = solarizedLight, solarizedDark, "solarized-dark"
	}
	accent := solarizedAccents

	backgroundColor := theme.BackgroundColors{
		L100:    theme.Layer(bg[1], bg[3]),
		L300:    theme.Layer(bg[1], bg[3]),
		L500:    theme.Layer(bg[0], bg[1]),
		On300:   theme.Layer(bg[0], bg[1]),
		On500:   theme.Layer(bg[1], bg[3]),
		Ok:      theme.States(accent.Green),
		Error:   theme.States(accent.Red),
		Warning: theme.States(accent.Yellow),
		Info:    theme.States(accent.Blue),
	}

	borderColor := theme.BorderColors{
		Primary:   bg[0],
		Secondary: bg[1],
		Muted:     bg[3],
		Focused:   bg[3],
		Active:    bg[3],
		Ok:        accent.Green,
		Error:     accent.Red,
		Warning:   accent.Yellow,
		Info:      accent.Blue,
	}

	textColor := theme.TextColors{
		Primary:     fg[1],
		Secondary:   fg[2],
		Muted:       fg[2],
		Placeholder: fg[3],
		Active:      fg[0],
		// TODO: decide what "feature" text means and give it its own value.
		Feature: accent.Blue,
		Ok:      accent.Green,
		Error:   accent.Red,
		Warning: accent.Yellow,
		Info:    accent.Blue,
	}

	player := theme.Players{
		1: theme.BuildPlayer(accent.Blue),
		2: theme.BuildPlayer(accent.Green),
		3: theme.BuildPlayer(accent.Magenta),
		4: theme.BuildPlayer(accent.Orange),
		5: theme.BuildPlayer(accent.Violet),
		6: theme.BuildPlayer(accent.Cyan),
		7: theme.BuildPlayer(accent.Red),
		8: theme.BuildPlayer(accent.Yellow),
	}

	editor := theme.Editor{
		Background:        backgroundColor.L500.Base,
		IndentGuide:       borderColor.Muted,
		IndentGuideActive: borderColor.Secondary,
		Line: theme.EditorLine{
			Active:      color.WithOpacity(fg[0], 0.07),
			Highlighted: color.WithOpacity(fg[0], 0.12),
			Inserted:    backgroundColor.Ok.Active,
			Deleted:     backgroundColor.Error.Active,
			Modified:    backgroundColor.Info.Active,
		},
		Highlight: theme.EditorHighlight{
			Selection:  player[1].SelectionColor,
			Occurrence: color.WithOpacity(bg[0], 0.12),
			// TODO: wire activeOccurrence into the editor's occurrence rendering.
			ActiveOccurrence: color.WithOpacity(bg[0], 0.16),
			MatchingBracket:  backgroundColor.L500.Active,
			Match:            color.WithOpacity(accent.Violet, 0.5),
			ActiveMatch:      color.WithOpacity(accent.Violet, 0.7),
			Related:          backgroundColor.L500.Focused,
		},
		Gutter: theme.EditorGutter{
			Primary: textColor.Placeholder,
			Active:  textColor.Active,
		},
	}

	linkURI := theme.Normal(accent.Green)
	linkURI.Underline = true
	linkText := theme.Normal(accent.Orange)
	linkText.Italic = true

	syntax := theme.Syntax{
		Primary:        theme.Normal(fg[0]),
		Comment:        theme.Normal(fg[2]),
		Punctuation:    theme.Normal(fg[2]),
		Constant:       theme.Normal(fg[3]),
		Keyword:        theme.Normal(accent.Blue),
		Function:       theme.Normal(accent.Yellow),
		Type:           theme.Normal(accent.Cyan),
		Variant:        theme.Normal(accent.Blue),
		Property:       theme.Normal(accent.Blue),
		Enum:           theme.Normal(accent.Orange),
		Operator:       theme.Normal(accent.Orange),
		String:         theme.Normal(accent.Orange),
		Number:         theme.Normal(accent.Green),
		Boolean:        theme.Normal(accent.Green),
		Predictive:     theme.Normal(textColor.Muted),
		Title:          theme.Bold(accent.Yellow),
		Emphasis:       theme.Normal(textColor.Feature),
		EmphasisStrong: theme.Bold(textColor.Feature),
		LinkURI:        linkURI,
		LinkText:       linkText,
	}

	return theme.Theme{
		Name:            name,
		BackgroundColor: backgroundColor,
		BorderColor:     borderColor,
		TextColor:       textColor,
		IconColor:       textColor,
		Editor:          editor,
		Syntax:          syntax,
		Player:          player,
		ShadowAlpha:     tokens.Number(solarizedShadowAlpha),
	}
}
