// Package theme defines the structured token set an editor theme provides:
// surface, border and text colors per state, editor highlights, syntax
// styles and collaborator colors.
//
// Field names and nesting are the contract consumed by the editor's styling
// layer. Renaming or removing a field is a breaking change.
package theme

import (
	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/tokens"
)

// StateColors holds one color per interaction state.
type StateColors struct {
	Base    color.Color `json:"base" yaml:"base"`
	Hovered color.Color `json:"hovered" yaml:"hovered"`
	Active  color.Color `json:"active" yaml:"active"`
	Focused color.Color `json:"focused" yaml:"focused"`
}

// States uses c for every state.
func States(c color.Color) StateColors {
	return StateColors{Base: c, Hovered: c, Active: c, Focused: c}
}

// Layer uses base at rest and interaction for hovered, active and focused.
func Layer(base, interaction color.Color) StateColors {
	return StateColors{Base: base, Hovered: interaction, Active: interaction, Focused: interaction}
}

// BackgroundColors are the surface colors by elevation and status.
type BackgroundColors struct {
	L100    StateColors `json:"100" yaml:"100"`
	L300    StateColors `json:"300" yaml:"300"`
	L500    StateColors `json:"500" yaml:"500"`
	On300   StateColors `json:"on300" yaml:"on300"`
	On500   StateColors `json:"on500" yaml:"on500"`
	Ok      StateColors `json:"ok" yaml:"ok"`
	Error   StateColors `json:"error" yaml:"error"`
	Warning StateColors `json:"warning" yaml:"warning"`
	Info    StateColors `json:"info" yaml:"info"`
}

// BorderColors are the border roles.
type BorderColors struct {
	Primary   color.Color `json:"primary" yaml:"primary"`
	Secondary color.Color `json:"secondary" yaml:"secondary"`
	Muted     color.Color `json:"muted" yaml:"muted"`
	Focused   color.Color `json:"focused" yaml:"focused"`
	Active    color.Color `json:"active" yaml:"active"`
	Ok        color.Color `json:"ok" yaml:"ok"`
	Error     color.Color `json:"error" yaml:"error"`
	Warning   color.Color `json:"warning" yaml:"warning"`
	Info      color.Color `json:"info" yaml:"info"`
}

// TextColors are the text roles. Icons reuse the same set.
type TextColors struct {
	Primary     color.Color `json:"primary" yaml:"primary"`
	Secondary   color.Color `json:"secondary" yaml:"secondary"`
	Muted       color.Color `json:"muted" yaml:"muted"`
	Placeholder color.Color `json:"placeholder" yaml:"placeholder"`
	Active      color.Color `json:"active" yaml:"active"`
	// Feature has no settled meaning yet; themes currently reuse their info hue.
	Feature color.Color `json:"feature" yaml:"feature"`
	Ok      color.Color `json:"ok" yaml:"ok"`
	Error   color.Color `json:"error" yaml:"error"`
	Warning color.Color `json:"warning" yaml:"warning"`
	Info    color.Color `json:"info" yaml:"info"`
}

// EditorLine colors whole-line highlights.
type EditorLine struct {
	Active      color.Color `json:"active" yaml:"active"`
	Highlighted color.Color `json:"highlighted" yaml:"highlighted"`
	Inserted    color.Color `json:"inserted" yaml:"inserted"`
	Deleted     color.Color `json:"deleted" yaml:"deleted"`
	Modified    color.Color `json:"modified" yaml:"modified"`
}

// EditorHighlight colors range highlights inside the buffer.
type EditorHighlight struct {
	Selection  color.Color `json:"selection" yaml:"selection"`
	Occurrence color.Color `json:"occurrence" yaml:"occurrence"`
	// ActiveOccurrence is emitted but the editor does not consume it yet.
	ActiveOccurrence color.Color `json:"activeOccurrence" yaml:"activeOccurrence"`
	MatchingBracket  color.Color `json:"matchingBracket" yaml:"matchingBracket"`
	Match            color.Color `json:"match" yaml:"match"`
	ActiveMatch      color.Color `json:"activeMatch" yaml:"activeMatch"`
	Related          color.Color `json:"related" yaml:"related"`
}

// EditorGutter colors line numbers.
type EditorGutter struct {
	Primary color.Color `json:"primary" yaml:"primary"`
	Active  color.Color `json:"active" yaml:"active"`
}

// Editor holds editor-specific colors.
type Editor struct {
	Background        color.Color     `json:"background" yaml:"background"`
	IndentGuide       color.Color     `json:"indent_guide" yaml:"indent_guide"`
	IndentGuideActive color.Color     `json:"indent_guide_active" yaml:"indent_guide_active"`
	Line              EditorLine      `json:"line" yaml:"line"`
	Highlight         EditorHighlight `json:"highlight" yaml:"highlight"`
	Gutter            EditorGutter    `json:"gutter" yaml:"gutter"`
}

// Theme is the complete named bundle consumed by the rendering layer.
type Theme struct {
	Name            string             `json:"name" yaml:"name"`
	BackgroundColor BackgroundColors   `json:"backgroundColor" yaml:"backgroundColor"`
	BorderColor     BorderColors       `json:"borderColor" yaml:"borderColor"`
	TextColor       TextColors         `json:"textColor" yaml:"textColor"`
	IconColor       TextColors         `json:"iconColor" yaml:"iconColor"`
	Editor          Editor             `json:"editor" yaml:"editor"`
	Syntax          Syntax             `json:"syntax" yaml:"syntax"`
	Player          Players            `json:"player" yaml:"player"`
	ShadowAlpha     tokens.NumberToken `json:"shadowAlpha" yaml:"shadowAlpha"`
}

// IsDark reports whether the editor background is a dark color.
func (t Theme) IsDark() bool {
	return t.Editor.Background.Lightness() < 0.5
}

// Clone returns a copy that shares no mutable state with t.
func (t Theme) Clone() Theme {
	out := t
	if t.Player != nil {
		out.Player = make(Players, len(t.Player))
		for id, player := range t.Player {
			out.Player[id] = player
		}
	}
	return out
}
