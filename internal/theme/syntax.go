package theme

import (
	"github.com/opencode-ai/themes/internal/color"
	"github.com/opencode-ai/themes/internal/tokens"
)

// SyntaxStyle is the highlight for one token kind.
type SyntaxStyle struct {
	Color     color.Color       `json:"color" yaml:"color"`
	Weight    tokens.FontWeight `json:"weight" yaml:"weight"`
	Underline bool              `json:"underline,omitempty" yaml:"underline,omitempty"`
	Italic    bool              `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// Normal is a regular-weight style.
func Normal(c color.Color) SyntaxStyle {
	return SyntaxStyle{Color: c, Weight: tokens.WeightNormal}
}

// Bold is a bold style.
func Bold(c color.Color) SyntaxStyle {
	return SyntaxStyle{Color: c, Weight: tokens.WeightBold}
}

// Syntax holds a style per token kind.
type Syntax struct {
	Primary        SyntaxStyle `json:"primary" yaml:"primary"`
	Comment        SyntaxStyle `json:"comment" yaml:"comment"`
	Punctuation    SyntaxStyle `json:"punctuation" yaml:"punctuation"`
	Constant       SyntaxStyle `json:"constant" yaml:"constant"`
	Keyword        SyntaxStyle `json:"keyword" yaml:"keyword"`
	Function       SyntaxStyle `json:"function" yaml:"function"`
	Type           SyntaxStyle `json:"type" yaml:"type"`
	Variant        SyntaxStyle `json:"variant" yaml:"variant"`
	Property       SyntaxStyle `json:"property" yaml:"property"`
	Enum           SyntaxStyle `json:"enum" yaml:"enum"`
	Operator       SyntaxStyle `json:"operator" yaml:"operator"`
	String         SyntaxStyle `json:"string" yaml:"string"`
	Number         SyntaxStyle `json:"number" yaml:"number"`
	Boolean        SyntaxStyle `json:"boolean" yaml:"boolean"`
	Predictive     SyntaxStyle `json:"predictive" yaml:"predictive"`
	Title          SyntaxStyle `json:"title" yaml:"title"`
	Emphasis       SyntaxStyle `json:"emphasis" yaml:"emphasis"`
	EmphasisStrong SyntaxStyle `json:"emphasis.strong" yaml:"emphasis.strong"`
	LinkURI        SyntaxStyle `json:"linkUri" yaml:"linkUri"`
	LinkText       SyntaxStyle `json:"linkText" yaml:"linkText"`
}

// SyntaxKind pairs a token kind name with its style.
type SyntaxKind struct {
	Name  string
	Style SyntaxStyle
}

// Kinds lists every token kind in declaration order.
func (s Syntax) Kinds() []SyntaxKind {
	return []SyntaxKind{
		{"primary", s.Primary},
		{"comment", s.Comment},
		{"punctuation", s.Punctuation},
		{"constant", s.Constant},
		{"keyword", s.Keyword},
		{"function", s.Function},
		{"type", s.Type},
		{"variant", s.Variant},
		{"property", s.Property},
		{"enum", s.Enum},
		{"operator", s.Operator},
		{"string", s.String},
		{"number", s.Number},
		{"boolean", s.Boolean},
		{"predictive", s.Predictive},
		{"title", s.Title},
		{"emphasis", s.Emphasis},
		{"emphasis.strong", s.EmphasisStrong},
		{"linkUri", s.LinkURI},
		{"linkText", s.LinkText},
	}
}
