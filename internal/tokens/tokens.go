// Package tokens defines the non-color design tokens shared by themes.
package tokens

// FontWeight names a font weight as the editor's styling layer expects it.
type FontWeight string

const (
	WeightThin       FontWeight = "thin"
	WeightExtraLight FontWeight = "extra_light"
	WeightLight      FontWeight = "light"
	WeightNormal     FontWeight = "normal"
	WeightMedium     FontWeight = "medium"
	WeightSemibold   FontWeight = "semibold"
	WeightBold       FontWeight = "bold"
	WeightExtraBold  FontWeight = "extra_bold"
	WeightBlack      FontWeight = "black"
)

var weightValues = map[FontWeight]int{
	WeightThin:       100,
	WeightExtraLight: 200,
	WeightLight:      300,
	WeightNormal:     400,
	WeightMedium:     500,
	WeightSemibold:   600,
	WeightBold:       700,
	WeightExtraBold:  800,
	WeightBlack:      900,
}

// Numeric returns the CSS-style weight, or 0 for unknown names.
func (w FontWeight) Numeric() int {
	return weightValues[w]
}

// Valid reports whether w is a known weight.
func (w FontWeight) Valid() bool {
	_, ok := weightValues[w]
	return ok
}

// IsBold reports whether terminals should render the weight as bold.
func (w FontWeight) IsBold() bool {
	return w.Numeric() >= weightValues[WeightSemibold]
}

// NumberTokenType tags NumberToken values.
const NumberTokenType = "number"

// NumberToken is a numeric design token tagged with its kind.
type NumberToken struct {
	Value float64 `json:"value" yaml:"value"`
	Type  string  `json:"type" yaml:"type"`
}

// Number builds a NumberToken.
func Number(value float64) NumberToken {
	return NumberToken{Value: value, Type: NumberTokenType}
}
