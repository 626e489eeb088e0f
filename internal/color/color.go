// Package color provides the opaque color value used by theme tokens.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned when a hex string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB value with an alpha channel in [0,1].
//
// The zero value is an unset color; use Parse, MustParse or WithOpacity to
// build one.
type Color struct {
	rgb   colorful.Color
	alpha float64
	valid bool
}

// Parse reads #rgb, #rrggbb, #rrggbbaa or rgba(r,g,b,a) with a decimal alpha.
func Parse(hex string) (Color, error) {
	value := strings.ToLower(strings.TrimSpace(hex))
	if strings.HasPrefix(value, "rgba(") {
		return parseRGBA(hex, value)
	}
	if !strings.HasPrefix(value, "#") || !isHexDigits(value[1:]) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	alpha := 1.0
	switch len(value) {
	case 4, 7:
	case 9:
		raw, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		alpha = float64(raw) / 255
		value = value[:7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	rgb, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return Color{rgb: rgb, alpha: alpha, valid: true}, nil
}

// MustParse is Parse for package-level palette constants.
func MustParse(hex string) Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// WithOpacity returns c with its alpha replaced. RGB channels are unchanged.
func WithOpacity(c Color, alpha float64) Color {
	return Color{rgb: c.rgb, alpha: clamp(alpha), valid: c.valid}
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool {
	return !c.valid
}

// Alpha returns the opacity in [0,1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// RGB255 returns the 8-bit channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.rgb.RGB255()
}

// Lightness returns the CIE L* of the color, scaled to [0,1].
func (c Color) Lightness() float64 {
	l, _, _ := c.rgb.Lab()
	return l
}

// Opaque reports whether alpha is 1.
func (c Color) Opaque() bool {
	return c.alpha >= 1
}

// Hex renders #rrggbb, or #rrggbbaa when the color is translucent.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	if c.Opaque() {
		return c.rgb.Hex()
	}
	return fmt.Sprintf("%s%02x", c.rgb.Hex(), uint8(math.Round(c.alpha*255)))
}

func (c Color) String() string {
	return c.Hex()
}

// text is the lossless encoding: Hex when the alpha survives an 8-bit
// channel, rgba(r,g,b,a) otherwise.
func (c Color) text() string {
	if !c.valid || c.Opaque() || alphaFitsByte(c.alpha) {
		return c.Hex()
	}
	r, g, b := c.rgb.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(c.alpha, 'g', -1, 64))
}

// Flatten composites c over an opaque background and returns an opaque color.
func (c Color) Flatten(background Color) Color {
	if c.Opaque() || !background.valid {
		return Color{rgb: c.rgb, alpha: 1, valid: c.valid}
	}
	blended := c.rgb.BlendRgb(background.rgb, 1-c.alpha).Clamped()
	return Color{rgb: blended, alpha: 1, valid: c.valid}
}

// Lipgloss converts the color for terminal rendering. Alpha is dropped.
func (c Color) Lipgloss() lipgloss.Color {
	if !c.valid {
		return lipgloss.Color("")
	}
	return lipgloss.Color(c.rgb.Hex())
}

// MarshalText encodes the color without losing alpha precision.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.text()), nil
}

// UnmarshalText decodes a hex string.
func (c *Color) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*c = Color{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color like MarshalText.
func (c Color) MarshalYAML() (any, error) {
	return c.text(), nil
}

// UnmarshalYAML decodes a hex scalar.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected hex string", ErrInvalidColor, node.Line)
	}
	return c.UnmarshalText([]byte(node.Value))
}

func parseRGBA(raw, value string) (Color, error) {
	invalid := fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	if !strings.HasSuffix(value, ")") {
		return Color{}, invalid
	}
	parts := strings.Split(value[len("rgba("):len(value)-1], ",")
	if len(parts) != 4 {
		return Color{}, invalid
	}

	var channels [3]uint64
	for i := range channels {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return Color{}, invalid
		}
		channels[i] = v
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Color{}, invalid
	}

	// Same conversion as the hex path so equal channels compare equal.
	rgb, err := colorful.Hex(fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]))
	if err != nil {
		return Color{}, invalid
	}
	return Color{rgb: rgb, alpha: alpha, valid: true}, nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func alphaFitsByte(alpha float64) bool {
	return float64(uint8(math.Round(alpha*255)))/255 == alpha
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
