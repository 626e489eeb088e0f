package color

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hex   string
		alpha float64
	}{
		{name: "long", input: "#dc322f", hex: "#dc322f", alpha: 1},
		{name: "upper", input: "#DC322F", hex: "#dc322f", alpha: 1},
		{name: "short", input: "#fff", hex: "#ffffff", alpha: 1},
		{name: "with alpha", input: "#00000080", hex: "#00000080", alpha: 128.0 / 255},
		{name: "padded", input: "  #268bd2 ", hex: "#268bd2", alpha: 1},
		{name: "rgba", input: "rgba(253, 246, 227, 0.07)", hex: "#fdf6e312", alpha: 0.07},
		{name: "rgba compact", input: "RGBA(38,139,210,1)", hex: "#268bd2", alpha: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.hex, c.Hex())
			require.InDelta(t, tt.alpha, c.Alpha(), 1e-9)
			require.False(t, c.IsZero())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "dc322f", "#12", "#zzzzzz", "#1234567", "#dc322fzz", "#12345g", "#g23456", "#12g",
		"rgba(1,2,3)", "rgba(256,0,0,0.5)", "rgba(1,2,3,1.5)", "rgba(1,2,3,x)", "rgba(1,2,3,0.5"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("Parse(%q) = %v, want ErrInvalidColor", input, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { MustParse("nope") })
}

func TestWithOpacityKeepsChannels(t *testing.T) {
	base := MustParse("#dc322f")

	for _, alpha := range []float64{0.07, 0.12, 0.16, 0.5, 0.7} {
		faded := WithOpacity(base, alpha)

		r1, g1, b1 := base.RGB255()
		r2, g2, b2 := faded.RGB255()
		require.Equal(t, [3]uint8{r1, g1, b1}, [3]uint8{r2, g2, b2})
		require.Equal(t, alpha, faded.Alpha())
		require.False(t, faded.Opaque())
	}

	require.Equal(t, "#dc322f12", WithOpacity(base, 0.07).Hex())
	require.Equal(t, 0.0, WithOpacity(base, -1).Alpha())
	require.Equal(t, 1.0, WithOpacity(base, 3).Alpha())
}

func TestZeroColor(t *testing.T) {
	var c Color
	require.True(t, c.IsZero())
	require.Equal(t, "", c.Hex())
	require.True(t, WithOpacity(c, 0.5).IsZero())
}

func TestFlatten(t *testing.T) {
	white := MustParse("#ffffff")
	black := MustParse("#000000")

	flat := WithOpacity(white, 0.5).Flatten(black)
	require.True(t, flat.Opaque())
	require.Equal(t, "#808080", flat.Hex())

	require.Equal(t, white, white.Flatten(black))
}

func TestLipgloss(t *testing.T) {
	c := WithOpacity(MustParse("#268bd2"), 0.2)
	require.Equal(t, "#268bd2", string(c.Lipgloss()))
}

func TestEncoding(t *testing.T) {
	type doc struct {
		Fg Color `json:"fg" yaml:"fg"`
	}
	in := doc{Fg: WithOpacity(MustParse("#6c71c4"), 0.5)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"fg":"rgba(108,113,196,0.5)"}`, string(data))

	var fromJSON doc
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Equal(t, in.Fg, fromJSON.Fg)

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(out), "rgba(108,113,196,0.5)")

	var fromYAML doc
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	require.Equal(t, in.Fg, fromYAML.Fg)

	err = yaml.Unmarshal([]byte("fg: [1, 2]\n"), &fromYAML)
	require.ErrorIs(t, err, ErrInvalidColor)
}

func TestTextEncodingIsExact(t *testing.T) {
	base := MustParse("#fdf6e3")
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "opaque", color: base, want: "#fdf6e3"},
		{name: "byte alpha", color: WithOpacity(base, 0.8), want: "#fdf6e3cc"},
		{name: "fractional alpha", color: WithOpacity(base, 0.07), want: "rgba(253,246,227,0.07)"},
		{name: "selection", color: WithOpacity(base, 0.24), want: "rgba(253,246,227,0.24)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.color.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tt.want, string(data))

			var decoded Color
			require.NoError(t, decoded.UnmarshalText(data))
			require.Equal(t, tt.color, decoded)
		})
	}
}

func TestLightness(t *testing.T) {
	require.Less(t, MustParse("#002b36").Lightness(), 0.5)
	require.Greater(t, MustParse("#fdf6e3").Lightness(), 0.5)
}
