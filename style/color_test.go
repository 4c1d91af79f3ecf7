package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/style"
)

func TestParseColorHexForms(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want patterns.Color
	}{
		{"rgb_shorthand", "#f00", patterns.Color{R: 255, G: 0, B: 0, A: 255}},
		{"argb_shorthand_alpha_first", "#8f00", patterns.Color{R: 255, G: 0, B: 0, A: 136}},
		{"rrggbb", "#336699", patterns.Color{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"aarrggbb_alpha_first", "#80336699", patterns.Color{R: 0x33, G: 0x66, B: 0x99, A: 0x80}},
	}
	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			got, err := style.ParseColor(cse.raw)
			require.NoError(t, err)
			require.Equal(t, cse.want, got)
		})
	}
}

func TestParseColorFunctional(t *testing.T) {
	got, err := style.ParseColor("rgb(51, 102, 153)")
	require.NoError(t, err)
	require.Equal(t, patterns.Color{R: 0x33, G: 0x66, B: 0x99, A: 255}, got)

	got, err = style.ParseColor("rgba(51, 102, 153, 0.5)")
	require.NoError(t, err)
	require.Equal(t, uint8(0x33), got.R)
	require.InDelta(t, 127, int(got.A), 1)
}

func TestParseColorRejectsGarbage(t *testing.T) {
	_, err := style.ParseColor("not-a-color")
	require.Error(t, err)

	_, ok := style.TryParseColor("not-a-color")
	require.False(t, ok)
}

func TestBackgroundPlainColor(t *testing.T) {
	pat, err := style.Background("#ff0000", 100, 100)
	require.NoError(t, err)
	r, g, b, _ := pat.ColorAt(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)
}

func TestBackgroundLinearGradient(t *testing.T) {
	pat, err := style.Background("linear-gradient(90deg, #ff0000, #0000ff)", 100, 100)
	require.NoError(t, err)
	require.NotNil(t, pat)
}

func TestBackgroundRadialGradient(t *testing.T) {
	pat, err := style.Background("radial-gradient(#ff0000 0%, #0000ff 100%)", 100, 100)
	require.NoError(t, err)
	require.NotNil(t, pat)
}

func TestBackgroundConicGradientSingleStop(t *testing.T) {
	_, err := style.Background("conic-gradient(45deg, #fff)", 100, 100)
	require.NoError(t, err)
}
