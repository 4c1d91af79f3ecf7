package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/units"
)

func TestParseUnit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want units.Unit
	}{
		{"auto_keyword", "auto", units.Auto},
		{"auto_case_insensitive", "AUTO", units.Auto},
		{"bare_number_is_pixels", "42", units.Pixels(42)},
		{"px_suffix", "42px", units.Pixels(42)},
		{"px_suffix_case_insensitive", "42PX", units.Pixels(42)},
		{"percent_suffix", "50%", units.Percent(50)},
		{"em_suffix", "1.5em", units.Em(1.5)},
		{"garbage_collapses_to_auto", "not-a-unit", units.Auto},
		{"empty_collapses_to_auto", "", units.Auto},
	}
	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			got := units.Parse(cse.raw)
			require.Equal(t, cse.want, got)
		})
	}
}

func TestTryParseReportsFailure(t *testing.T) {
	_, ok := units.TryParse("garbage")
	require.False(t, ok)

	u, ok := units.TryParse("10px")
	require.True(t, ok)
	require.Equal(t, units.Pixels(10), u)
}

func TestResolve(t *testing.T) {
	v, ok := units.Pixels(10).Resolve(100, 16)
	require.True(t, ok)
	require.Equal(t, 10.0, v)

	v, ok = units.Percent(50).Resolve(200, 16)
	require.True(t, ok)
	require.Equal(t, 100.0, v)

	v, ok = units.Em(2).Resolve(100, 16)
	require.True(t, ok)
	require.Equal(t, 32.0, v)

	_, ok = units.Auto.Resolve(100, 16)
	require.False(t, ok)
}

func TestParseAbsoluteUsesIntrinsicSubstitution(t *testing.T) {
	require.Equal(t, 10.0, units.Pixels(10).ParseAbsolute())
	require.Equal(t, 0.0, units.Percent(50).ParseAbsolute())
	require.Equal(t, 32.0, units.Em(2).ParseAbsolute())
	require.Equal(t, 0.0, units.Auto.ParseAbsolute())
}

func TestParsePaddingShorthandRules(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want units.PaddingValues
	}{
		{"one_value_all_sides", "10px", units.PaddingValues{Top: 10, Right: 10, Bottom: 10, Left: 10}},
		{"two_values_vert_horiz", "10px 20px", units.PaddingValues{Top: 10, Right: 20, Bottom: 10, Left: 20}},
		{"three_values", "10px 20px 30px", units.PaddingValues{Top: 10, Right: 20, Bottom: 30, Left: 20}},
		{"four_values", "1px 2px 3px 4px", units.PaddingValues{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"default_zero", "0", units.PaddingValues{}},
	}
	for _, cse := range cases {
		t.Run(cse.name, func(t *testing.T) {
			got := units.ParsePadding(cse.raw, 0, 16)
			require.Equal(t, cse.want, got)
		})
	}
}

func TestPaddingSpecDeferredResolve(t *testing.T) {
	spec := units.ParsePaddingSpec("10% 4px")
	require.Equal(t, units.Percent(10), spec.Top)
	require.Equal(t, units.Pixels(4), spec.Right)

	got := spec.Resolve(200, 16)
	require.Equal(t, 20.0, got.Top)
	require.Equal(t, 4.0, got.Right)
}

func TestParsePaddingClampsNegative(t *testing.T) {
	got := units.ParsePadding("-10px", 0, 16)
	require.Equal(t, 0.0, got.Top)
}

func TestParseMarginAuto(t *testing.T) {
	m := units.ParseMargin("auto 10px")
	require.True(t, m.Top.Auto)
	require.True(t, m.Bottom.Auto)
	right, ok := m.Right.Resolve(0, 16)
	require.True(t, ok)
	require.Equal(t, 10.0, right)
	_, ok = m.Top.Resolve(0, 16)
	require.False(t, ok)
}

func TestParseBorderShorthand(t *testing.T) {
	side := units.ParseBorderShorthand("2px dashed #ff0000")
	require.Equal(t, 2.0, side.Width)
	require.Equal(t, units.BorderDashed, side.Style)
	require.Equal(t, "#ff0000", side.ColorHex)

	def := units.ParseBorderShorthand("")
	require.Equal(t, units.DefaultBorderSide, def)

	none := units.ParseBorderShorthand("none")
	require.Equal(t, 0.0, none.Width)
	require.Equal(t, units.BorderNone, none.Style)
}
