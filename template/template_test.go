package template_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

func TestDefaultBaseAttributes(t *testing.T) {
	base := template.DefaultBaseAttributes()
	require.Equal(t, units.Auto, base.Width)
	require.Equal(t, units.Auto, base.Height)
	require.Equal(t, 0.0, base.Grow)
	require.Equal(t, 1.0, base.Shrink)
	require.Equal(t, template.DisplayFlex, base.Display)
	require.Equal(t, template.PosStatic, base.Position)
	require.Equal(t, 1.0, base.Opacity)
	require.Equal(t, template.RotateNone, base.Rotate.Kind)
}

func TestParseRotate(t *testing.T) {
	cases := []struct {
		raw  string
		want template.Rotate
	}{
		{"none", template.Rotate{Kind: template.RotateNone}},
		{"", template.Rotate{Kind: template.RotateNone}},
		{"right", template.Rotate{Kind: template.RotateRight}},
		{"left", template.Rotate{Kind: template.RotateLeft}},
		{"flip", template.Rotate{Kind: template.RotateFlip}},
		{"45", template.Rotate{Kind: template.RotateDegrees, Degrees: 45}},
		{"45deg", template.Rotate{Kind: template.RotateDegrees, Degrees: 45}},
		{"garbage", template.Rotate{Kind: template.RotateNone}},
	}
	for _, cse := range cases {
		t.Run(cse.raw, func(t *testing.T) {
			got := template.ParseRotate(cse.raw)
			require.Equal(t, cse.want, got)
		})
	}
}

func TestRotateDegreesNormalized(t *testing.T) {
	require.Equal(t, 90.0, template.Rotate{Kind: template.RotateRight}.DegreesNormalized())
	require.Equal(t, -90.0, template.Rotate{Kind: template.RotateLeft}.DegreesNormalized())
	require.Equal(t, 180.0, template.Rotate{Kind: template.RotateFlip}.DegreesNormalized())
	require.Equal(t, 30.0, template.Rotate{Kind: template.RotateDegrees, Degrees: 30}.DegreesNormalized())
	require.Equal(t, 0.0, template.Rotate{Kind: template.RotateNone}.DegreesNormalized())
}

func TestFlexDirectionHelpers(t *testing.T) {
	require.True(t, template.DirectionRow.IsRow())
	require.True(t, template.DirectionRowReverse.IsRow())
	require.False(t, template.DirectionColumn.IsRow())
	require.True(t, template.DirectionRowReverse.IsReversed())
	require.True(t, template.DirectionColumnReverse.IsReversed())
	require.False(t, template.DirectionRow.IsReversed())
}

func TestElementTaggedUnion(t *testing.T) {
	el := template.Element{
		Kind: template.KindText,
		Base: template.DefaultBaseAttributes(),
		Text: &template.TextAttributes{
			Content: "hello",
			Size:    units.Em(1),
			Align:   template.TextAlignCenter,
		},
	}
	require.Equal(t, template.KindText, el.Kind)
	require.Nil(t, el.Flex)
	require.NotNil(t, el.Text)
	require.Equal(t, "hello", el.Text.Content)
}
