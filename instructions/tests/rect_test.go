package instructions_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/colors"
	"github.com/flowglyph/flowglyph/instructions"
)

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func at(img *image.RGBA, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRectangleFillsInterior(t *testing.T) {
	canvas := newCanvas(100, 100)
	instructions.NewRectangle(10, 10, 50, 50).
		SetFillColor(colors.RGBA(255, 0, 0, 255)).
		SetLineWidth(0).
		Draw(canvas, canvas)

	got := at(canvas, 30, 30)
	require.Equal(t, uint8(255), got.R)
	require.Equal(t, uint8(255), got.A)
}

func TestRectangleZeroSizeIsNoop(t *testing.T) {
	canvas := newCanvas(20, 20)
	require.NotPanics(t, func() {
		instructions.NewRectangle(10, 10, 0, 0).
			SetFillColor(colors.RGBA(255, 0, 0, 255)).
			Draw(canvas, canvas)
	})
	got := at(canvas, 10, 10)
	require.Equal(t, uint8(0), got.A)
}

func TestRectangleRoundedCornersClearCorner(t *testing.T) {
	canvas := newCanvas(100, 100)
	instructions.NewRectangle(10, 10, 80, 80).
		SetRadius(20).
		SetFillColor(colors.RGBA(0, 255, 0, 255)).
		SetLineWidth(0).
		Draw(canvas, canvas)

	// The extreme corner of a heavily rounded rect stays unpainted.
	corner := at(canvas, 11, 11)
	require.Equal(t, uint8(0), corner.A)
	center := at(canvas, 50, 50)
	require.Equal(t, uint8(255), center.G)
}

func TestRectangleSetCornerRadiiAppliesPerCorner(t *testing.T) {
	canvas := newCanvas(100, 100)
	instructions.NewRectangle(10, 10, 80, 80).
		SetCornerRadii(0, 30, 30, 0).
		SetFillColor(colors.RGBA(0, 0, 255, 255)).
		SetLineWidth(0).
		Draw(canvas, canvas)

	// Top-left has zero radius: the sharp corner is painted.
	sharp := at(canvas, 11, 11)
	require.Equal(t, uint8(255), sharp.A)
	// Top-right has a large radius: the corner stays unpainted.
	rounded := at(canvas, 88, 11)
	require.Equal(t, uint8(0), rounded.A)
}

func TestRectangleNoFillLeavesInteriorTransparent(t *testing.T) {
	canvas := newCanvas(100, 100)
	instructions.NewRectangle(10, 10, 60, 60).
		SetFillPattern(nil).
		SetStrokeColor(colors.RGBA(0, 255, 0, 255)).
		SetLineWidth(4).
		SetStrokePosition(instructions.StrokeInside).
		Draw(canvas, canvas)

	interior := at(canvas, 40, 40)
	require.Equal(t, uint8(0), interior.A)
	edge := at(canvas, 11, 40)
	require.Greater(t, edge.A, uint8(0))
}

func TestRectangleStrokePositionOutsideExtendsBeyondBounds(t *testing.T) {
	canvas := newCanvas(100, 100)
	instructions.NewRectangle(20, 20, 40, 40).
		SetFillPattern(nil).
		SetStrokeColor(colors.RGBA(255, 255, 0, 255)).
		SetLineWidth(6).
		SetStrokePosition(instructions.StrokeOutside).
		Draw(canvas, canvas)

	// Outside alignment paints beyond the nominal edge at x=20.
	outside := at(canvas, 18, 40)
	require.Greater(t, outside.A, uint8(0))
}

func TestRectangleOutOfBoundsClipsToCanvas(t *testing.T) {
	canvas := newCanvas(50, 50)
	require.NotPanics(t, func() {
		instructions.NewRectangle(-20, -20, 100, 100).
			SetFillColor(colors.RGBA(10, 20, 30, 255)).
			SetLineWidth(0).
			Draw(canvas, canvas)
	})
	got := at(canvas, 25, 25)
	require.Equal(t, uint8(255), got.A)
}
