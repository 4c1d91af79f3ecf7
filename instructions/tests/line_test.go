package instructions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/colors"
	"github.com/flowglyph/flowglyph/instructions"
)

func TestLineStrokeDrawsBetweenEndpoints(t *testing.T) {
	canvas := newCanvas(256, 64)
	instructions.NewLine().
		SetLineWidth(4).
		SetStrokePattern(colors.NewSolid(colors.RGBA(255, 0, 0, 255))).
		MoveTo(20, 20).
		LineTo(200, 20).
		Stroke().
		Draw(canvas, canvas)

	got := at(canvas, 100, 20)
	require.Greater(t, got.A, uint8(0))
	require.Equal(t, uint8(255), got.R)
}

func TestLineFillClosesPathAndFillsInterior(t *testing.T) {
	canvas := newCanvas(256, 256)
	instructions.NewLine().
		SetFillPattern(colors.NewSolid(colors.RGBA(0, 128, 0, 255))).
		MoveTo(50, 50).
		LineTo(200, 50).
		LineTo(200, 200).
		LineTo(50, 200).
		ClosePath().
		Fill().
		Draw(canvas, canvas)

	interior := at(canvas, 100, 100)
	require.Equal(t, uint8(128), interior.G)
	require.Equal(t, uint8(255), interior.A)

	outside := at(canvas, 10, 10)
	require.Equal(t, uint8(0), outside.A)
}

func TestLineDashedStrokeLeavesGaps(t *testing.T) {
	canvas := newCanvas(256, 64)
	instructions.NewLine().
		SetLineWidth(4).
		SetDashes([]float64{10, 10}).
		SetStrokePattern(colors.NewSolid(colors.RGBA(0, 0, 255, 255))).
		MoveTo(20, 20).
		LineTo(220, 20).
		Stroke().
		Draw(canvas, canvas)

	painted, gap := false, false
	for x := 20; x < 220; x++ {
		if at(canvas, x, 20).A > 0 {
			painted = true
		} else {
			gap = true
		}
	}
	require.True(t, painted, "dashed stroke should paint some pixels")
	require.True(t, gap, "dashed stroke should leave gaps")
}

func TestLineStrokeClearsPathAfterward(t *testing.T) {
	line := instructions.NewLine().
		SetLineWidth(2).
		SetStrokePattern(colors.NewSolid(colors.RGBA(255, 255, 255, 255))).
		MoveTo(0, 0).
		LineTo(10, 0).
		Stroke()

	canvasBefore := newCanvas(20, 20)
	line.Draw(canvasBefore, canvasBefore)
	require.Greater(t, at(canvasBefore, 5, 0).A, uint8(0))

	// Drawing again with no new path segments paints nothing further.
	canvasAfter := newCanvas(20, 20)
	line.Draw(canvasAfter, canvasAfter)
	require.Equal(t, uint8(0), at(canvasAfter, 5, 0).A)
}

func TestLineWithGradientStrokePaintsVaryingColor(t *testing.T) {
	canvas := newCanvas(256, 64)
	instructions.NewLine().
		SetLineWidth(8).
		SetStrokePattern(
			colors.NewLinearGradient(20, 20, 220, 20).
				AddColorStop(0, colors.RGBA(255, 0, 0, 255)).
				AddColorStop(1, colors.RGBA(0, 0, 255, 255)),
		).
		MoveTo(20, 20).
		LineTo(220, 20).
		Stroke().
		Draw(canvas, canvas)

	left := at(canvas, 25, 20)
	right := at(canvas, 215, 20)
	require.Greater(t, left.R, right.R)
	require.Greater(t, right.B, left.B)
}
