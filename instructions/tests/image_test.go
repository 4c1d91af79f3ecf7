package instructions_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/instructions"
)

// solidSource returns a w x h RGBA image filled with c, used as a stand-in
// source raster for Image.Draw tests.
func solidSource(w, h int, c color.RGBA) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetRGBA(x, y, c)
		}
	}
	return src
}

func TestImageDrawStretchFillsTargetSize(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{R: 200, G: 0, B: 0, A: 255})
	canvas := newCanvas(40, 20)
	instructions.NewImage(src, 0, 0).
		SetSize(40, 20).
		SetFit(instructions.FitStretch).
		Draw(canvas, canvas)

	got := at(canvas, 35, 15)
	require.Equal(t, uint8(200), got.R)
	require.Equal(t, uint8(255), got.A)
}

func TestImageDrawContainLetterboxesNarrowerAxis(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{R: 0, G: 200, B: 0, A: 255})
	canvas := newCanvas(40, 20)
	instructions.NewImage(src, 0, 0).
		SetSize(40, 20).
		SetFit(instructions.FitContain).
		Draw(canvas, canvas)

	// A square source fit into a wide canvas leaves the corners empty.
	corner := at(canvas, 1, 1)
	require.Equal(t, uint8(0), corner.A)
	center := at(canvas, 20, 10)
	require.Equal(t, uint8(200), center.G)
}

func TestImageDrawCoverFillsEntireTarget(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{R: 0, G: 0, B: 200, A: 255})
	canvas := newCanvas(40, 20)
	instructions.NewImage(src, 0, 0).
		SetSize(40, 20).
		SetFit(instructions.FitCover).
		Draw(canvas, canvas)

	corner := at(canvas, 1, 1)
	require.Equal(t, uint8(200), corner.B)
	center := at(canvas, 20, 10)
	require.Equal(t, uint8(200), center.B)
}

func TestImageDrawPositionOffsetsPlacement(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{R: 255, G: 255, B: 0, A: 255})
	canvas := newCanvas(40, 40)
	instructions.NewImage(src, 15, 15).
		SetSize(10, 10).
		SetFit(instructions.FitStretch).
		Draw(canvas, canvas)

	require.Equal(t, uint8(255), at(canvas, 20, 20).R)
	require.Equal(t, uint8(0), at(canvas, 2, 2).A)
}

func TestImageDrawClipsAtCanvasBounds(t *testing.T) {
	src := solidSource(20, 20, color.RGBA{R: 50, G: 60, B: 70, A: 255})
	canvas := newCanvas(10, 10)
	require.NotPanics(t, func() {
		instructions.NewImage(src, -5, -5).
			SetSize(20, 20).
			SetFit(instructions.FitStretch).
			Draw(canvas, canvas)
	})
	got := at(canvas, 9, 9)
	require.Equal(t, uint8(50), got.R)
}

func TestImageDrawWithNilSourceIsNoop(t *testing.T) {
	canvas := newCanvas(10, 10)
	require.NotPanics(t, func() {
		instructions.NewImage(nil, 0, 0).Draw(canvas, canvas)
	})
}
