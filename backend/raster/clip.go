package raster

import (
	"image"
	"image/color"

	"github.com/flowglyph/flowglyph/instructions"
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/layout"
)

// clipMask rasterizes rect (rounded by radius) as an image.Alpha covering
// bounds, reusing instructions.Rectangle's own fill rasterization rather
// than hand-rolling a second rounded-rect rasterizer: a solid white
// rectangle is drawn into a scratch RGBA and its alpha channel lifted out,
// since Rectangle.Draw already anti-aliases the corner arcs correctly.
func clipMask(bounds image.Rectangle, rect layout.Rect, radius float64) *image.Alpha {
	scratch := image.NewRGBA(bounds)
	shape := instructions.NewRectangle(rect.X, rect.Y, rect.Width, rect.Height).
		SetRadius(radius).
		SetFillColor(patterns.Color{R: 255, G: 255, B: 255, A: 255}).
		SetLineWidth(0)
	shape.Draw(scratch, scratch)

	mask := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := scratch.At(x, y).RGBA()
			mask.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return mask
}
