package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/flowglyph/flowglyph/effects"
	"github.com/flowglyph/flowglyph/instructions"
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/scene"
)

// drawShadow paints a box_shadow by rasterizing the rounded-rect shape
// into a scratch buffer and running it through effects.DropShadowEffect
// — the teacher's separable box-blur shadow filter, adapted from
// layer-effect ("apply to whatever's already drawn in dst") to
// scene-event ("synthesize a shape mask, then blur it") use. The scratch
// buffer's own rect fill is left in place after blurring: the FillRect/
// StrokeRect events that always follow a Shadow event in emission order
// repaint the exact same rect on top, so the shadow's solid donor shape
// never shows through as a flat white box.
func (r *Raster) drawShadow(ev scene.Event) {
	sh := ev.Shadow
	if sh.Color.A == 0 {
		return
	}
	_, overlay := r.top()
	bounds := overlay.Bounds()

	scratch := image.NewRGBA(bounds)
	instructions.NewRectangle(ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height).
		SetRadius(ev.BorderRadius).
		SetFillColor(patterns.Color{R: 255, G: 255, B: 255, A: 255}).
		SetLineWidth(0).
		Draw(scratch, scratch)

	tint := color.NRGBA{R: sh.Color.R, G: sh.Color.G, B: sh.Color.B, A: sh.Color.A}
	effects.NewDropShadow(sh.OffsetX, sh.OffsetY, sh.Blur, 0, tint, 1).Apply(scratch)

	draw.Draw(overlay, bounds, scratch, bounds.Min, draw.Over)
}
