package raster

import (
	"math"

	"github.com/flowglyph/flowglyph/instructions"
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/scene"
)

// fillRect paints a (possibly per-corner-rounded) filled rect, adapting
// instructions.Rectangle with only its fill pattern set.
func (r *Raster) fillRect(ev scene.Event) {
	base, overlay := r.top()
	rect := instructions.NewRectangle(ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height).
		SetRadius(ev.BorderRadius).
		SetFillPattern(ev.Paint).
		SetLineWidth(0)
	rect.Draw(base, overlay)
}

// strokeRect paints a stroked (possibly rounded, possibly dashed) rect
// border with no fill. A plain solid border reuses instructions.Rectangle
// directly; a dashed one builds the same rounded-rect outline by hand
// through instructions.Line's exported path methods (Rectangle's own
// corner-arc builder is unexported) so SetDashes has a path to act on.
func (r *Raster) strokeRect(ev scene.Event) {
	base, overlay := r.top()
	if len(ev.Dashing) == 0 {
		rect := instructions.NewRectangle(ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height).
			SetRadius(ev.BorderRadius).
			SetFillColor(patterns.Color{}).
			SetStrokePattern(ev.Paint).
			SetLineWidth(ev.StrokeWidth).
			SetStrokePosition(instructions.StrokeInside)
		rect.Draw(base, overlay)
		return
	}

	line := instructions.NewLine().
		SetLineWidth(ev.StrokeWidth).
		SetStrokePattern(ev.Paint).
		SetDashes(ev.Dashing)
	traceRoundedRect(line, ev.Rect.X, ev.Rect.Y, ev.Rect.Width, ev.Rect.Height, ev.BorderRadius)
	line.Stroke()
	line.Draw(base, overlay)
}

// traceRoundedRect draws a rounded-rect outline onto line using only its
// exported MoveTo/LineTo, approximating each corner's quarter circle with
// 8 segments — the same step count instructions.Rectangle defaults to.
func traceRoundedRect(line *instructions.Line, x, y, w, h, radius float64) {
	const steps = 8
	r := math.Max(0, math.Min(radius, math.Min(w, h)/2))

	line.MoveTo(x+r, y)
	line.LineTo(x+w-r, y)
	traceQuarterArc(line, x+w-r, y+r, r, 270, 360, steps)
	line.LineTo(x+w, y+h-r)
	traceQuarterArc(line, x+w-r, y+h-r, r, 0, 90, steps)
	line.LineTo(x+r, y+h)
	traceQuarterArc(line, x+r, y+h-r, r, 90, 180, steps)
	line.LineTo(x, y+r)
	traceQuarterArc(line, x+r, y+r, r, 180, 270, steps)
	line.ClosePath()
}

func traceQuarterArc(line *instructions.Line, cx, cy, r float64, degStart, degEnd float64, steps int) {
	if r <= 0 {
		return
	}
	step := (degEnd - degStart) / float64(steps)
	for i := 1; i <= steps; i++ {
		a := (degStart + float64(i)*step) * math.Pi / 180
		line.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// drawLine strokes a single straight segment, used for per-side border
// degradation and for the separator element.
func (r *Raster) drawLine(ev scene.Event) {
	base, overlay := r.top()
	line := instructions.NewLine().
		SetLineWidth(ev.StrokeWidth).
		SetStrokePattern(ev.Paint).
		SetDashes(ev.Dashing)
	line.MoveTo(ev.P0.X, ev.P0.Y)
	line.LineTo(ev.P1.X, ev.P1.Y)
	line.Stroke()
	line.Draw(base, overlay)
}
