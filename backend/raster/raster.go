// Package raster is the reference scene.Consumer: it paints the
// backend-agnostic event stream scene.Emitter produces onto an
// image.RGBA, adapting the teacher's instructions/colors/effects/
// patterns drawing stack from a "call Shape.Draw yourself" model to
// "consume one scene.Event at a time".
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/flowglyph/flowglyph/internal/core/geom"
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/scene"
	"github.com/flowglyph/flowglyph/textmetrics"
)

// frameKind discriminates what a pushed frame composites back as when
// its matching pop event arrives.
type frameKind int

const (
	frameOpacity frameKind = iota
	frameTransform
	frameClip
)

// frame is one entry of the push/pop stack scene.Event's
// PushOpacity/PushTransform/PushClip events open. base is the parent
// frame's content at push time (read-only, used for blend-mode
// sampling by instructions.Line/Rectangle); overlay is the blank layer
// this frame's content draws into, composited back onto the parent's
// overlay when the matching pop arrives.
type frame struct {
	base, overlay *image.RGBA
	kind          frameKind

	opacity float64

	rotateDeg, cx, cy float64

	clipRect   layout.Rect
	clipRadius float64
}

// Raster is the reference scene.Consumer. Registry resolves a
// draw_text_run's FontHandle; Images/Svgs/Qrs/Barcodes are optional
// hooks resolving the resource-backed event kinds, left nil-safe so a
// Raster can be constructed before resource/providers wiring exists.
type Raster struct {
	canvas *image.RGBA
	stack  []*frame

	Registry *textmetrics.Registry

	Images   ImageDecoder
	Svgs     SvgRenderer
	Qrs      QrProvider
	Barcodes BarcodeProvider
}

// New creates a Raster painting onto a width x height transparent
// canvas, text resolved through registry (nil is valid: unregistered
// handles simply draw nothing readable via textmetrics' own fallback
// metrics).
func New(width, height int, registry *textmetrics.Registry) *Raster {
	return &Raster{
		canvas:   image.NewRGBA(image.Rect(0, 0, width, height)),
		Registry: registry,
	}
}

// Image returns the canvas painted so far. Safe to call mid-stream for
// progressive output; the returned image aliases the Raster's buffer.
func (r *Raster) Image() *image.RGBA { return r.canvas }

// top returns the innermost open frame's base/overlay, or the root
// canvas (as both) when the stack is empty.
func (r *Raster) top() (base, overlay *image.RGBA) {
	if len(r.stack) == 0 {
		return r.canvas, r.canvas
	}
	f := r.stack[len(r.stack)-1]
	return f.base, f.overlay
}

// Consume implements scene.Consumer, dispatching on ev.Kind.
func (r *Raster) Consume(ev scene.Event) {
	switch ev.Kind {
	case scene.KindPushOpacity:
		r.pushLayer(frameOpacity, ev)
	case scene.KindPushTransform:
		r.pushLayer(frameTransform, ev)
	case scene.KindPushClip:
		r.pushLayer(frameClip, ev)
	case scene.KindPopOpacity, scene.KindPopTransform, scene.KindPopClip:
		r.pop()
	case scene.KindShadow:
		r.drawShadow(ev)
	case scene.KindFillRect:
		r.fillRect(ev)
	case scene.KindStrokeRect:
		r.strokeRect(ev)
	case scene.KindDrawLine:
		r.drawLine(ev)
	case scene.KindDrawTextRun:
		r.drawTextRun(ev)
	case scene.KindDrawBitmap:
		r.drawBitmap(ev)
	case scene.KindDrawSvg:
		r.drawSvg(ev)
	case scene.KindDrawQr:
		r.drawQr(ev)
	case scene.KindDrawBarcode:
		r.drawBarcode(ev)
	}
}

func (r *Raster) pushLayer(kind frameKind, ev scene.Event) {
	_, parentOverlay := r.top()
	f := &frame{
		base:    parentOverlay,
		overlay: image.NewRGBA(r.canvas.Bounds()),
		kind:    kind,
		opacity: ev.Opacity,
	}
	switch kind {
	case frameTransform:
		f.rotateDeg, f.cx, f.cy = ev.RotateDeg, ev.CX, ev.CY
	case frameClip:
		f.clipRect, f.clipRadius = ev.Rect, ev.BorderRadius
	}
	r.stack = append(r.stack, f)
}

func (r *Raster) pop() {
	if len(r.stack) == 0 {
		return
	}
	f := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	_, parentOverlay := r.top()

	content := f.overlay
	switch f.kind {
	case frameOpacity:
		compositeWithOpacity(parentOverlay, content, f.opacity)
	case frameTransform:
		compositeOver(parentOverlay, rotateRGBAAroundPoint(content, f.rotateDeg, f.cx, f.cy))
	case frameClip:
		compositeMasked(parentOverlay, content, clipMask(r.canvas.Bounds(), f.clipRect, f.clipRadius))
	}
}

// compositeOver draws src onto dst with plain source-over compositing.
func compositeOver(dst, src *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
}

// compositeWithOpacity draws src onto dst, scaling src's coverage by a
// uniform opacity factor in [0, 1].
func compositeWithOpacity(dst, src *image.RGBA, opacity float64) {
	if opacity >= 1 {
		compositeOver(dst, src)
		return
	}
	if opacity <= 0 {
		return
	}
	a := uint8(geom.ClampF64(opacity*255, 0, 255))
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, image.NewUniform(alphaColor(a)), image.Point{}, draw.Over)
}

// compositeMasked draws src onto dst restricted to mask's coverage.
func compositeMasked(dst, src *image.RGBA, mask *image.Alpha) {
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, mask.Bounds().Min, draw.Over)
}

type alphaColor uint8

func (a alphaColor) RGBA() (r, g, b, al uint32) {
	v := uint32(a) * 0x101
	return v, v, v, v
}

// rotateRGBAAroundPoint rotates src by angleDeg (clockwise-positive) around
// the absolute pivot (cx, cy) using bilinear sampling. Unlike a source-sized
// rotate with optional canvas expansion, this rotates an already
// canvas-sized, already positioned layer in place, since the scene's
// PushTransform events apply to whatever has already been painted.
func rotateRGBAAroundPoint(src *image.RGBA, angleDeg, cx, cy float64) *image.RGBA {
	if angleDeg == 0 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	rad := geom.Deg2Rad(angleDeg)
	sinA, cosA := math.Sincos(rad)
	var transparent patterns.Color

	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := float64(y) - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := float64(x) - cx
			sx := fx*cosA + fy*sinA + cx
			sy := -fx*sinA + fy*cosA + cy
			if sx < float64(b.Min.X) || sx > float64(b.Max.X-1) || sy < float64(b.Min.Y) || sy > float64(b.Max.Y-1) {
				continue
			}
			dst.SetRGBA(x, y, geom.BilinearRGBAAt(src, sx, sy, transparent))
		}
	}
	return dst
}
