package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/scene"
	"github.com/flowglyph/flowglyph/style"
	"github.com/flowglyph/flowglyph/template"
)

func solid(r, g, b, a uint8) patterns.Pattern {
	return patterns.Color{R: r, G: g, B: b, A: a}.MakeSolidPattern()
}

func TestConsumeFillRectPaintsPixels(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{
		Kind: scene.KindFillRect,
		Rect: layout.Rect{X: 2, Y: 2, Width: 10, Height: 10},
		Paint: solid(255, 0, 0, 255),
	})
	got := color.RGBAModel.Convert(r.Image().At(6, 6)).(color.RGBA)
	require.Equal(t, uint8(255), got.R)
	require.Equal(t, uint8(255), got.A)
}

func TestConsumeStrokeRectWithDashingDrawsSomething(t *testing.T) {
	r := New(30, 30, nil)
	r.Consume(scene.Event{
		Kind:         scene.KindStrokeRect,
		Rect:         layout.Rect{X: 2, Y: 2, Width: 20, Height: 20},
		BorderRadius: 4,
		Paint:        solid(0, 0, 0, 255),
		StrokeWidth:  2,
		Dashing:      []float64{4, 2},
	})
	// At least one pixel along the top edge should have been painted.
	painted := false
	for x := 2; x < 22; x++ {
		_, _, _, a := r.Image().At(x, 2).RGBA()
		if a > 0 {
			painted = true
			break
		}
	}
	require.True(t, painted)
}

func TestConsumeStrokeRectWithoutDashingIsClosed(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{
		Kind:        scene.KindStrokeRect,
		Rect:        layout.Rect{X: 2, Y: 2, Width: 10, Height: 10},
		Paint:       solid(0, 0, 0, 255),
		StrokeWidth: 2,
	})
	_, _, _, a := r.Image().At(2, 2).RGBA()
	require.Greater(t, a, uint32(0))
}

func TestConsumeDrawLineStrokesBetweenEndpoints(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{
		Kind:        scene.KindDrawLine,
		P0:          layout.Rect{X: 2, Y: 10},
		P1:          layout.Rect{X: 18, Y: 10},
		Paint:       solid(0, 0, 255, 255),
		StrokeWidth: 2,
	})
	_, _, b, a := r.Image().At(10, 10).RGBA()
	require.Greater(t, a, uint32(0))
	require.Greater(t, b, uint32(0))
}

func TestConsumePushOpacityPopOpacityBlendsIntoParent(t *testing.T) {
	r := New(10, 10, nil)
	r.Consume(scene.Event{Kind: scene.KindPushOpacity, Opacity: 0.5})
	r.Consume(scene.Event{
		Kind:  scene.KindFillRect,
		Rect:  layout.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		Paint: solid(255, 255, 255, 255),
	})
	r.Consume(scene.Event{Kind: scene.KindPopOpacity})
	_, _, _, a := r.Image().At(5, 5).RGBA()
	require.Greater(t, a, uint32(0))
	require.Less(t, a, uint32(0xffff))
}

func TestConsumePushTransformRotatesAroundPivot(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{Kind: scene.KindPushTransform, RotateDeg: 90, CX: 10, CY: 10})
	r.Consume(scene.Event{
		Kind:  scene.KindFillRect,
		Rect:  layout.Rect{X: 10, Y: 8, Width: 8, Height: 4},
		Paint: solid(0, 255, 0, 255),
	})
	r.Consume(scene.Event{Kind: scene.KindPopTransform})
	// After a 90deg rotation around (10,10) the horizontal bar occupies a
	// vertical band: (10,14) samples the bar at (14,10), while (16,10),
	// inside the unrotated bar, samples (10,4), outside it.
	painted := false
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if _, _, _, a := r.Image().At(x, y).RGBA(); a > 0 {
				painted = true
			}
		}
	}
	require.True(t, painted)
	_, _, _, rotated := r.Image().At(10, 14).RGBA()
	_, _, _, unrotated := r.Image().At(16, 10).RGBA()
	require.Greater(t, rotated, uint32(0))
	require.Equal(t, uint32(0), unrotated)
	require.Empty(t, r.stack)
}

func TestConsumePushClipRestrictsToRoundedRect(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{Kind: scene.KindPushClip, Rect: layout.Rect{X: 5, Y: 5, Width: 10, Height: 10}, BorderRadius: 0})
	r.Consume(scene.Event{
		Kind:  scene.KindFillRect,
		Rect:  layout.Rect{X: 0, Y: 0, Width: 20, Height: 20},
		Paint: solid(255, 0, 0, 255),
	})
	r.Consume(scene.Event{Kind: scene.KindPopClip})

	_, _, _, inside := r.Image().At(10, 10).RGBA()
	_, _, _, outside := r.Image().At(1, 1).RGBA()
	require.Greater(t, inside, uint32(0))
	require.Equal(t, uint32(0), outside)
}

func TestConsumeShadowPaintsNearRect(t *testing.T) {
	r := New(40, 40, nil)
	r.Consume(scene.Event{
		Kind: scene.KindShadow,
		Rect: layout.Rect{X: 10, Y: 10, Width: 10, Height: 10},
		Shadow: style.Shadow{
			OffsetX: 2, OffsetY: 2, Blur: 4,
			Color: patterns.Color{R: 0, G: 0, B: 0, A: 128},
		},
	})
	_, _, _, a := r.Image().At(15, 15).RGBA()
	require.Greater(t, a, uint32(0))
}

func TestConsumeShadowWithZeroAlphaIsNoop(t *testing.T) {
	r := New(20, 20, nil)
	r.Consume(scene.Event{
		Kind:   scene.KindShadow,
		Rect:   layout.Rect{X: 2, Y: 2, Width: 10, Height: 10},
		Shadow: style.Shadow{Color: patterns.Color{A: 0}},
	})
	_, _, _, a := r.Image().At(5, 5).RGBA()
	require.Equal(t, uint32(0), a)
}

func TestConsumeDrawTextRunWithoutRegistryIsNoop(t *testing.T) {
	r := New(20, 20, nil)
	require.NotPanics(t, func() {
		r.Consume(scene.Event{Kind: scene.KindDrawTextRun, Text: "hi", X: 2, Baseline: 10, Size: 12})
	})
}

type stubDecoder struct{ img image.Image }

func (s stubDecoder) Decode(string) (image.Image, error) { return s.img, nil }

func TestConsumeDrawBitmapPlacesDecodedImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	r := New(20, 20, nil)
	r.Images = stubDecoder{img: src}
	r.Consume(scene.Event{
		Kind:   scene.KindDrawBitmap,
		Rect:   layout.Rect{X: 2, Y: 2, Width: 8, Height: 8},
		Handle: "photo",
		Fit:    template.FitFill,
	})
	got := color.RGBAModel.Convert(r.Image().At(5, 5)).(color.RGBA)
	require.Equal(t, uint8(10), got.R)
}

func TestConsumeDrawBitmapWithNoDecoderIsNoop(t *testing.T) {
	r := New(20, 20, nil)
	require.NotPanics(t, func() {
		r.Consume(scene.Event{Kind: scene.KindDrawBitmap, Handle: "photo"})
	})
}
