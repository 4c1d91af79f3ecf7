package raster

import (
	"image"

	"github.com/flowglyph/flowglyph/instructions"
	imageutil "github.com/flowglyph/flowglyph/internal/core/image"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/scene"
	"github.com/flowglyph/flowglyph/template"
)

// ImageDecoder turns a draw_bitmap event's resource handle (produced
// upstream by a resource.Loader) into a decoded image. Satisfied
// structurally by providers.DefaultImageDecoder.
type ImageDecoder interface {
	Decode(handle string) (image.Image, error)
}

// SvgRenderer rasterizes a draw_svg event's resource handle at the
// element's content box size. No type in this module implements it, and
// render leaves Raster.Svgs unset.
type SvgRenderer interface {
	Render(handle string, width, height int) (image.Image, error)
}

// QrProvider generates a QR code image from a draw_qr event's Data.
// Satisfied structurally by providers.DefaultQrProvider (the pack's
// github.com/skip2/go-qrcode wiring lives there, not here, so a Raster
// carries no codec dependency of its own).
type QrProvider interface {
	Generate(data string, ec template.ErrorCorrection, size int) (image.Image, error)
}

// BarcodeProvider generates a barcode image from a draw_barcode event's
// Data. Satisfied structurally by providers.DefaultBarcodeProvider (the pack's
// github.com/boombuler/barcode wiring lives there).
type BarcodeProvider interface {
	Generate(data string, format template.BarcodeFormat, width, height int) (image.Image, error)
}

var fitMode = map[template.ImageFit]instructions.FitMode{
	template.FitFill:    instructions.FitStretch,
	template.FitContain: instructions.FitContain,
	template.FitCover:   instructions.FitCover,
	template.FitNone:    instructions.FitStretch,
}

// placeImage fits src into rect per ImageFit and composites it, reusing
// instructions.Image for the resize/fit/placement pipeline.
func (r *Raster) placeImage(rect layout.Rect, fit template.ImageFit, src image.Image) {
	base, overlay := r.top()
	img := instructions.NewImage(src, int(rect.X), int(rect.Y)).
		SetSize(int(rect.Width), int(rect.Height)).
		SetFit(fitMode[fit])
	img.Draw(base, overlay)
}

func (r *Raster) drawBitmap(ev scene.Event) {
	if r.Images == nil || ev.Handle == "" {
		return
	}
	src, err := r.Images.Decode(ev.Handle)
	if err != nil || src == nil {
		return
	}
	r.placeImage(ev.Rect, ev.Fit, src)
}

func (r *Raster) drawSvg(ev scene.Event) {
	if r.Svgs == nil || ev.Handle == "" {
		return
	}
	src, err := r.Svgs.Render(ev.Handle, int(ev.Rect.Width), int(ev.Rect.Height))
	if err != nil || src == nil {
		return
	}
	r.placeImage(ev.Rect, ev.Fit, src)
}

func (r *Raster) drawQr(ev scene.Event) {
	if r.Qrs == nil || ev.Data == "" {
		return
	}
	size := int(min(ev.Rect.Width, ev.Rect.Height))
	src, err := r.Qrs.Generate(ev.Data, ev.ErrorCorrection, size)
	if err != nil || src == nil {
		return
	}
	r.placeImage(ev.Rect, template.FitContain, imageutil.ToRGBA(src))
}

func (r *Raster) drawBarcode(ev scene.Event) {
	if r.Barcodes == nil || ev.Data == "" {
		return
	}
	src, err := r.Barcodes.Generate(ev.Data, ev.BarcodeFormat, int(ev.Rect.Width), int(ev.Rect.Height))
	if err != nil || src == nil {
		return
	}
	r.placeImage(ev.Rect, template.FitContain, imageutil.ToRGBA(src))
}
