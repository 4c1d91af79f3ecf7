package render

import (
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/textmetrics"
)

// defaultQrSize and defaultBarcodeWidth/Height are the natural sizes spec
// §4.4.1 needs when a Qr/Barcode element declares no explicit size — the
// element still has to occupy space during layout, well before the actual
// QrProvider/BarcodeProvider runs at scene-emission time. The 200x60
// barcode box is a 10:3 aspect, slightly taller than other_examples'
// docxgen Barcode modifier default of 3:1 (sizeHMM = sizeWMM/3).
const (
	defaultQrSize        = 128.0
	defaultBarcodeWidth  = 200.0
	defaultBarcodeHeight = 60.0
)

// ImageSizer reports a decoded image's natural pixel dimensions without
// requiring the full ImageDecoder round-trip twice — Renderer's composite
// Measurer asks for size only, so a provider can serve this from a
// lightweight header peek if it wants to; DefaultImageDecoder simply
// decodes and reports Bounds().
type ImageSizer interface {
	Size(handle string) (width, height float64)
}

// compositeMeasurer implements layout.Measurer by combining a
// *textmetrics.Shaper (text) with optional image/svg size providers —
// the glue spec.md leaves unnamed between layout's Measurer interface
// and the concrete capabilities textmetrics/providers supply. Any nil
// field degrades to zero intrinsic size for that variant, mirroring
// layout.NullMeasurer's behavior per-field rather than all-or-nothing.
type compositeMeasurer struct {
	shaper *textmetrics.Shaper
	images ImageSizer
	svgs   ImageSizer
}

func (m compositeMeasurer) MeasureText(t *template.TextAttributes, maxWidth, fontSize float64) (float64, float64) {
	if m.shaper == nil {
		return 0, 0
	}
	return m.shaper.MeasureText(t, maxWidth, fontSize)
}

func (m compositeMeasurer) MeasureImage(i *template.ImageAttributes) (float64, float64) {
	if m.images == nil || i == nil || i.Src == "" {
		return 0, 0
	}
	return m.images.Size(i.Src)
}

func (m compositeMeasurer) MeasureSvg(s *template.SvgAttributes) (float64, float64) {
	if m.svgs == nil || s == nil || s.Src == "" {
		return 0, 0
	}
	return m.svgs.Size(s.Src)
}

func (compositeMeasurer) MeasureQr(*template.QrAttributes) (float64, float64) {
	return defaultQrSize, defaultQrSize
}

func (compositeMeasurer) MeasureBarcode(*template.BarcodeAttributes) (float64, float64) {
	return defaultBarcodeWidth, defaultBarcodeHeight
}
