package layout

import "github.com/flowglyph/flowglyph/template"

// Measurer supplies intrinsic content size for the variants whose natural
// size cannot be derived from attributes alone (spec §4.4.1: "measure
// children recursively"). Layout depends on this interface rather than on
// textmetrics/resource/providers directly — the same capability-interface
// decoupling the teacher uses between AutoLayout and the concrete Shape it
// arranges (BoundedShape.Size()), so the layout engine never needs to know
// how a glyph run or a decoded image actually measures itself.
type Measurer interface {
	// MeasureText returns the shaped text block's size for the given
	// attributes, wrapped to maxWidth (0 = unconstrained), at fontSize.
	MeasureText(t *template.TextAttributes, maxWidth, fontSize float64) (width, height float64)
	MeasureImage(i *template.ImageAttributes) (width, height float64)
	MeasureSvg(s *template.SvgAttributes) (width, height float64)
	MeasureQr(q *template.QrAttributes) (width, height float64)
	MeasureBarcode(b *template.BarcodeAttributes) (width, height float64)
}

// NullMeasurer returns zero intrinsic size for every variant — useful for
// measuring pure-Flex trees (tests, documents with only explicit sizes)
// without wiring a real text shaper or resource loader.
type NullMeasurer struct{}

func (NullMeasurer) MeasureText(*template.TextAttributes, float64, float64) (float64, float64) {
	return 0, 0
}
func (NullMeasurer) MeasureImage(*template.ImageAttributes) (float64, float64)   { return 0, 0 }
func (NullMeasurer) MeasureSvg(*template.SvgAttributes) (float64, float64)       { return 0, 0 }
func (NullMeasurer) MeasureQr(*template.QrAttributes) (float64, float64)         { return 0, 0 }
func (NullMeasurer) MeasureBarcode(*template.BarcodeAttributes) (float64, float64) { return 0, 0 }
