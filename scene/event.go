// Package scene implements the backend-agnostic scene emitter (spec
// §4.5): it walks the laid-out tree depth-first, children in source
// order, and emits an ordered stream of drawing primitives to a
// Consumer. No concrete painter lives here — backend/raster is the
// reference implementation, adapting the teacher's instructions/colors/
// effects packages to paint these events to an image.RGBA.
package scene

import (
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/style"
	"github.com/flowglyph/flowglyph/template"
)

// Kind discriminates an Event's variant, mirroring template.Element's
// tagged-union shape rather than a family of event interfaces/type
// switches per emitter call site.
type Kind int

const (
	KindPushOpacity Kind = iota
	KindPopOpacity
	KindPushTransform
	KindPopTransform
	KindPushClip
	KindPopClip
	KindShadow
	KindFillRect
	KindStrokeRect
	KindDrawLine
	KindDrawTextRun
	KindDrawBitmap
	KindDrawSvg
	KindDrawQr
	KindDrawBarcode
)

// Event is one entry in the scene stream. Only the fields relevant to
// Kind are populated; the rest are zero.
type Event struct {
	Kind Kind

	Opacity float64 // PushOpacity

	RotateDeg, CX, CY float64 // PushTransform

	Rect         layout.Rect // PushClip, FillRect, StrokeRect, DrawBitmap, DrawSvg, DrawQr, DrawBarcode
	BorderRadius float64     // PushClip, FillRect, StrokeRect

	Shadow style.Shadow // Shadow

	Paint       patterns.Pattern // FillRect, StrokeRect, DrawLine
	StrokeWidth float64          // StrokeRect, DrawLine
	Dashing     []float64        // StrokeRect, DrawLine

	P0, P1 layout.Rect // DrawLine: X,Y of each endpoint (Width/Height unused)

	X, Y, Baseline float64             // DrawTextRun
	FontHandle     string              // DrawTextRun
	Size           float64             // DrawTextRun
	Color          patterns.Color      // DrawTextRun
	Text           string              // DrawTextRun
	Direction      string              // DrawTextRun ("ltr"|"rtl", propagated not reordered)

	Handle string           // DrawBitmap, DrawSvg: resource handle from resource.Loader
	Fit    template.ImageFit // DrawBitmap, DrawSvg

	Data            string                   // DrawQr, DrawBarcode
	ErrorCorrection template.ErrorCorrection // DrawQr
	Foreground      patterns.Color           // DrawQr, DrawBarcode
	Background      patterns.Color           // DrawQr, DrawBarcode
	BarcodeFormat   template.BarcodeFormat   // DrawBarcode
	ShowText        bool                     // DrawBarcode
}

// Consumer is the backend-agnostic sink spec §2's "generic scene
// consumer interface" names. A single method keeps a backend's Draw-like
// dispatch as one type switch over Kind, the same shape as the teacher's
// Shape.Draw(base, overlay) contract generalized from "draw yourself" to
// "consume one event of a stream".
type Consumer interface {
	Consume(Event)
}
