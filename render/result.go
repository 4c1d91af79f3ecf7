package render

import (
	"image"

	"github.com/flowglyph/flowglyph/flowerr"
)

// Result is the outcome of a single Render call: the painted canvas plus
// any soft-failure diagnostics accumulated along the way (spec §7: a
// render either fails hard with a flowerr.Error or succeeds with zero or
// more non-fatal Diagnostics — an unknown element type, a missing
// optional resource, a soft filter evaluation failure).
type Result struct {
	Image       *image.RGBA
	Width       int
	Height      int
	Diagnostics []flowerr.Diagnostic
}
