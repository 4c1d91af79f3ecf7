package raster

import "github.com/flowglyph/flowglyph/scene"

// drawTextRun draws one already-wrapped line of text at its baseline.
// FontHandle resolves through Registry at the requested pixel size; a
// handle the registry doesn't know (or a nil Registry) draws nothing,
// since there is no glyph outline to paint without a face — layout and
// scene both already degrade to an estimated box size for this case, so
// silently skipping here just means that estimated box renders blank
// rather than with substitute glyphs.
func (r *Raster) drawTextRun(ev scene.Event) {
	if r.Registry == nil || ev.Text == "" {
		return
	}
	// textmetrics.Shaper.resolveFont treats px and pt as numerically equal
	// at its default 72 DPI; Registry.Font expects the same pt value.
	font, err := r.Registry.Font(ev.FontHandle, ev.Size)
	if err != nil {
		return
	}
	_, overlay := r.top()
	font.DrawString(overlay, ev.Color.ToColor(), ev.Text, ev.X, ev.Baseline)
}
