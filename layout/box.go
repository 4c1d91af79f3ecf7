// Package layout implements the flexbox layout engine (spec §4.4):
// intrinsic measurement, two-pass flex resolution with line wrapping,
// align-content, auto margins, absolute/relative positioning, overflow,
// aspect-ratio, and rotation-aware bounding. It consumes the typed
// template.Element tree the expander produces and emits a tree of
// resolved Box rectangles for the scene emitter to walk.
package layout

// Rect is an axis-aligned box in pixel coordinates, canvas-space,
// origin top-left, Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset shrinks r by e on every side, clamping to zero-area rather than
// going negative.
func (r Rect) Inset(e Edges) Rect {
	w := r.Width - e.Left - e.Right
	h := r.Height - e.Top - e.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + e.Left, Y: r.Y + e.Top, Width: w, Height: h}
}

// Edges is a resolved four-side pixel offset (padding, margin, or border
// width), always non-negative.
type Edges struct {
	Top, Right, Bottom, Left float64
}

func (e Edges) Horizontal() float64 { return e.Left + e.Right }
func (e Edges) Vertical() float64   { return e.Top + e.Bottom }
