package textmetrics

import "github.com/flowglyph/flowglyph/template"

// MeasureText implements the text half of layout.Measurer. Wrap: false
// degrades maxWidth to 0 (single line per newline, spec §3.4's default),
// matching the teacher's "maxWidth <= 0 disables wrapping" convention.
func (s *Shaper) MeasureText(t *template.TextAttributes, maxWidth, fontSize float64) (width, height float64) {
	if t == nil {
		return 0, 0
	}
	w := maxWidth
	if !t.Wrap {
		w = 0
	}
	_, width, height = s.Shape(t.Content, t.Font, fontSize, w)
	return width, height
}

// ShapeText is the richer entry point scene.Emitter uses at emission time,
// returning the wrapped lines alongside the block size so the same
// wrapping decision layout made is reproduced exactly when painting.
func (s *Shaper) ShapeText(t *template.TextAttributes, maxWidth, fontSize float64) (lines []string, width, height float64) {
	if t == nil {
		return nil, 0, 0
	}
	w := maxWidth
	if !t.Wrap {
		w = 0
	}
	return s.Shape(t.Content, t.Font, fontSize, w)
}
