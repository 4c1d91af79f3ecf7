// Package textmetrics measures and shapes text (spec §4.4's "measure
// children recursively" for the Text variant, and §4.5's draw_text_run
// font/baseline inputs). Font wraps a TrueType font with the teacher's
// pixel-accurate CSS-like metrics; Registry is the builder-time name
// registration spec §5 requires; Shaper adapts the teacher's word-wrap
// algorithm to the layout.Measurer / scene.Emitter boundary.
package textmetrics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const defaultDPI = 72

// Font wraps a TrueType font with pixel-accurate rendering helpers,
// matching CSS/Figma layout behavior for text measurement and positioning.
type Font struct {
	tt            *truetype.Font
	sizePt        float64
	dpi           float64
	letterPercent float64
	capRatio      float64
	hinting       font.Hinting
}

// NewFont builds a Font at sizePt from an already-parsed truetype.Font.
func NewFont(tt *truetype.Font, sizePt float64) *Font {
	f := &Font{tt: tt, dpi: defaultDPI, capRatio: 0.85, hinting: font.HintingNone}
	return f.SetFontSizePt(sizePt)
}

// ParseFont parses TrueType font bytes at sizePt.
func ParseFont(data []byte, sizePt float64) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse font: %w", err)
	}
	return NewFont(tt, sizePt), nil
}

// SetFontSizePt sets the font size in points (1pt = 1/72 inch).
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// SetDPI sets the font's DPI scaling. Defaults to 72 if <= 0.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetLetterSpacingPercent defines tracking as a percentage of font size.
func (f *Font) SetLetterSpacingPercent(percent float64) *Font {
	f.letterPercent = percent
	return f
}

// SetHinting overrides the rasterizer's grid-fitting mode, exposed so
// render.RenderOptions.FontHinting can reach the glyph cache; defaults to
// font.HintingNone, matching the teacher's hardcoded choice.
func (f *Font) SetHinting(h font.Hinting) *Font {
	f.hinting = h
	return f
}

// HeightPt returns the font size in points.
func (f *Font) HeightPt() float64 { return f.sizePt }

// HeightPx returns the font size converted to pixels for the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

func (f *Font) cacheKey() string {
	return fmt.Sprintf("%p_%.3f_%.1f_%d", f.tt, f.sizePt, f.dpi, f.hinting)
}

// Face returns a font.Face configured with the current size and DPI,
// cached process-wide to avoid redundant hinting/rasterization setup.
func (f *Font) Face() font.Face {
	key := f.cacheKey()
	if face, ok := faceCache.get(key); ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    f.sizePt,
		DPI:     f.dpi,
		Hinting: f.hinting,
	})
	faceCache.put(key, face)
	return face
}

// TrackingPx returns the tracking offset applied between glyphs.
func (f *Font) TrackingPx() float64 { return (f.letterPercent / 100.0) * f.HeightPx() }

// AscentPx returns the distance from baseline to top, in pixels.
func (f *Font) AscentPx() float64 { return float64(f.Face().Metrics().Ascent >> 6) }

// DescentPx returns the distance from baseline to bottom, in pixels.
func (f *Font) DescentPx() float64 { return float64(f.Face().Metrics().Descent >> 6) }

// LineHeightPx returns the total line height (ascent + descent + leading).
func (f *Font) LineHeightPx() float64 { return float64(f.Face().Metrics().Height >> 6) }

// LeadingPx returns the extra vertical space between lines.
func (f *Font) LeadingPx() float64 {
	m := f.Face().Metrics()
	return float64((m.Height - (m.Ascent + m.Descent)) >> 6)
}

// BaselineForTopY returns the baseline y for a given line-box top y,
// matching CSS: baseline = top + ascent + leading/2.
func (f *Font) BaselineForTopY(topY float64) float64 {
	return topY + f.AscentPx() + f.LeadingPx()/2
}

// MeasureString measures the pixel width/height of a single-line string.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	face := f.Face()
	adv := font.MeasureString(face, s)
	w = float64(adv >> 6)
	runes := []rune(s)
	if len(runes) > 1 {
		w += float64(len(runes)-1) * f.TrackingPx()
	}
	return w, f.LineHeightPx()
}

// DrawString draws a single line of text onto dst, baseline-aligned and
// rounded to the pixel grid to avoid blur. Returns the pen position after
// the final glyph.
func (f *Font) DrawString(dst draw.Image, col color.Color, s string, x, baselineY float64) fixed.Point26_6 {
	if s == "" {
		return fixed.Point26_6{X: fix(x), Y: fix(baselineY)}
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.Face(),
		Dot:  fixed.Point26_6{X: fix(math.Round(x)), Y: fix(math.Round(baselineY))},
	}
	track := fix(f.TrackingPx())
	runes := []rune(s)
	for i, r := range runes {
		d.DrawString(string(r))
		if i < len(runes)-1 {
			d.Dot.X += track
		}
	}
	return d.Dot
}

func fix(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
