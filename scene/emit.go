package scene

import (
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/style"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

// ResourceResolver turns a `src`/`content` reference into the opaque
// handle a Consumer's backend understands (typically produced by a
// resource.Loader + providers.DefaultImageDecoder upstream in render). A nil
// resolver passes the raw URI through unchanged, which is sufficient for
// a Consumer that resolves resources itself.
type ResourceResolver interface {
	Resolve(uri string) string
}

// TextShaper re-derives the wrapped lines a Text variant's content
// breaks into, mirroring textmetrics.Shaper.ShapeText. A nil shaper
// degrades to emitting the content as a single unwrapped line, which
// keeps a Consumer-less Emitter usable for testing.
type TextShaper interface {
	ShapeText(t *template.TextAttributes, maxWidth, fontSize float64) (lines []string, width, height float64)
}

// Emitter walks a laid-out Box tree and feeds a Consumer the ordered
// event stream spec §4.5 defines. It holds no painting logic itself —
// that's the Consumer's job — only the traversal and attribute-to-event
// translation the teacher's Group.Draw performs inline for its fixed set
// of child Shapes, generalized here to an open set of Element kinds.
type Emitter struct {
	consumer Consumer
	resolver ResourceResolver
	shaper   TextShaper
}

func NewEmitter(c Consumer, resolver ResourceResolver) *Emitter {
	return &Emitter{consumer: c, resolver: resolver}
}

// WithTextShaper attaches the shaper used to re-wrap Text content at
// emission time, so the Consumer sees one event per visible line instead
// of one event per element. Returns e for chaining.
func (e *Emitter) WithTextShaper(s TextShaper) *Emitter {
	e.shaper = s
	return e
}

// Emit walks root in document order: background, borders, then children
// (or leaf content), with opacity/transform/clip pushed before and
// popped after each subtree (spec §4.5's ordering guarantee).
func (e *Emitter) Emit(root *layout.Box) {
	e.emitBox(root)
}

func (e *Emitter) emit(ev Event) { e.consumer.Consume(ev) }

func (e *Emitter) emitBox(b *layout.Box) {
	base := &b.Element.Base

	pushedOpacity := b.Opacity < 1
	if pushedOpacity {
		e.emit(Event{Kind: KindPushOpacity, Opacity: b.Opacity})
	}

	deg := b.Rotation.DegreesNormalized()
	pushedTransform := deg != 0
	if pushedTransform {
		cx := b.Rect.X + b.Rect.Width/2
		cy := b.Rect.Y + b.Rect.Height/2
		e.emit(Event{Kind: KindPushTransform, RotateDeg: deg, CX: cx, CY: cy})
	}

	if base.BoxShadow != nil {
		if sh, err := style.ParseShadow(*base.BoxShadow); err == nil {
			e.emit(Event{Kind: KindShadow, Rect: b.Rect, BorderRadius: borderRadiusPx(base), Shadow: sh})
		}
	}

	if base.Background != nil {
		if pat, err := style.Background(*base.Background, b.Rect.Width, b.Rect.Height); err == nil {
			e.emit(Event{Kind: KindFillRect, Rect: b.Rect, BorderRadius: borderRadiusPx(base), Paint: pat})
		}
	}

	e.emitBorders(b, base)

	if b.Clip {
		e.emit(Event{Kind: KindPushClip, Rect: b.ContentRect, BorderRadius: borderRadiusPx(base)})
	}

	if b.Element.Kind == template.KindFlex {
		for _, c := range b.Children {
			e.emitBox(c)
		}
	} else {
		e.emitContent(b)
	}

	if b.Clip {
		e.emit(Event{Kind: KindPopClip})
	}
	if pushedTransform {
		e.emit(Event{Kind: KindPopTransform})
	}
	if pushedOpacity {
		e.emit(Event{Kind: KindPopOpacity})
	}
}

func borderRadiusPx(base *template.BaseAttributes) float64 {
	return base.BorderRadius.ResolveOr(0, 16, 0)
}

// emitBorders emits one stroke_rect when all four sides share the same
// width/style/color (the common case), otherwise degrades to up to four
// draw_line segments — the scene event list has no per-side stroke_rect
// primitive, so a mixed border is the one case a single stroke_rect
// can't represent faithfully.
func (e *Emitter) emitBorders(b *layout.Box, base *template.BaseAttributes) {
	border := base.Border
	if border.Top == border.Right && border.Top == border.Bottom && border.Top == border.Left {
		e.emitUniformBorder(b.Rect, base, border.Top)
		return
	}
	e.emitSideBorder(b.Rect, border.Top, true, b.Rect.Y)
	e.emitSideBorder(b.Rect, border.Bottom, true, b.Rect.Bottom())
	e.emitSideBorder(b.Rect, border.Left, false, b.Rect.X)
	e.emitSideBorder(b.Rect, border.Right, false, b.Rect.Right())
}

func (e *Emitter) emitUniformBorder(rect layout.Rect, base *template.BaseAttributes, side units.BorderSide) {
	if side.Width <= 0 || side.Style == units.BorderNone {
		return
	}
	color, _ := style.TryParseColor(side.ColorHex)
	e.emit(Event{
		Kind: KindStrokeRect, Rect: rect, BorderRadius: borderRadiusPx(base),
		Paint: patterns.NewSolid(color), StrokeWidth: side.Width, Dashing: dashPattern(side.Style, side.Width),
	})
}

// emitSideBorder draws one edge as a line; emitBorders calls it for each
// side when the four sides differ, since stroke_rect always strokes all
// four sides alike.
func (e *Emitter) emitSideBorder(rect layout.Rect, side units.BorderSide, horizontal bool, offset float64) {
	if side.Width <= 0 || side.Style == units.BorderNone {
		return
	}
	color, _ := style.TryParseColor(side.ColorHex)
	var p0, p1 layout.Rect
	if horizontal {
		p0 = layout.Rect{X: rect.X, Y: offset}
		p1 = layout.Rect{X: rect.Right(), Y: offset}
	} else {
		p0 = layout.Rect{X: offset, Y: rect.Y}
		p1 = layout.Rect{X: offset, Y: rect.Bottom()}
	}
	e.emit(Event{
		Kind: KindDrawLine, P0: p0, P1: p1,
		Paint: patterns.NewSolid(color), StrokeWidth: side.Width, Dashing: dashPattern(side.Style, side.Width),
	})
}

func dashPattern(style units.BorderStyle, width float64) []float64 {
	switch style {
	case units.BorderDashed:
		return []float64{width * 3, width * 2}
	case units.BorderDotted:
		return []float64{width, width}
	default:
		return nil
	}
}

// emitContent emits the content event(s) a leaf variant produces.
func (e *Emitter) emitContent(b *layout.Box) {
	el := b.Element
	switch el.Kind {
	case template.KindText:
		e.emitText(b, el.Text)
	case template.KindImage:
		e.emitImage(b, el.Image)
	case template.KindSvg:
		e.emitSvg(b, el.Svg)
	case template.KindSeparator:
		e.emitSeparator(b, el.Separator)
	case template.KindQr:
		e.emitQr(b, el.Qr)
	case template.KindBarcode:
		e.emitBarcode(b, el.Barcode)
	}
}

// emitText re-wraps t's content against the content rect width (mirroring
// the wrap decision layout made when it measured this box) and emits one
// DrawTextRun event per visible line, baselines stepping by the font's
// line height. Without a shaper it degrades to one line at a 1.2em
// estimate, matching textmetrics' own no-font fallback line height.
func (e *Emitter) emitText(b *layout.Box, t *template.TextAttributes) {
	color, _ := style.TryParseColor(t.Color)
	size := t.Size.ResolveOr(0, 16, 16)
	lineHeight := size * 1.2

	lines := []string{t.Content}
	if e.shaper != nil {
		maxWidth := b.ContentRect.Width
		if ls, _, height := e.shaper.ShapeText(t, maxWidth, size); len(ls) > 0 {
			lines = ls
			if n := len(ls); n > 0 {
				lineHeight = height / float64(n)
			}
		}
	}

	baseline := b.ContentRect.Y + size
	for _, ln := range lines {
		e.emit(Event{
			Kind: KindDrawTextRun,
			X:    b.ContentRect.X, Y: baseline - size, Baseline: baseline,
			FontHandle: t.Font, Size: size, Color: color, Text: ln, Direction: "ltr",
		})
		baseline += lineHeight
	}
}

func (e *Emitter) emitImage(b *layout.Box, img *template.ImageAttributes) {
	e.emit(Event{Kind: KindDrawBitmap, Rect: b.ContentRect, Handle: e.resolve(img.Src), Fit: img.Fit})
}

func (e *Emitter) emitSvg(b *layout.Box, s *template.SvgAttributes) {
	uri := s.Src
	if uri == "" {
		uri = s.Content
	}
	e.emit(Event{Kind: KindDrawSvg, Rect: b.ContentRect, Handle: e.resolve(uri), Fit: s.Fit})
}

func (e *Emitter) emitSeparator(b *layout.Box, s *template.SeparatorAttributes) {
	color, _ := style.TryParseColor(s.Color)
	thickness := s.Thickness.ResolveOr(0, 16, 1)
	r := b.ContentRect
	var p0, p1 layout.Rect
	if s.Orientation == template.OrientationVertical {
		x := r.X + r.Width/2
		p0, p1 = layout.Rect{X: x, Y: r.Y}, layout.Rect{X: x, Y: r.Bottom()}
	} else {
		y := r.Y + r.Height/2
		p0, p1 = layout.Rect{X: r.X, Y: y}, layout.Rect{X: r.Right(), Y: y}
	}
	e.emit(Event{
		Kind: KindDrawLine, P0: p0, P1: p1,
		Paint: patterns.NewSolid(color), StrokeWidth: thickness, Dashing: separatorDash(s.Style, thickness),
	})
}

func separatorDash(s template.SeparatorStyle, width float64) []float64 {
	switch s {
	case template.SeparatorDashed:
		return []float64{width * 3, width * 2}
	case template.SeparatorDotted:
		return []float64{width, width}
	default:
		return nil
	}
}

func (e *Emitter) emitQr(b *layout.Box, q *template.QrAttributes) {
	fg, _ := style.TryParseColor(q.Foreground)
	bg, _ := style.TryParseColor(q.Background)
	e.emit(Event{
		Kind: KindDrawQr, Rect: b.ContentRect, Data: q.Data, ErrorCorrection: q.ErrorCorrection,
		Foreground: fg, Background: bg,
	})
}

func (e *Emitter) emitBarcode(b *layout.Box, bc *template.BarcodeAttributes) {
	fg, _ := style.TryParseColor(bc.Foreground)
	bg, _ := style.TryParseColor(bc.Background)
	e.emit(Event{
		Kind: KindDrawBarcode, Rect: b.ContentRect, Data: bc.Data, BarcodeFormat: bc.Format,
		ShowText: bc.ShowText, Foreground: fg, Background: bg,
	})
}

func (e *Emitter) resolve(uri string) string {
	if e.resolver == nil {
		return uri
	}
	return e.resolver.Resolve(uri)
}
