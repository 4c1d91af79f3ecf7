package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

type recordingConsumer struct {
	events []Event
}

func (r *recordingConsumer) Consume(ev Event) { r.events = append(r.events, ev) }

func (r *recordingConsumer) kinds() []Kind {
	ks := make([]Kind, len(r.events))
	for i, ev := range r.events {
		ks[i] = ev.Kind
	}
	return ks
}

func textBox(content string) *layout.Box {
	base := template.DefaultBaseAttributes()
	el := &template.Element{Kind: template.KindText, Base: base, Text: &template.TextAttributes{Content: content}}
	rect := layout.Rect{X: 0, Y: 0, Width: 40, Height: 20}
	return &layout.Box{Element: el, Rect: rect, ContentRect: rect, Opacity: 1}
}

func TestEmitLeafProducesTextRun(t *testing.T) {
	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(textBox("hello"))
	require.Equal(t, []Kind{KindDrawTextRun}, c.kinds())
	require.Equal(t, "hello", c.events[0].Text)
}

func TestEmitFlexRecursesIntoChildrenInOrder(t *testing.T) {
	base := template.DefaultBaseAttributes()
	root := &layout.Box{
		Element: &template.Element{Kind: template.KindFlex, Base: base},
		Rect:    layout.Rect{Width: 100, Height: 100},
		Opacity: 1,
		Children: []*layout.Box{
			textBox("a"),
			textBox("b"),
		},
	}
	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(root)
	require.Equal(t, []Kind{KindDrawTextRun, KindDrawTextRun}, c.kinds())
	require.Equal(t, "a", c.events[0].Text)
	require.Equal(t, "b", c.events[1].Text)
}

func TestEmitPushesAndPopsOpacityAndTransform(t *testing.T) {
	base := template.DefaultBaseAttributes()
	base.Opacity = 0.5
	base.Rotate = template.Rotate{Kind: template.RotateRight}
	b := textBox("x")
	b.Element = &template.Element{Kind: template.KindText, Base: base, Text: &template.TextAttributes{Content: "x"}}
	b.Opacity = 0.5
	b.Rotation = base.Rotate

	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(b)
	ks := c.kinds()
	require.Equal(t, KindPushOpacity, ks[0])
	require.Equal(t, KindPushTransform, ks[1])
	require.Equal(t, KindDrawTextRun, ks[2])
	require.Equal(t, KindPopTransform, ks[3])
	require.Equal(t, KindPopOpacity, ks[4])
	require.InDelta(t, 90.0, c.events[1].RotateDeg, 0.001)
}

func TestEmitBackgroundBeforeContent(t *testing.T) {
	base := template.DefaultBaseAttributes()
	bg := "#ff0000"
	base.Background = &bg
	b := textBox("x")
	b.Element = &template.Element{Kind: template.KindText, Base: base, Text: &template.TextAttributes{Content: "x"}}

	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(b)
	require.Equal(t, []Kind{KindFillRect, KindDrawTextRun}, c.kinds())
}

func TestEmitUniformBorderEmitsOneStrokeRect(t *testing.T) {
	base := template.DefaultBaseAttributes()
	side := units.ParseBorderShorthand("1px solid #000000")
	base.Border = units.BorderValues{Top: side, Right: side, Bottom: side, Left: side}
	b := textBox("x")
	b.Element = &template.Element{Kind: template.KindText, Base: base, Text: &template.TextAttributes{Content: "x"}}

	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(b)
	require.Contains(t, c.kinds(), KindStrokeRect)
	strokeCount := 0
	for _, k := range c.kinds() {
		if k == KindStrokeRect {
			strokeCount++
		}
	}
	require.Equal(t, 1, strokeCount)
}

func TestEmitClipPushesAndPopsAroundChildren(t *testing.T) {
	base := template.DefaultBaseAttributes()
	root := &layout.Box{
		Element:     &template.Element{Kind: template.KindFlex, Base: base},
		Rect:        layout.Rect{Width: 100, Height: 100},
		ContentRect: layout.Rect{Width: 100, Height: 100},
		Opacity:     1,
		Clip:        true,
		Children:    []*layout.Box{textBox("a")},
	}
	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(root)
	ks := c.kinds()
	require.Equal(t, KindPushClip, ks[0])
	require.Equal(t, KindDrawTextRun, ks[1])
	require.Equal(t, KindPopClip, ks[2])
}

func TestEmitImageUsesResolver(t *testing.T) {
	base := template.DefaultBaseAttributes()
	el := &template.Element{Kind: template.KindImage, Base: base, Image: &template.ImageAttributes{Src: "photo.png"}}
	b := &layout.Box{Element: el, Rect: layout.Rect{Width: 10, Height: 10}, ContentRect: layout.Rect{Width: 10, Height: 10}, Opacity: 1}

	c := &recordingConsumer{}
	NewEmitter(c, resolverFunc(func(uri string) string { return "handle:" + uri })).Emit(b)
	require.Equal(t, []Kind{KindDrawBitmap}, c.kinds())
	require.Equal(t, "handle:photo.png", c.events[0].Handle)
}

type resolverFunc func(string) string

func (f resolverFunc) Resolve(uri string) string { return f(uri) }

type stubShaper struct {
	lines      []string
	w, h       float64
	gotMaxW    float64
	gotContent string
}

func (s *stubShaper) ShapeText(t *template.TextAttributes, maxWidth, _ float64) ([]string, float64, float64) {
	s.gotMaxW = maxWidth
	s.gotContent = t.Content
	return s.lines, s.w, s.h
}

func TestEmitTextWithShaperEmitsOneEventPerLine(t *testing.T) {
	shaper := &stubShaper{lines: []string{"one", "two", "three"}, w: 30, h: 60}
	b := textBox("one two three")
	b.ContentRect = layout.Rect{X: 5, Y: 10, Width: 40, Height: 60}

	c := &recordingConsumer{}
	NewEmitter(c, nil).WithTextShaper(shaper).Emit(b)

	require.Equal(t, []Kind{KindDrawTextRun, KindDrawTextRun, KindDrawTextRun}, c.kinds())
	require.Equal(t, "one", c.events[0].Text)
	require.Equal(t, "two", c.events[1].Text)
	require.Equal(t, "three", c.events[2].Text)
	require.Equal(t, 40.0, shaper.gotMaxW)
	require.Equal(t, "one two three", shaper.gotContent)
	require.Less(t, c.events[0].Baseline, c.events[1].Baseline)
	require.Less(t, c.events[1].Baseline, c.events[2].Baseline)
}

func TestEmitTextWithoutShaperEmitsSingleLine(t *testing.T) {
	c := &recordingConsumer{}
	NewEmitter(c, nil).Emit(textBox("unwrapped content"))
	require.Equal(t, []Kind{KindDrawTextRun}, c.kinds())
	require.Equal(t, "unwrapped content", c.events[0].Text)
}
