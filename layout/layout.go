package layout

import (
	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

// Box is one resolved rectangle in the laid-out tree, consumed by the
// scene emitter walking in document order to paint.
type Box struct {
	Element     *template.Element
	Rect        Rect // border-box, canvas-space
	ContentRect Rect
	Rotation    template.Rotate
	Opacity     float64
	Clip        bool // Overflow: hidden
	Children    []*Box
}

// Layout resolves tpl's element tree into a tree of Boxes sized and
// positioned against the canvas. The top-level `layout:` sequence is
// wrapped as a synthetic root Flex(Column): a canvas dimension behaves
// like an ordinary auto-sized container dimension whenever Canvas.Fixed
// doesn't pin it (spec §3.5), so the root container just reuses the same
// flex resolution as any nested container.
func Layout(tpl *template.Template, m Measurer, rl limits.ResourceLimits) (*Box, error) {
	width, widthFixed := canvasDimension(tpl.Canvas.Width, tpl.Canvas.Fixed, template.FixedWidthOnly)
	height, heightFixed := canvasDimension(tpl.Canvas.Height, tpl.Canvas.Fixed, template.FixedHeightOnly)

	root := template.Element{
		Kind: template.KindFlex,
		Base: template.DefaultBaseAttributes(),
		Flex: &template.FlexAttributes{Direction: template.DirectionColumn, Children: tpl.Elements},
	}
	root.Base.Width = units.Auto
	root.Base.Height = units.Auto
	if widthFixed {
		root.Base.Width = units.Pixels(width)
	}
	if heightFixed {
		root.Base.Height = units.Pixels(height)
	}
	root.Base.Background = tpl.Canvas.Background

	n := buildNode(&root)
	e := &engine{measurer: m, limits: rl}
	if err := e.resolve(n, 0, 0, width, height, 0); err != nil {
		return nil, err
	}
	return toBox(n), nil
}

func canvasDimension(v *uint32, fixed, want template.CanvasFixed) (float64, bool) {
	isFixed := fixed == want || fixed == template.FixedBoth
	if !isFixed || v == nil {
		return 0, false
	}
	return float64(*v), true
}

func toBox(n *node) *Box {
	b := &Box{
		Element:     n.el,
		Rect:        n.rect,
		ContentRect: n.rect.Inset(n.nonContentEdges()),
		Rotation:    n.el.Base.Rotate,
		Opacity:     n.el.Base.Opacity,
		Clip:        n.el.Base.Overflow == template.OverflowHidden,
	}
	for _, c := range n.children {
		if c.isDisplayNone() {
			continue
		}
		b.Children = append(b.Children, toBox(c))
	}
	return b
}
