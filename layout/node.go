package layout

import (
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

const defaultFontSize = 16.0

// marginEdges is a margin's four sides, each either a resolved pixel
// offset or flagged Auto — auto margins absorb main-axis free space
// during flex placement (spec §4.4's "auto margins") rather than taking
// a fixed value.
type marginEdges struct {
	Top, Right, Bottom, Left                 float64
	AutoTop, AutoRight, AutoBottom, AutoLeft bool
}

func resolveMargin(m units.MarginValues, parentWidth, fontSize float64) marginEdges {
	resolve := func(mv units.MarginValue) (float64, bool) {
		v, fixed := mv.Resolve(parentWidth, fontSize)
		return v, !fixed
	}
	var e marginEdges
	e.Top, e.AutoTop = resolve(m.Top)
	e.Right, e.AutoRight = resolve(m.Right)
	e.Bottom, e.AutoBottom = resolve(m.Bottom)
	e.Left, e.AutoLeft = resolve(m.Left)
	return e
}

func (e marginEdges) edges() Edges {
	return Edges{Top: e.Top, Right: e.Right, Bottom: e.Bottom, Left: e.Left}
}

// node is one resolved box in the layout tree, mirroring the teacher's
// node{shape,st,x,y,w,h} record but carrying a typed template.Element
// plus deferred-Unit box-model fields resolved against the real
// containing block once the parent's content width is known.
type node struct {
	el       *template.Element
	children []*node // only populated for Kind == KindFlex

	padding units.PaddingValues
	margin  marginEdges
	border  units.BorderValues

	rect Rect // border-box, canvas-space; set during placement
}

// buildTree wraps a template.Element tree into layout nodes, recursing
// into Flex children. Table has already been expanded into nested Flex
// elements by the expander (spec §3.4), so layout never special-cases it.
func buildTree(elements []template.Element) []*node {
	nodes := make([]*node, 0, len(elements))
	for i := range elements {
		nodes = append(nodes, buildNode(&elements[i]))
	}
	return nodes
}

func buildNode(el *template.Element) *node {
	n := &node{el: el}
	if el.Kind == template.KindFlex && el.Flex != nil {
		n.children = buildTree(el.Flex.Children)
	}
	return n
}

func (n *node) isDisplayNone() bool {
	return n.el.Base.Display == template.DisplayNone
}

func (n *node) isAbsolute() bool {
	return n.el.Base.Position == template.PosAbsolute
}

// resolveBoxModel pins this node's padding/margin to pixels against
// parentContentWidth, the CSS convention that both padding and margin
// percentages resolve against the containing block's width regardless of
// axis (spec §3.2 gives the shorthand grammar but leaves the percent
// basis to CSS convention, which this follows).
func (n *node) resolveBoxModel(parentContentWidth float64) {
	n.padding = n.el.Base.Padding.Resolve(parentContentWidth, defaultFontSize)
	n.margin = resolveMargin(n.el.Base.Margin, parentContentWidth, defaultFontSize)
	n.border = n.el.Base.Border
}

func (n *node) borderEdges() Edges {
	return Edges{
		Top:    n.border.Top.Width,
		Right:  n.border.Right.Width,
		Bottom: n.border.Bottom.Width,
		Left:   n.border.Left.Width,
	}
}

// nonContentEdges is padding+border combined, the offset between a node's
// border-box and its content-box on each side.
func (n *node) nonContentEdges() Edges {
	b := n.borderEdges()
	return Edges{
		Top:    n.padding.Top + b.Top,
		Right:  n.padding.Right + b.Right,
		Bottom: n.padding.Bottom + b.Bottom,
		Left:   n.padding.Left + b.Left,
	}
}

// resolvedOwnSize resolves the node's own Width/Height attributes to
// pixels against the parent's content box, honoring min/max clamps and
// aspect-ratio (spec §3.4's AspectRatio: when only one of width/height is
// explicit, the other derives from it).
func resolvedOwnSize(base *template.BaseAttributes, parentW, parentH float64) (w, h float64, wAuto, hAuto bool) {
	wv, wOk := base.Width.Resolve(parentW, defaultFontSize)
	hv, hOk := base.Height.Resolve(parentH, defaultFontSize)

	if base.AspectRatio != nil && *base.AspectRatio > 0 {
		ratio := *base.AspectRatio
		switch {
		case wOk && !hOk:
			hv, hOk = wv/ratio, true
		case hOk && !wOk:
			wv, wOk = hv*ratio, true
		}
	}

	w, h = wv, hv
	wAuto, hAuto = !wOk, !hOk

	if base.MinWidth != nil {
		if mv, ok := base.MinWidth.Resolve(parentW, defaultFontSize); ok && !wAuto && w < mv {
			w = mv
		}
	}
	if base.MaxWidth != nil {
		if mv, ok := base.MaxWidth.Resolve(parentW, defaultFontSize); ok && !wAuto && w > mv {
			w = mv
		}
	}
	if base.MinHeight != nil {
		if mv, ok := base.MinHeight.Resolve(parentH, defaultFontSize); ok && !hAuto && h < mv {
			h = mv
		}
	}
	if base.MaxHeight != nil {
		if mv, ok := base.MaxHeight.Resolve(parentH, defaultFontSize); ok && !hAuto && h > mv {
			h = mv
		}
	}
	return w, h, wAuto, hAuto
}
