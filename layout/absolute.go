package layout

import "github.com/flowglyph/flowglyph/template"

// resolveAbsoluteChildren positions position:absolute children against
// container's padding box. Each offset side (top/right/bottom/left) that
// is set pins that edge; an item with neither horizontal offset set, or
// neither vertical offset set, falls back to a static position — the
// spot it would have occupied as an in-flow sibling at its original
// index. The teacher's positionAbsolute always anchors unconstrained
// absolute items at the padding-box origin with no flow-position
// fallback; computing a static position generalizes that to match
// normal CSS absolute positioning.
func (e *engine) resolveAbsoluteChildren(parent *node, absolute []*node, measureParentW, measureParentH, contentOriginX, contentOriginY, contentW, contentH float64, depth int) error {
	if len(absolute) == 0 {
		return nil
	}
	statics := e.staticPositions(parent, absolute, measureParentW, measureParentH)

	for _, c := range absolute {
		if err := e.resolve(c, 0, 0, contentW, contentH, depth+1); err != nil {
			return err
		}
		static := statics[c]

		left, leftOk := resolveOffset(c.el.Base.Left, contentW)
		right, rightOk := resolveOffset(c.el.Base.Right, contentW)
		top, topOk := resolveOffset(c.el.Base.Top, contentH)
		bottom, bottomOk := resolveOffset(c.el.Base.Bottom, contentH)

		var x, y float64
		switch {
		case leftOk:
			x = left
		case rightOk:
			x = contentW - right - c.rect.Width
		default:
			x = static.X
		}
		switch {
		case topOk:
			y = top
		case bottomOk:
			y = contentH - bottom - c.rect.Height
		default:
			y = static.Y
		}

		translate(c, contentOriginX+x-c.rect.X, contentOriginY+y-c.rect.Y)
	}
	return nil
}

func resolveOffset(u *template.Unit, basis float64) (float64, bool) {
	if u == nil {
		return 0, false
	}
	return u.Resolve(basis, defaultFontSize)
}

// staticPositions computes, for each absolute child, the position it
// would have been assigned had it stayed in flow at its original sibling
// index — by running the normal flex algorithm once over the full
// sibling list with absolute items contributing zero main/cross size
// (so they never perturb in-flow siblings' sizing or gaps), then reading
// back where each stand-in landed.
func (e *engine) staticPositions(parent *node, absolute []*node, measureParentW, measureParentH float64) map[*node]Rect {
	fa := parent.el.Flex
	isRow := fa.Direction.IsRow()

	mainLimit := measureParentW
	if !isRow {
		mainLimit = measureParentH
	}

	var all []*flexItem
	standIns := make(map[*node]*flexItem, len(absolute))
	for _, c := range parent.children {
		if c.isDisplayNone() {
			continue
		}
		if c.isAbsolute() {
			it := &flexItem{n: c}
			standIns[c] = it
			all = append(all, it)
			continue
		}
		_ = e.resolve(c, 0, 0, measureParentW, measureParentH, 0)
		all = append(all, buildFlexItem(c, isRow, mainLimit))
	}

	gap := fa.Gap.ResolveOr(0, defaultFontSize, 0)
	lines := buildFlexLines(all, fa.Wrap != template.NoWrap, mainLimit, gap)
	for _, ln := range lines {
		placeOneLine(&ln, isRow, fa, mainLimit, gap)
		for _, it := range ln.items {
			resolveCrossPlacement(it, isRow, ln.cross, fa.Align)
		}
	}

	out := make(map[*node]Rect, len(absolute))
	for c, it := range standIns {
		if isRow {
			out[c] = Rect{X: it.localMainOffset, Y: it.localCrossPos}
		} else {
			out[c] = Rect{X: it.localCrossPos, Y: it.localMainOffset}
		}
	}
	return out
}
