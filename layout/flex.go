package layout

import (
	"math"
	"sort"

	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/template"
)

// engine carries the dependencies shared by one Layout call: the
// Measurer supplying intrinsic content size and the resource limits
// bounding recursion depth and flex line count.
type engine struct {
	measurer  Measurer
	limits    limits.ResourceLimits
	flexLines int
}

// resolve lays n out as a border-box within at most
// (parentContentW, parentContentH) of available space, positioning its
// border-box top-left at (originX, originY). depth is the current
// recursion depth, bounded by MaxRenderDepth (spec §4.7).
//
// Nested Flex children are never re-laid-out once their main-axis size
// is adjusted by grow/shrink resolution — only their own border-box
// rectangle is resized; their already-placed descendants are translated,
// not recomputed. This mirrors the teacher's AutoLayout, whose nested
// containers only resize when wrapped by a shape that separately opts
// into the Resizable/Boundable capability interfaces — plain nesting
// never triggers a second pass either.
func (e *engine) resolve(n *node, originX, originY, parentContentW, parentContentH float64, depth int) error {
	if depth > e.limits.MaxRenderDepth() {
		return flowerr.Limit("MaxRenderDepth", float64(depth), float64(e.limits.MaxRenderDepth()))
	}
	if n.isDisplayNone() {
		n.rect = Rect{X: originX, Y: originY}
		return nil
	}

	n.resolveBoxModel(parentContentW)
	nonContent := n.nonContentEdges()
	w, h, wAuto, hAuto := resolvedOwnSize(&n.el.Base, parentContentW, parentContentH)

	if n.el.Kind == template.KindFlex {
		return e.resolveFlexContainer(n, originX, originY, w, h, wAuto, hAuto, nonContent, depth)
	}
	return e.resolveLeaf(n, originX, originY, w, h, wAuto, hAuto, nonContent)
}

func (e *engine) resolveLeaf(n *node, originX, originY, w, h float64, wAuto, hAuto bool, nonContent Edges) error {
	availContentW := w - nonContent.Horizontal()
	if wAuto || availContentW < 0 {
		availContentW = 0
	}
	cw, ch := e.measureIntrinsic(n, availContentW)
	if wAuto {
		w = cw + nonContent.Horizontal()
	}
	if hAuto {
		h = ch + nonContent.Vertical()
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n.rect = Rect{X: originX, Y: originY, Width: w, Height: h}
	return nil
}

func (e *engine) measureIntrinsic(n *node, availContentW float64) (w, h float64) {
	switch n.el.Kind {
	case template.KindText:
		return e.measurer.MeasureText(n.el.Text, availContentW, resolveFontSize(n.el.Text))
	case template.KindImage:
		return measureImageBox(n.el.Image, e.measurer)
	case template.KindSvg:
		return e.measurer.MeasureSvg(n.el.Svg)
	case template.KindQr:
		return measureSquare(n.el.Qr.Size, e.measurer.MeasureQr(n.el.Qr))
	case template.KindBarcode:
		return measureBarcodeBox(n.el.Barcode, e.measurer)
	case template.KindSeparator:
		return separatorIntrinsic(n.el.Separator)
	default:
		return 0, 0
	}
}

func resolveFontSize(t *template.TextAttributes) float64 {
	return t.Size.ResolveOr(defaultFontSize, defaultFontSize, defaultFontSize)
}

func measureSquare(size template.Unit, naturalW, naturalH float64) (float64, float64) {
	if v, ok := size.Resolve(0, defaultFontSize); ok {
		return v, v
	}
	return naturalW, naturalH
}

func measureImageBox(img *template.ImageAttributes, m Measurer) (float64, float64) {
	naturalW, naturalH := m.MeasureImage(img)
	wv, wOk := img.ImageWidth.Resolve(0, defaultFontSize)
	hv, hOk := img.ImageHeight.Resolve(0, defaultFontSize)
	switch {
	case wOk && hOk:
		return wv, hv
	case wOk && !hOk:
		if naturalW > 0 {
			return wv, wv * naturalH / naturalW
		}
		return wv, naturalH
	case hOk && !wOk:
		if naturalH > 0 {
			return naturalW * hv / naturalH, hv
		}
		return naturalW, hv
	default:
		return naturalW, naturalH
	}
}

func measureBarcodeBox(b *template.BarcodeAttributes, m Measurer) (float64, float64) {
	naturalW, naturalH := m.MeasureBarcode(b)
	wv, wOk := b.BarcodeWidth.Resolve(0, defaultFontSize)
	hv, hOk := b.BarcodeHeight.Resolve(0, defaultFontSize)
	if !wOk {
		wv = naturalW
	}
	if !hOk {
		hv = naturalH
	}
	return wv, hv
}

func separatorIntrinsic(s *template.SeparatorAttributes) (float64, float64) {
	thickness := s.Thickness.ResolveOr(0, defaultFontSize, 1)
	if s.Orientation == template.OrientationVertical {
		return thickness, 0
	}
	return 0, thickness
}

// flexItem is one in-flow child's resolved measurements for one line,
// generalizing the teacher's itemRec to float64 sizes and Unit-resolved
// auto margins.
type flexItem struct {
	n      *node
	margin marginEdges

	naturalMain, naturalCross float64 // border-box size from the measuring pass
	baseMain                  float64 // basis/width/height override or natural
	sizeMain, sizeCross       float64 // post grow/shrink and cross alignment

	hasMinMain, hasMaxMain bool
	minMain, maxMain       float64 // min/max-width|height resolved onto the main axis (spec §4.4.3)

	selfAlign                  template.AlignSelf
	autoMainStart, autoMainEnd bool

	localMainOffset, localCrossOffset, localCrossPos float64
}

func (e *engine) resolveFlexContainer(n *node, originX, originY, w, h float64, wAuto, hAuto bool, nonContent Edges, depth int) error {
	fa := n.el.Flex
	isRow := fa.Direction.IsRow()
	reversed := fa.Direction.IsReversed()

	contentW := w - nonContent.Horizontal()
	contentH := h - nonContent.Vertical()
	measureParentW := contentW
	if wAuto {
		measureParentW = 0
	}
	measureParentH := contentH
	if hAuto {
		measureParentH = 0
	}

	inFlow := make([]*node, 0, len(n.children))
	var absolute []*node
	for _, c := range n.children {
		if c.isDisplayNone() {
			continue
		}
		if c.isAbsolute() {
			absolute = append(absolute, c)
			continue
		}
		inFlow = append(inFlow, c)
	}

	parentMain := measureParentW
	if !isRow {
		parentMain = measureParentH
	}
	items := make([]*flexItem, 0, len(inFlow))
	for _, c := range inFlow {
		if err := e.resolve(c, 0, 0, measureParentW, measureParentH, depth+1); err != nil {
			return err
		}
		items = append(items, buildFlexItem(c, isRow, parentMain))
	}

	gap := fa.Gap.ResolveOr(0, defaultFontSize, 0)
	rowGap := fa.RowGap.ResolveOr(0, defaultFontSize, gap)
	colGap := fa.ColumnGap.ResolveOr(0, defaultFontSize, gap)
	gapMain, gapCross := colGap, rowGap
	if !isRow {
		gapMain, gapCross = rowGap, colGap
	}

	mainLimit := contentW
	if !isRow {
		mainLimit = contentH
	}
	wrap := fa.Wrap != template.NoWrap
	mainIsAuto := (isRow && wAuto) || (!isRow && hAuto)

	lines := buildFlexLines(items, wrap && !mainIsAuto, mainLimit, gapMain)
	if reversed {
		for li := range lines {
			reverseItems(lines[li].items)
		}
	}

	e.flexLines += len(lines)
	if e.flexLines > e.limits.MaxFlexLines() {
		return flowerr.Limit("MaxFlexLines", float64(e.flexLines), float64(e.limits.MaxFlexLines()))
	}

	// Finalize auto main/cross content size from natural sums (the
	// teacher's computeInner/innerH logic, generalized to wrapped lines).
	if mainIsAuto {
		maxLine := 0.0
		for _, ln := range lines {
			if ln.base > maxLine {
				maxLine = ln.base
			}
		}
		if isRow {
			contentW = maxLine
		} else {
			contentH = maxLine
		}
	}
	crossIsAuto := (isRow && hAuto) || (!isRow && wAuto)
	if crossIsAuto {
		totalCross := 0.0
		for i, ln := range lines {
			if i > 0 {
				totalCross += gapCross
			}
			totalCross += ln.cross
		}
		if isRow {
			contentH = totalCross
		} else {
			contentW = totalCross
		}
	}

	mainLimit, crossLimit := contentW, contentH
	if !isRow {
		mainLimit, crossLimit = contentH, contentW
	}
	placeFlexLines(lines, isRow, fa, mainLimit, crossLimit, gapMain, gapCross)

	if wAuto {
		w = contentW + nonContent.Horizontal()
	}
	if hAuto {
		h = contentH + nonContent.Vertical()
	}
	n.rect = Rect{X: originX, Y: originY, Width: w, Height: h}

	contentOriginX := originX + nonContent.Left
	contentOriginY := originY + nonContent.Top
	for _, ln := range lines {
		for _, it := range ln.items {
			finalizeFlexItem(it, isRow, contentOriginX, contentOriginY)
		}
	}

	return e.resolveAbsoluteChildren(n, absolute, measureParentW, measureParentH, contentOriginX, contentOriginY, contentW, contentH, depth)
}

func reverseItems(items []*flexItem) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

func buildFlexItem(c *node, isRow bool, parentMain float64) *flexItem {
	margin := c.margin
	naturalW, naturalH := c.rect.Width, c.rect.Height
	base := c.el.Base

	var naturalMain, naturalCross, baseMain float64
	var autoStart, autoEnd bool
	var minAttr, maxAttr *template.Unit

	if isRow {
		naturalMain, naturalCross = naturalW+margin.Horizontal(), naturalH+margin.Vertical()
		if v, ok := base.Basis.Resolve(0, defaultFontSize); ok {
			baseMain = v
		} else if v, ok := base.Width.Resolve(0, defaultFontSize); ok {
			baseMain = v
		} else {
			baseMain = naturalW
		}
		autoStart, autoEnd = margin.AutoLeft, margin.AutoRight
		minAttr, maxAttr = base.MinWidth, base.MaxWidth
	} else {
		naturalMain, naturalCross = naturalH+margin.Vertical(), naturalW+margin.Horizontal()
		if v, ok := base.Basis.Resolve(0, defaultFontSize); ok {
			baseMain = v
		} else if v, ok := base.Height.Resolve(0, defaultFontSize); ok {
			baseMain = v
		} else {
			baseMain = naturalH
		}
		autoStart, autoEnd = margin.AutoTop, margin.AutoBottom
		minAttr, maxAttr = base.MinHeight, base.MaxHeight
	}

	it := &flexItem{
		n: c, margin: margin,
		naturalMain: naturalMain, naturalCross: naturalCross,
		baseMain: baseMain, sizeMain: baseMain,
		selfAlign:     base.AlignSelf,
		autoMainStart: autoStart, autoMainEnd: autoEnd,
	}
	if minAttr != nil {
		if v, ok := minAttr.Resolve(parentMain, defaultFontSize); ok {
			it.hasMinMain, it.minMain = true, v
		}
	}
	if maxAttr != nil {
		if v, ok := maxAttr.Resolve(parentMain, defaultFontSize); ok {
			it.hasMaxMain, it.maxMain = true, v
		}
	}
	return it
}

func (m marginEdges) Horizontal() float64 { return m.Left + m.Right }
func (m marginEdges) Vertical() float64   { return m.Top + m.Bottom }

// flexLine groups items sharing one wrapped line (spec §4.4.2).
type flexLine struct {
	items []*flexItem
	base  float64 // sum of main-axis sizes+margins+gaps (pre-flex)
	cross float64 // max cross-axis size+margins in the line
}

func buildFlexLines(items []*flexItem, wrap bool, mainLimit, gapMain float64) []flexLine {
	var lines []flexLine
	var cur flexLine
	push := func() {
		if len(cur.items) > 0 {
			lines = append(lines, cur)
			cur = flexLine{}
		}
	}
	for _, it := range items {
		withGap := it.naturalMain
		if len(cur.items) > 0 {
			withGap += gapMain
		}
		if wrap && len(cur.items) > 0 && cur.base+withGap > mainLimit {
			push()
		}
		if len(cur.items) > 0 {
			cur.base += gapMain
		}
		cur.base += it.naturalMain
		if it.naturalCross > cur.cross {
			cur.cross = it.naturalCross
		}
		cur.items = append(cur.items, it)
	}
	push()
	return lines
}

func placeFlexLines(lines []flexLine, isRow bool, fa *template.FlexAttributes, mainLimit, crossLimit, gapMain, gapCross float64) {
	n := len(lines)
	if n == 0 {
		return
	}
	totalCross := 0.0
	for _, ln := range lines {
		totalCross += ln.cross
	}
	leftover := crossLimit - totalCross - gapCross*float64(n-1)
	if leftover < 0 {
		leftover = 0
	}

	crossStart, interGap, extraPerLine := 0.0, gapCross, 0.0
	switch fa.AlignContent {
	case template.AlignContentCenter:
		crossStart = leftover / 2
	case template.AlignContentEnd:
		crossStart = leftover
	case template.AlignContentStretch:
		extraPerLine = leftover / float64(n)
	case template.AlignContentSpaceBetween:
		if n > 1 {
			interGap = gapCross + leftover/float64(n-1)
		}
	case template.AlignContentSpaceAround:
		extra := leftover / float64(n)
		crossStart = extra / 2
		interGap = gapCross + extra
	case template.AlignContentSpaceEvenly:
		extra := leftover / float64(n+1)
		crossStart = extra
		interGap = gapCross + extra
	}

	crossOffset := crossStart
	for li := range lines {
		ln := &lines[li]
		placeOneLine(ln, isRow, fa, mainLimit, gapMain)
		lineCross := ln.cross + extraPerLine
		lineOffset := crossOffset
		if fa.Wrap == template.WrapReverse {
			lineOffset = crossLimit - crossOffset - lineCross
		}
		for _, it := range ln.items {
			resolveCrossPlacement(it, isRow, lineCross, fa.Align)
			it.localCrossOffset = lineOffset
		}
		crossOffset += lineCross + interGap
	}
}

func placeOneLine(ln *flexLine, isRow bool, fa *template.FlexAttributes, mainLimit, gapMain float64) {
	n := len(ln.items)
	if n == 0 {
		return
	}
	autoMargins := 0
	for _, it := range ln.items {
		if it.autoMainStart {
			autoMargins++
		}
		if it.autoMainEnd {
			autoMargins++
		}
	}
	totalGaps := gapMain * float64(n-1)
	resolveMainSizes(ln.items, isRow, mainLimit, totalGaps)

	used := totalGaps
	for _, it := range ln.items {
		used += it.sizeMain + mainMarginSum(it, isRow)
	}
	remaining := mainLimit - used
	if remaining < 0 {
		remaining = 0
	}

	if autoMargins > 0 {
		applyAutoMarginShare(ln.items, isRow, remaining/float64(autoMargins))
		placeMainCursor(ln.items, isRow, 0, gapMain)
		return
	}

	offset, extra := 0.0, 0.0
	switch fa.Justify {
	case template.JustifyCenter:
		offset = remaining / 2
	case template.JustifyEnd:
		offset = remaining
	case template.JustifySpaceBetween:
		if n > 1 {
			extra = remaining / float64(n-1)
		}
	case template.JustifySpaceAround:
		extra = remaining / float64(n)
		offset = extra / 2
	case template.JustifySpaceEvenly:
		extra = remaining / float64(n+1)
		offset = extra
	}
	placeMainCursor(ln.items, isRow, offset, gapMain+extra)
}

func mainMarginSum(it *flexItem, isRow bool) float64 {
	if isRow {
		return it.margin.Left + it.margin.Right
	}
	return it.margin.Top + it.margin.Bottom
}

// resolveMainSizes implements spec §4.4.3's flexible-length resolution:
// distribute the line's free space across items by grow/shrink weight,
// then clamp every item against its own min/max-main; any item a clamp
// touches freezes at that clamped size and drops out of the weighted
// pool, and the remaining free space is recomputed and redistributed
// among the items still unfrozen. Repeats until a round produces no new
// clamp or every item is frozen — every repeated round freezes at least
// one more item, so this converges in at most N+1 rounds (P5).
func resolveMainSizes(items []*flexItem, isRow bool, mainLimit, totalGaps float64) {
	n := len(items)
	if n == 0 {
		return
	}
	sumBase := 0.0
	for _, it := range items {
		sumBase += it.baseMain + mainMarginSum(it, isRow)
	}
	growing := mainLimit-sumBase-totalGaps > 0

	frozen := make([]bool, n)
	for _, it := range items {
		it.sizeMain = it.baseMain
	}

	for round := 0; round <= n; round++ {
		var unfrozen []*flexItem
		frozenUsed := 0.0
		unfrozenBase := 0.0
		totalWeight := 0.0
		for i, it := range items {
			if frozen[i] {
				frozenUsed += it.sizeMain + mainMarginSum(it, isRow)
				continue
			}
			unfrozen = append(unfrozen, it)
			unfrozenBase += it.baseMain + mainMarginSum(it, isRow)
			totalWeight += mainWeight(it, growing)
		}
		if len(unfrozen) == 0 {
			break
		}

		free := mainLimit - totalGaps - frozenUsed - unfrozenBase
		switch {
		case growing && free > 0 && totalWeight > 0:
			distributeFree(unfrozen, free, func(it *flexItem) float64 { return mainWeight(it, true) }, totalWeight, 1)
		case !growing && free < 0 && totalWeight > 0:
			distributeFree(unfrozen, -free, func(it *flexItem) float64 { return mainWeight(it, false) }, totalWeight, -1)
		default:
			for _, it := range unfrozen {
				it.sizeMain = it.baseMain
			}
		}

		violated := false
		for i, it := range items {
			if frozen[i] {
				continue
			}
			clamped := it.sizeMain
			if it.hasMinMain && clamped < it.minMain {
				clamped = it.minMain
			}
			if it.hasMaxMain && clamped > it.maxMain {
				clamped = it.maxMain
			}
			if clamped != it.sizeMain {
				it.sizeMain = clamped
				frozen[i] = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}

	for _, it := range items {
		if it.sizeMain < 0 {
			it.sizeMain = 0
		}
	}
}

func mainWeight(it *flexItem, growing bool) float64 {
	if growing {
		return it.n.el.Base.Grow
	}
	s := it.n.el.Base.Shrink
	if s == 0 {
		return 1
	}
	return s
}

// distributeFree spreads amount across items weighted by weight(it),
// using floor-plus-largest-fractional-remainder so the pixel total lands
// exactly on amount instead of drifting from repeated float rounding.
func distributeFree(items []*flexItem, amount float64, weight func(*flexItem) float64, totalWeight float64, sign float64) {
	floors := make([]float64, len(items))
	fracs := make([]float64, len(items))
	sum := 0.0
	for i, it := range items {
		share := amount * (weight(it) / totalWeight)
		f := math.Floor(share)
		floors[i] = f
		fracs[i] = share - f
		sum += f
	}
	rem := int(math.Round(amount - sum))
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return fracs[idx[a]] > fracs[idx[b]] })
	for k := 0; k < rem && k < len(idx); k++ {
		floors[idx[k]]++
	}
	for i, it := range items {
		it.sizeMain = it.baseMain + sign*floors[i]
	}
}

func applyAutoMarginShare(items []*flexItem, isRow bool, share float64) {
	for _, it := range items {
		if isRow {
			if it.autoMainStart {
				it.margin.Left = share
			}
			if it.autoMainEnd {
				it.margin.Right = share
			}
		} else {
			if it.autoMainStart {
				it.margin.Top = share
			}
			if it.autoMainEnd {
				it.margin.Bottom = share
			}
		}
	}
}

func placeMainCursor(items []*flexItem, isRow bool, startOffset, gapPlusExtra float64) {
	cursor := startOffset
	for i, it := range items {
		if isRow {
			cursor += it.margin.Left
			it.localMainOffset = cursor
			cursor += it.sizeMain + it.margin.Right
		} else {
			cursor += it.margin.Top
			it.localMainOffset = cursor
			cursor += it.sizeMain + it.margin.Bottom
		}
		if i < len(items)-1 {
			cursor += gapPlusExtra
		}
	}
}

func resolveCrossPlacement(it *flexItem, isRow bool, lineCross float64, containerAlign template.AlignItems) {
	var marginStart, marginEnd float64
	if isRow {
		marginStart, marginEnd = it.margin.Top, it.margin.Bottom
	} else {
		marginStart, marginEnd = it.margin.Left, it.margin.Right
	}
	natCross := it.naturalCross - marginStart - marginEnd

	align := containerAlign
	switch it.selfAlign {
	case template.AlignSelfStart:
		align = template.AlignItemsStart
	case template.AlignSelfCenter:
		align = template.AlignItemsCenter
	case template.AlignSelfEnd:
		align = template.AlignItemsEnd
	case template.AlignSelfStretch:
		align = template.AlignItemsStretch
	}

	sizeCross := natCross
	var crossPos float64
	switch align {
	case template.AlignItemsStretch:
		sizeCross = math.Max(1, lineCross-marginStart-marginEnd)
		crossPos = marginStart
	case template.AlignItemsCenter:
		crossPos = (lineCross-sizeCross-marginStart-marginEnd)/2 + marginStart
	case template.AlignItemsEnd:
		crossPos = lineCross - sizeCross - marginEnd
	default: // Start, Baseline (baseline approximated as start; open question)
		crossPos = marginStart
	}
	it.sizeCross = sizeCross
	it.localCrossPos = crossPos
}

func finalizeFlexItem(it *flexItem, isRow bool, contentOriginX, contentOriginY float64) {
	var localX, localY, sizeW, sizeH float64
	if isRow {
		localX, localY = it.localMainOffset, it.localCrossOffset+it.localCrossPos
		sizeW, sizeH = it.sizeMain, it.sizeCross
	} else {
		localX, localY = it.localCrossOffset+it.localCrossPos, it.localMainOffset
		sizeW, sizeH = it.sizeCross, it.sizeMain
	}
	finalX := contentOriginX + localX
	finalY := contentOriginY + localY
	translate(it.n, finalX-it.n.rect.X, finalY-it.n.rect.Y)
	it.n.rect.Width, it.n.rect.Height = sizeW, sizeH
}

// translate shifts n's already-computed subtree by (dx, dy) without
// recomputing box models or re-running nested flex resolution — the
// descendants keep the sizes/positions from the measuring pass, only
// their absolute canvas position changes.
func translate(n *node, dx, dy float64) {
	n.rect.X += dx
	n.rect.Y += dy
	for _, c := range n.children {
		translate(c, dx, dy)
	}
}
