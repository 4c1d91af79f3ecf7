package expand

import (
	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
	"github.com/flowglyph/flowglyph/value"
)

var displayTable = map[string]template.Display{
	"flex": template.DisplayFlex,
	"none": template.DisplayNone,
}

var positionTable = map[string]template.PositionType{
	"static":   template.PosStatic,
	"relative": template.PosRelative,
	"absolute": template.PosAbsolute,
}

var overflowTable = map[string]template.Overflow{
	"visible": template.OverflowVisible,
	"hidden":  template.OverflowHidden,
}

var alignSelfTable = map[string]template.AlignSelf{
	"auto":    template.AlignSelfAuto,
	"start":   template.AlignSelfStart,
	"center":  template.AlignSelfCenter,
	"end":     template.AlignSelfEnd,
	"stretch": template.AlignSelfStretch,
}

var directionTable = map[string]template.FlexDirection{
	"row":            template.DirectionRow,
	"column":         template.DirectionColumn,
	"row-reverse":    template.DirectionRowReverse,
	"column-reverse": template.DirectionColumnReverse,
}

var wrapTable = map[string]template.FlexWrap{
	"nowrap":      template.NoWrap,
	"wrap":        template.Wrap,
	"wrap-reverse": template.WrapReverse,
}

var justifyTable = map[string]template.JustifyContent{
	"start":         template.JustifyStart,
	"center":        template.JustifyCenter,
	"end":           template.JustifyEnd,
	"space-between": template.JustifySpaceBetween,
	"space-around":  template.JustifySpaceAround,
	"space-evenly":  template.JustifySpaceEvenly,
}

var alignItemsTable = map[string]template.AlignItems{
	"start":    template.AlignItemsStart,
	"center":   template.AlignItemsCenter,
	"end":      template.AlignItemsEnd,
	"stretch":  template.AlignItemsStretch,
	"baseline": template.AlignItemsBaseline,
}

var alignContentTable = map[string]template.AlignContent{
	"start":         template.AlignContentStart,
	"center":        template.AlignContentCenter,
	"end":           template.AlignContentEnd,
	"stretch":       template.AlignContentStretch,
	"space-between": template.AlignContentSpaceBetween,
	"space-around":  template.AlignContentSpaceAround,
	"space-evenly":  template.AlignContentSpaceEvenly,
}

var textAlignTable = map[string]template.TextAlign{
	"left":    template.TextAlignLeft,
	"center":  template.TextAlignCenter,
	"right":   template.TextAlignRight,
	"start":   template.TextAlignStart,
	"end":     template.TextAlignEnd,
	"justify": template.TextAlignJustify,
}

var textOverflowTable = map[string]template.TextOverflow{
	"clip":     template.TextOverflowClip,
	"ellipsis": template.TextOverflowEllipsis,
}

var imageFitTable = map[string]template.ImageFit{
	"fill":    template.FitFill,
	"contain": template.FitContain,
	"cover":   template.FitCover,
	"none":    template.FitNone,
}

var separatorOrientationTable = map[string]template.SeparatorOrientation{
	"horizontal": template.OrientationHorizontal,
	"vertical":   template.OrientationVertical,
}

var separatorStyleTable = map[string]template.SeparatorStyle{
	"solid":  template.SeparatorSolid,
	"dashed": template.SeparatorDashed,
	"dotted": template.SeparatorDotted,
}

var errorCorrectionTable = map[string]template.ErrorCorrection{
	"l": template.ErrorCorrectionL,
	"m": template.ErrorCorrectionM,
	"q": template.ErrorCorrectionQ,
	"h": template.ErrorCorrectionH,
}

var barcodeFormatTable = map[string]template.BarcodeFormat{
	"code128": template.BarcodeCode128,
}

// expandTag materializes a non-control-flow node into exactly one
// template.Element: an unrecognized type is a soft failure (spec §7,
// "unknown element types are ignored with a diagnostic record"), while a
// malformed typed attribute on a recognized type is fatal.
func (c *expandCtx) expandTag(typ string, obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	base, err := c.expandBase(obj, evalCtx)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "flex":
		return c.buildFlex(base, obj, evalCtx, depth)
	case "text":
		return c.buildText(base, obj, evalCtx)
	case "image":
		return c.buildImage(base, obj, evalCtx)
	case "svg":
		return c.buildSvg(base, obj, evalCtx)
	case "separator":
		return c.buildSeparator(base, obj, evalCtx)
	case "qr":
		return c.buildQr(base, obj, evalCtx)
	case "barcode":
		return c.buildBarcode(base, obj, evalCtx)
	case "table":
		return c.buildTable(base, obj, evalCtx, depth)
	default:
		c.diagnose(flowerr.CodeUnknownElement, flowerr.SeverityWarning, "unrecognized element type: "+typ)
		return nil, nil
	}
}

// expandBase materializes BaseAttributes shared by every variant.
func (c *expandCtx) expandBase(obj *value.Object, evalCtx *expr.EvalContext) (template.BaseAttributes, error) {
	b := template.DefaultBaseAttributes()

	b.Width = resolveUnit(obj, "width", b.Width, evalCtx)
	b.Height = resolveUnit(obj, "height", b.Height, evalCtx)
	b.MinWidth = resolveOptionalUnit(obj, "min_width", evalCtx)
	b.MaxWidth = resolveOptionalUnit(obj, "max_width", evalCtx)
	b.MinHeight = resolveOptionalUnit(obj, "min_height", evalCtx)
	b.MaxHeight = resolveOptionalUnit(obj, "max_height", evalCtx)

	aspect, err := resolveOptionalFloat(obj, "aspect_ratio", evalCtx)
	if err != nil {
		return b, err
	}
	b.AspectRatio = aspect

	if b.Grow, err = resolveFloat(obj, "grow", b.Grow, evalCtx); err != nil {
		return b, err
	}
	if b.Shrink, err = resolveFloat(obj, "shrink", b.Shrink, evalCtx); err != nil {
		return b, err
	}
	b.Basis = resolveUnit(obj, "basis", b.Basis, evalCtx)
	if b.AlignSelf, err = resolveEnum(obj, "align_self", alignSelfTable, b.AlignSelf, evalCtx); err != nil {
		return b, err
	}
	if b.Order, err = resolveInt(obj, "order", b.Order, evalCtx); err != nil {
		return b, err
	}

	if raw, ok := resolveString(obj, "padding", evalCtx); ok {
		b.Padding = units.ParsePaddingSpec(raw)
	}
	if raw, ok := resolveString(obj, "margin", evalCtx); ok {
		b.Margin = units.ParseMargin(raw)
	}

	if raw, ok := resolveString(obj, "border", evalCtx); ok {
		side := units.ParseBorderShorthand(raw)
		b.Border = units.BorderValues{Top: side, Right: side, Bottom: side, Left: side}
	}
	if raw, ok := resolveString(obj, "border_top", evalCtx); ok {
		b.Border.Top = units.ParseBorderShorthand(raw)
	}
	if raw, ok := resolveString(obj, "border_right", evalCtx); ok {
		b.Border.Right = units.ParseBorderShorthand(raw)
	}
	if raw, ok := resolveString(obj, "border_bottom", evalCtx); ok {
		b.Border.Bottom = units.ParseBorderShorthand(raw)
	}
	if raw, ok := resolveString(obj, "border_left", evalCtx); ok {
		b.Border.Left = units.ParseBorderShorthand(raw)
	}
	b.BorderRadius = resolveUnit(obj, "border_radius", b.BorderRadius, evalCtx)

	if b.Display, err = resolveEnum(obj, "display", displayTable, b.Display, evalCtx); err != nil {
		return b, err
	}
	if b.Position, err = resolveEnum(obj, "position", positionTable, b.Position, evalCtx); err != nil {
		return b, err
	}
	b.Top = resolveOptionalUnit(obj, "top", evalCtx)
	b.Right = resolveOptionalUnit(obj, "right", evalCtx)
	b.Bottom = resolveOptionalUnit(obj, "bottom", evalCtx)
	b.Left = resolveOptionalUnit(obj, "left", evalCtx)

	if b.Overflow, err = resolveEnum(obj, "overflow", overflowTable, b.Overflow, evalCtx); err != nil {
		return b, err
	}
	if b.Opacity, err = resolveFloat(obj, "opacity", b.Opacity, evalCtx); err != nil {
		return b, err
	}
	if raw, ok := resolveString(obj, "rotate", evalCtx); ok {
		b.Rotate = template.ParseRotate(raw)
	}
	if raw, ok := resolveString(obj, "box_shadow", evalCtx); ok {
		b.BoxShadow = &raw
	}
	if raw, ok := resolveString(obj, "background", evalCtx); ok {
		b.Background = &raw
	}

	return b, nil
}

func (c *expandCtx) buildFlex(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	fa := template.FlexAttributes{
		Direction: template.DirectionRow,
	}
	var err error
	if fa.Direction, err = resolveEnum(obj, "direction", directionTable, fa.Direction, evalCtx); err != nil {
		return nil, err
	}
	if fa.Wrap, err = resolveEnum(obj, "wrap", wrapTable, fa.Wrap, evalCtx); err != nil {
		return nil, err
	}
	if fa.Justify, err = resolveEnum(obj, "justify", justifyTable, fa.Justify, evalCtx); err != nil {
		return nil, err
	}
	if fa.Align, err = resolveEnum(obj, "align", alignItemsTable, fa.Align, evalCtx); err != nil {
		return nil, err
	}
	if fa.AlignContent, err = resolveEnum(obj, "align_content", alignContentTable, fa.AlignContent, evalCtx); err != nil {
		return nil, err
	}
	fa.Gap = resolveUnit(obj, "gap", units.Pixels(0), evalCtx)
	fa.RowGap = resolveUnit(obj, "row_gap", fa.Gap, evalCtx)
	fa.ColumnGap = resolveUnit(obj, "column_gap", fa.Gap, evalCtx)

	children, err := c.expandChildren(obj, evalCtx, depth+1)
	if err != nil {
		return nil, err
	}
	fa.Children = children

	return []template.Element{{Kind: template.KindFlex, Base: base, Flex: &fa}}, nil
}

func (c *expandCtx) buildText(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	ta := template.TextAttributes{Size: units.Em(1)}
	ta.Content, _ = resolveString(obj, "content", evalCtx)
	ta.Font, _ = resolveString(obj, "font", evalCtx)
	ta.Size = resolveUnit(obj, "size", ta.Size, evalCtx)
	ta.Color, _ = resolveString(obj, "color", evalCtx)
	var err error
	if ta.Align, err = resolveEnum(obj, "align", textAlignTable, ta.Align, evalCtx); err != nil {
		return nil, err
	}
	if ta.Wrap, err = resolveBool(obj, "wrap", true, evalCtx); err != nil {
		return nil, err
	}
	if ta.MaxLines, err = resolveOptionalUint32(obj, "max_lines", evalCtx); err != nil {
		return nil, err
	}
	if ta.Overflow, err = resolveEnum(obj, "overflow", textOverflowTable, ta.Overflow, evalCtx); err != nil {
		return nil, err
	}
	return []template.Element{{Kind: template.KindText, Base: base, Text: &ta}}, nil
}

func (c *expandCtx) buildImage(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	ia := template.ImageAttributes{ImageWidth: units.Auto, ImageHeight: units.Auto}
	ia.Src, _ = resolveString(obj, "src", evalCtx)
	ia.ImageWidth = resolveUnit(obj, "image_width", ia.ImageWidth, evalCtx)
	ia.ImageHeight = resolveUnit(obj, "image_height", ia.ImageHeight, evalCtx)
	var err error
	if ia.Fit, err = resolveEnum(obj, "fit", imageFitTable, ia.Fit, evalCtx); err != nil {
		return nil, err
	}
	return []template.Element{{Kind: template.KindImage, Base: base, Image: &ia}}, nil
}

func (c *expandCtx) buildSvg(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	sa := template.SvgAttributes{}
	sa.Content, _ = resolveString(obj, "content", evalCtx)
	sa.Src, _ = resolveString(obj, "src", evalCtx)
	var err error
	if sa.Fit, err = resolveEnum(obj, "fit", imageFitTable, sa.Fit, evalCtx); err != nil {
		return nil, err
	}
	return []template.Element{{Kind: template.KindSvg, Base: base, Svg: &sa}}, nil
}

func (c *expandCtx) buildSeparator(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	sep := template.SeparatorAttributes{Thickness: units.Pixels(1), Color: "#000000"}
	var err error
	if sep.Orientation, err = resolveEnum(obj, "orientation", separatorOrientationTable, sep.Orientation, evalCtx); err != nil {
		return nil, err
	}
	if sep.Style, err = resolveEnum(obj, "style", separatorStyleTable, sep.Style, evalCtx); err != nil {
		return nil, err
	}
	if col, ok := resolveString(obj, "color", evalCtx); ok {
		sep.Color = col
	}
	sep.Thickness = resolveUnit(obj, "thickness", sep.Thickness, evalCtx)
	return []template.Element{{Kind: template.KindSeparator, Base: base, Separator: &sep}}, nil
}

func (c *expandCtx) buildQr(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	qa := template.QrAttributes{Size: units.Pixels(64), Foreground: "#000000", Background: "#ffffff"}
	qa.Data, _ = resolveString(obj, "data", evalCtx)
	qa.Size = resolveUnit(obj, "size", qa.Size, evalCtx)
	var err error
	if qa.ErrorCorrection, err = resolveEnum(obj, "error_correction", errorCorrectionTable, qa.ErrorCorrection, evalCtx); err != nil {
		return nil, err
	}
	if fg, ok := resolveString(obj, "foreground", evalCtx); ok {
		qa.Foreground = fg
	}
	if bg, ok := resolveString(obj, "background", evalCtx); ok {
		qa.Background = bg
	}
	return []template.Element{{Kind: template.KindQr, Base: base, Qr: &qa}}, nil
}

func (c *expandCtx) buildBarcode(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext) ([]template.Element, error) {
	ba := template.BarcodeAttributes{
		BarcodeWidth:  units.Percent(100),
		BarcodeHeight: units.Pixels(48),
		Foreground:    "#000000",
		Background:    "#ffffff",
	}
	ba.Data, _ = resolveString(obj, "data", evalCtx)
	var err error
	if ba.Format, err = resolveEnum(obj, "format", barcodeFormatTable, ba.Format, evalCtx); err != nil {
		return nil, err
	}
	ba.BarcodeWidth = resolveUnit(obj, "barcode_width", ba.BarcodeWidth, evalCtx)
	ba.BarcodeHeight = resolveUnit(obj, "barcode_height", ba.BarcodeHeight, evalCtx)
	if ba.ShowText, err = resolveBool(obj, "show_text", false, evalCtx); err != nil {
		return nil, err
	}
	if fg, ok := resolveString(obj, "foreground", evalCtx); ok {
		ba.Foreground = fg
	}
	if bg, ok := resolveString(obj, "background", evalCtx); ok {
		ba.Background = bg
	}
	return []template.Element{{Kind: template.KindBarcode, Base: base, Barcode: &ba}}, nil
}
