package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
)

func textBox(content string, width float64) template.Element {
	base := template.DefaultBaseAttributes()
	base.Width = units.Pixels(width)
	base.Height = units.Pixels(20)
	return template.Element{Kind: template.KindText, Base: base, Text: &template.TextAttributes{Content: content, Size: units.Em(1)}}
}

func flexBox(direction template.FlexDirection, children ...template.Element) template.Element {
	base := template.DefaultBaseAttributes()
	return template.Element{
		Kind: template.KindFlex, Base: base,
		Flex: &template.FlexAttributes{Direction: direction, Children: children},
	}
}

func runLayout(t *testing.T, tpl *template.Template) *Box {
	t.Helper()
	b, err := Layout(tpl, NullMeasurer{}, limits.Default())
	require.NoError(t, err)
	return b
}

func ptrU32(v uint32) *uint32 { return &v }

func TestLayoutRowPacksChildrenLeftToRight(t *testing.T) {
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(300), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{flexBox(template.DirectionRow, textBox("a", 50), textBox("b", 50))},
	}
	root := runLayout(t, tpl)
	require.Len(t, root.Children, 1)
	row := root.Children[0]
	require.Len(t, row.Children, 2)
	require.Equal(t, 0.0, row.Children[0].Rect.X)
	require.Equal(t, 50.0, row.Children[1].Rect.X)
}

func TestLayoutJustifyContentCenter(t *testing.T) {
	a := flexBox(template.DirectionRow, textBox("a", 50))
	a.Flex.Justify = template.JustifyCenter
	a.Base.Width = units.Pixels(200)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{a},
	}
	root := runLayout(t, tpl)
	child := root.Children[0].Children[0]
	require.InDelta(t, 75.0, child.Rect.X, 0.001)
}

func TestLayoutGrowDistributesFreeSpaceByRatio(t *testing.T) {
	c1 := textBox("a", 50)
	c1.Base.Grow = 1
	c2 := textBox("b", 50)
	c2.Base.Grow = 3
	row := flexBox(template.DirectionRow, c1, c2)
	row.Base.Width = units.Pixels(300)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(300), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	children := root.Children[0].Children
	// free space = 300-50-50 = 200, split 1:3 => +50 and +150
	require.InDelta(t, 100.0, children[0].Rect.Width, 0.001)
	require.InDelta(t, 200.0, children[1].Rect.Width, 0.001)
	require.InDelta(t, 0.0, children[0].Rect.X, 0.001)
	require.InDelta(t, 100.0, children[1].Rect.X, 0.001)
}

func TestLayoutShrinkClampsToMinWidthAndRedistributes(t *testing.T) {
	minW := units.Pixels(120)
	a := textBox("a", 150)
	a.Base.Shrink = 1
	a.Base.MinWidth = &minW
	b := textBox("b", 150)
	b.Base.Shrink = 1
	row := flexBox(template.DirectionRow, a, b)
	row.Base.Width = units.Pixels(200)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	children := root.Children[0].Children
	// overflow=100 split 50/50 first; A would land at 100 but clamps to its
	// min_width=120, freezing there and pushing the rest of the overflow
	// onto B alone.
	require.InDelta(t, 120.0, children[0].Rect.Width, 0.001)
	require.InDelta(t, 80.0, children[1].Rect.Width, 0.001)
}

func TestLayoutWrapStartsNewLine(t *testing.T) {
	row := flexBox(template.DirectionRow, textBox("a", 60), textBox("b", 60), textBox("c", 60))
	row.Flex.Wrap = template.Wrap
	row.Base.Width = units.Pixels(130)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(200), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	children := root.Children[0].Children
	require.Equal(t, 0.0, children[0].Rect.Y)
	require.Equal(t, 0.0, children[1].Rect.Y)
	require.Greater(t, children[2].Rect.Y, 0.0)
}

func TestLayoutAutoMarginPushesItemToEnd(t *testing.T) {
	item := textBox("a", 50)
	item.Base.Margin = units.MarginValues{
		Top: units.FixedMargin(units.Pixels(0)), Bottom: units.FixedMargin(units.Pixels(0)),
		Left: units.AutoMargin, Right: units.FixedMargin(units.Pixels(0)),
	}
	row := flexBox(template.DirectionRow, item)
	row.Base.Width = units.Pixels(200)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	child := root.Children[0].Children[0]
	require.InDelta(t, 150.0, child.Rect.X, 0.001)
}

func TestLayoutAbsoluteWithOffsetsIgnoresFlow(t *testing.T) {
	abs := textBox("a", 30)
	abs.Base.Position = template.PosAbsolute
	right := units.Pixels(10)
	abs.Base.Right = &right
	top := units.Pixels(5)
	abs.Base.Top = &top
	row := flexBox(template.DirectionColumn, abs, textBox("b", 40))
	row.Base.Width = units.Pixels(200)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	children := root.Children[0].Children
	absChild := children[0]
	require.InDelta(t, 5.0, absChild.Rect.Y, 0.001)
	require.InDelta(t, 160.0, absChild.Rect.X, 0.001) // 200-10-30
	require.Equal(t, 0.0, children[1].Rect.Y)         // "b" unaffected by absolute sibling
}

func TestLayoutAbsoluteWithoutOffsetsUsesStaticPosition(t *testing.T) {
	abs := textBox("a", 30)
	abs.Base.Position = template.PosAbsolute
	row := flexBox(template.DirectionColumn, textBox("b", 40), abs)
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(200), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{row},
	}
	root := runLayout(t, tpl)
	children := root.Children[0].Children
	absChild := children[1]
	// "b" occupies [0,20); the absolute item's static position should
	// fall where it would have landed as the second in-flow sibling.
	require.InDelta(t, 20.0, absChild.Rect.Y, 0.001)
}

func TestLayoutNestingDepthLimitIsFatal(t *testing.T) {
	inner := textBox("leaf", 10)
	for i := 0; i < 50; i++ {
		inner = flexBox(template.DirectionColumn, inner)
	}
	tpl := &template.Template{
		Canvas:   template.Canvas{Width: ptrU32(100), Height: ptrU32(100), Fixed: template.FixedBoth},
		Elements: []template.Element{inner},
	}
	rl := limits.Default()
	require.NoError(t, rl.SetMaxRenderDepth(5))
	_, err := Layout(tpl, NullMeasurer{}, rl)
	require.Error(t, err)
}
