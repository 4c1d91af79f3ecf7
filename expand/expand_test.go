package expand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/expand"
	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/value"
)

func obj(pairs ...any) value.Value {
	o := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return value.FromObject(o)
}

func arr(items ...value.Value) value.Value {
	return value.Array(items)
}

func str(s string) value.Value { return value.String(s) }
func num(n float64) value.Value { return value.Number(n) }

func TestExpandCanvasAndSingleTextElement(t *testing.T) {
	doc := obj(
		"canvas", obj("width", num(400), "height", num(300), "fixed", str("both")),
		"layout", arr(
			obj("type", str("text"), "content", str("hello {{ name }}")),
		),
	)
	data := obj("name", str("world"))

	tpl, diags, err := expand.Expand(doc, data, expand.Options{})
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, tpl.Canvas.Width)
	require.Equal(t, uint32(400), *tpl.Canvas.Width)
	require.Equal(t, template.FixedBoth, tpl.Canvas.Fixed)
	require.Len(t, tpl.Elements, 1)
	require.Equal(t, template.KindText, tpl.Elements[0].Kind)
	require.Equal(t, "hello world", tpl.Elements[0].Text.Content)
}

func TestExpandEachBindsItemAndIndex(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj(
				"type", str("each"),
				"collection", str("items"),
				"item_var", str("it"),
				"index_var", str("i"),
				"children", arr(
					obj("type", str("text"), "content", str("{{ i }}:{{ it }}")),
				),
			),
		),
	)
	data := obj("items", arr(str("a"), str("b"), str("c")))

	tpl, _, err := expand.Expand(doc, data, expand.Options{})
	require.NoError(t, err)
	require.Len(t, tpl.Elements, 3)
	require.Equal(t, "0:a", tpl.Elements[0].Text.Content)
	require.Equal(t, "1:b", tpl.Elements[1].Text.Content)
	require.Equal(t, "2:c", tpl.Elements[2].Text.Content)
}

func TestExpandEachOverNonArrayYieldsZero(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj("type", str("each"), "collection", str("missing"), "children", arr(
				obj("type", str("text"), "content", str("x")),
			)),
		),
	)
	tpl, _, err := expand.Expand(doc, value.Null, expand.Options{})
	require.NoError(t, err)
	require.Empty(t, tpl.Elements)
}

func TestExpandIfTrueBranch(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj(
				"type", str("if"), "condition", str("flag"),
				"children", arr(obj("type", str("text"), "content", str("yes"))),
				"else", arr(obj("type", str("text"), "content", str("no"))),
			),
		),
	)
	tpl, _, err := expand.Expand(doc, obj("flag", value.Bool(true)), expand.Options{})
	require.NoError(t, err)
	require.Len(t, tpl.Elements, 1)
	require.Equal(t, "yes", tpl.Elements[0].Text.Content)
}

func TestExpandIfFalseBranchUsesElse(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj(
				"type", str("if"), "condition", str("flag"),
				"children", arr(obj("type", str("text"), "content", str("yes"))),
				"else", arr(obj("type", str("text"), "content", str("no"))),
			),
		),
	)
	tpl, _, err := expand.Expand(doc, obj("flag", value.Bool(false)), expand.Options{})
	require.NoError(t, err)
	require.Len(t, tpl.Elements, 1)
	require.Equal(t, "no", tpl.Elements[0].Text.Content)
}

func TestExpandUnknownElementYieldsDiagnosticNotError(t *testing.T) {
	doc := obj("layout", arr(obj("type", str("bogus"))))
	tpl, diags, err := expand.Expand(doc, value.Null, expand.Options{})
	require.NoError(t, err)
	require.Empty(t, tpl.Elements)
	require.Len(t, diags, 1)
	require.Equal(t, "E_UNKNOWN_ELEMENT", string(diags[0].Code))
}

func TestExpandFlexChildrenAndAttributes(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj(
				"type", str("flex"), "direction", str("column"), "gap", str("4px"),
				"children", arr(
					obj("type", str("text"), "content", str("a")),
					obj("type", str("text"), "content", str("b")),
				),
			),
		),
	)
	tpl, _, err := expand.Expand(doc, value.Null, expand.Options{})
	require.NoError(t, err)
	require.Len(t, tpl.Elements, 1)
	flex := tpl.Elements[0].Flex
	require.NotNil(t, flex)
	require.Equal(t, template.DirectionColumn, flex.Direction)
	require.Len(t, flex.Children, 2)
}

func TestExpandTableDataBound(t *testing.T) {
	doc := obj(
		"layout", arr(
			obj(
				"type", str("table"),
				"array_path", str("rows"),
				"item_variable", str("row"),
				"columns", arr(
					obj("key", str("name"), "label", str("Name")),
					obj("key", str("qty"), "label", str("Qty"), "format", str("row.qty")),
				),
			),
		),
	)
	data := obj("rows", arr(
		obj("name", str("Widget"), "qty", num(3)),
		obj("name", str("Gadget"), "qty", num(5)),
	))

	tpl, _, err := expand.Expand(doc, data, expand.Options{})
	require.NoError(t, err)
	require.Len(t, tpl.Elements, 1)
	column := tpl.Elements[0].Flex
	require.NotNil(t, column)
	require.Equal(t, template.DirectionColumn, column.Direction)
	// header + 2 data rows
	require.Len(t, column.Children, 3)

	header := column.Children[0].Flex
	require.Equal(t, "Name", header.Children[0].Text.Content)
	require.Equal(t, "Qty", header.Children[1].Text.Content)

	row1 := column.Children[1].Flex
	require.Equal(t, "Widget", row1.Children[0].Text.Content)
	require.Equal(t, "3", row1.Children[1].Text.Content)
}

func TestExpandNestingDepthLimitIsFatal(t *testing.T) {
	// Build a deeply nested flex chain exceeding a tight custom limit.
	var inner value.Value = obj("type", str("text"), "content", str("leaf"))
	for i := 0; i < 10; i++ {
		inner = obj("type", str("flex"), "children", arr(inner))
	}
	doc := obj("layout", arr(inner))

	rl := limits.Default()
	require.NoError(t, rl.SetMaxTemplateNestingDepth(3))

	_, _, err := expand.Expand(doc, value.Null, expand.Options{Limits: rl})
	require.Error(t, err)
}
