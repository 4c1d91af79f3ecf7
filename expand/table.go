package expand

import (
	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/units"
	"github.com/flowglyph/flowglyph/value"
)

// buildTable implements spec §3.4's Table expansion: the layout engine
// never sees KindTable, only the Flex(Column) → Flex(Row) tree this
// produces — a header row followed by one row per data item, each cell a
// Text element. Rows come either from a literal `rows` array or, when
// `array_path` is set, from evaluating that path as a collection and
// binding each item under `item_variable` (default "item") while
// formatting each column's cell expression against it.
func (c *expandCtx) buildTable(base template.BaseAttributes, obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	columns, err := parseTableColumns(obj, evalCtx)
	if err != nil {
		return nil, err
	}

	rows, err := c.resolveTableRows(obj, columns, evalCtx)
	if err != nil {
		return nil, err
	}

	var tableRows []template.Element
	if !tableHidesHeader(obj, evalCtx) {
		tableRows = append(tableRows, buildTableHeaderRow(columns))
	}
	for _, row := range rows {
		tableRows = append(tableRows, buildTableDataRow(columns, row))
	}

	column := template.FlexAttributes{
		Direction: template.DirectionColumn,
		Children:  tableRows,
	}
	return []template.Element{{Kind: template.KindFlex, Base: base, Flex: &column}}, nil
}

func tableHidesHeader(obj *value.Object, evalCtx *expr.EvalContext) bool {
	show, ok := resolveString(obj, "show_header", evalCtx)
	if !ok {
		return false
	}
	return show == "false" || show == "0"
}

func parseTableColumns(obj *value.Object, evalCtx *expr.EvalContext) ([]template.TableColumn, error) {
	cv, ok := attrValue(obj, "columns")
	if !ok {
		return nil, nil
	}
	items, ok := cv.AsArray()
	if !ok {
		return nil, nil
	}
	columns := make([]template.TableColumn, 0, len(items))
	for _, item := range items {
		co, ok := item.AsObject()
		if !ok {
			continue
		}
		col := template.TableColumn{Width: units.Auto, Size: units.Em(1), Grow: 1}
		col.Key, _ = attrRawString(co, "key")
		col.Label, _ = resolveString(co, "label", evalCtx)
		if col.Label == "" {
			col.Label = col.Key
		}
		col.Width = resolveUnit(co, "width", col.Width, evalCtx)
		grow, err := resolveFloat(co, "grow", col.Grow, evalCtx)
		if err != nil {
			return nil, err
		}
		col.Grow = grow
		if col.Align, err = resolveEnum(co, "align", textAlignTable, col.Align, evalCtx); err != nil {
			return nil, err
		}
		col.Format, _ = resolveString(co, "format", evalCtx)
		col.Font, _ = resolveString(co, "font", evalCtx)
		col.Color, _ = resolveString(co, "color", evalCtx)
		col.Size = resolveUnit(co, "size", col.Size, evalCtx)
		columns = append(columns, col)
	}
	return columns, nil
}

// resolveTableRows produces one TableRow per data item: array_path drives
// a data-bound table, otherwise a literal `rows` array of per-row cell
// objects is used directly.
func (c *expandCtx) resolveTableRows(obj *value.Object, columns []template.TableColumn, evalCtx *expr.EvalContext) ([]template.TableRow, error) {
	arrayPath, hasArrayPath := attrRawString(obj, "array_path")
	if !hasArrayPath || arrayPath == "" {
		return literalTableRows(obj, columns, evalCtx)
	}

	itemVar, _ := attrRawString(obj, "item_variable")
	if itemVar == "" {
		itemVar = "item"
	}

	e, err := expr.Parse(arrayPath)
	if err != nil {
		return nil, err
	}
	collection := expr.Eval(e, evalCtx)
	items, ok := collection.AsArray()
	if !ok {
		return nil, nil
	}

	rows := make([]template.TableRow, 0, len(items))
	for _, item := range items {
		childScope := evalCtx.Scope.Child(map[string]value.Value{itemVar: item})
		childCtx := &expr.EvalContext{Scope: childScope, Filters: evalCtx.Filters, Culture: evalCtx.Culture}
		row := template.TableRow{Values: make(map[string]string, len(columns))}
		for _, col := range columns {
			cellExpr := col.Format
			if cellExpr == "" {
				cellExpr = itemVar + "." + col.Key
			}
			text, err := expr.Interpolate(wrapAsFragment(cellExpr), childCtx)
			if err != nil {
				return nil, err
			}
			row.Values[col.Key] = text
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func literalTableRows(obj *value.Object, columns []template.TableColumn, evalCtx *expr.EvalContext) ([]template.TableRow, error) {
	rv, ok := attrValue(obj, "rows")
	if !ok {
		return nil, nil
	}
	items, ok := rv.AsArray()
	if !ok {
		return nil, nil
	}
	rows := make([]template.TableRow, 0, len(items))
	for _, item := range items {
		ro, ok := item.AsObject()
		if !ok {
			continue
		}
		row := template.TableRow{Values: make(map[string]string, len(columns))}
		for _, col := range columns {
			cell, _ := resolveString(ro, col.Key, evalCtx)
			row.Values[col.Key] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// wrapAsFragment turns a bare expression string (as stored in a column's
// `format`/implicit key reference) into a single `{{ }}` interpolation
// fragment so it can be run through the shared Interpolate path.
func wrapAsFragment(exprSrc string) string {
	return "{{ " + exprSrc + " }}"
}

func buildTableHeaderRow(columns []template.TableColumn) template.Element {
	cells := make([]template.Element, 0, len(columns))
	for _, col := range columns {
		base := template.DefaultBaseAttributes()
		base.Width = col.Width
		base.Grow = col.Grow
		ta := template.TextAttributes{Content: col.Label, Size: units.Em(1), Align: col.Align}
		cells = append(cells, template.Element{Kind: template.KindText, Base: base, Text: &ta})
	}
	rowBase := template.DefaultBaseAttributes()
	row := template.FlexAttributes{Direction: template.DirectionRow, Children: cells}
	return template.Element{Kind: template.KindFlex, Base: rowBase, Flex: &row}
}

func buildTableDataRow(columns []template.TableColumn, data template.TableRow) template.Element {
	cells := make([]template.Element, 0, len(columns))
	for _, col := range columns {
		base := template.DefaultBaseAttributes()
		base.Width = col.Width
		base.Grow = col.Grow
		ta := template.TextAttributes{
			Content: data.Values[col.Key],
			Font:    col.Font,
			Size:    col.Size,
			Color:   col.Color,
			Align:   col.Align,
		}
		cells = append(cells, template.Element{Kind: template.KindText, Base: base, Text: &ta})
	}
	rowBase := template.DefaultBaseAttributes()
	row := template.FlexAttributes{Direction: template.DirectionRow, Children: cells}
	return template.Element{Kind: template.KindFlex, Base: rowBase, Flex: &row}
}
