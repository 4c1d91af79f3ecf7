package expand

import (
	"strings"

	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/value"
)

// expandElement dispatches one node from a `layout`/`children` sequence:
// each/if control directives unroll into zero or more elements; any other
// `type` materializes into exactly one template.Element (or zero, with a
// diagnostic, if the type is unrecognized).
func (c *expandCtx) expandElement(node value.Value, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	if err := clampNestingDepth(c, depth); err != nil {
		return nil, err
	}
	obj, ok := node.AsObject()
	if !ok {
		return nil, nil
	}
	typ, _ := attrRawString(obj, "type")
	switch strings.ToLower(typ) {
	case "each":
		return c.expandEach(obj, evalCtx, depth)
	case "if":
		return c.expandIf(obj, evalCtx, depth)
	default:
		return c.expandTag(strings.ToLower(typ), obj, evalCtx, depth)
	}
}

// expandChildren expands every item of a node's `children` sequence,
// flattening each child's own expansion (an each/if body may itself
// contribute any number of elements).
func (c *expandCtx) expandChildren(obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	cv, ok := attrValue(obj, "children")
	if !ok {
		return nil, nil
	}
	items, ok := cv.AsArray()
	if !ok {
		return nil, nil
	}
	var out []template.Element
	for _, item := range items {
		expanded, err := c.expandElement(item, evalCtx, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// expandEach implements spec §4.3's each directive: `{tag=each,
// collection, item_var, index_var?}`. Non-array collections iterate zero
// times; each iteration layers a child scope binding item_var/index_var
// over the current scope.
func (c *expandCtx) expandEach(obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	collectionExpr, _ := attrRawString(obj, "collection")
	itemVar, _ := attrRawString(obj, "item_var")
	if itemVar == "" {
		itemVar = "item"
	}
	indexVar, hasIndexVar := attrRawString(obj, "index_var")

	e, err := expr.Parse(collectionExpr)
	if err != nil {
		return nil, err
	}
	collection := expr.Eval(e, evalCtx)
	items, ok := collection.AsArray()
	if !ok {
		return nil, nil
	}

	var out []template.Element
	for i, item := range items {
		bindings := map[string]value.Value{itemVar: item}
		if hasIndexVar {
			bindings[indexVar] = value.Number(float64(i))
		}
		childScope := evalCtx.Scope.Child(bindings)
		childCtx := &expr.EvalContext{Scope: childScope, Filters: evalCtx.Filters, Culture: evalCtx.Culture}
		expanded, err := c.expandChildren(obj, childCtx, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// expandIf implements spec §4.3's if/else: truthy branch only.
func (c *expandCtx) expandIf(obj *value.Object, evalCtx *expr.EvalContext, depth int) ([]template.Element, error) {
	conditionExpr, _ := attrRawString(obj, "condition")
	e, err := expr.Parse(conditionExpr)
	if err != nil {
		return nil, err
	}
	cond := expr.Eval(e, evalCtx)
	if cond.Truthy() {
		return c.expandChildren(obj, evalCtx, depth)
	}
	if elseVal, ok := attrValue(obj, "else"); ok {
		if items, ok := elseVal.AsArray(); ok {
			var out []template.Element
			for _, item := range items {
				expanded, err := c.expandElement(item, evalCtx, depth+1)
				if err != nil {
					return nil, err
				}
				out = append(out, expanded...)
			}
			return out, nil
		}
	}
	return nil, nil
}
