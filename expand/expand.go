// Package expand implements the Template Expander (spec §4.3): it walks
// the generic value tree a YAML document decodes into, resolves each/if
// control directives and Table data binding, evaluates every `{{ }}`
// templated string against the data model, and materializes the result
// into the typed template.Element AST.
//
// Unlike a conventional two-stage "parse then expand" pipeline, flowglyph
// collapses template parsing and expansion into this single pass: since
// yamlsrc already decodes YAML into the same generic value.Value tree
// used for render data (spec §3.6), there is no separate untyped
// "template AST" worth a dedicated package — Expand reads the generic
// tree directly and produces the final typed template.Template.
package expand

import (
	"strconv"
	"strings"

	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/value"
)

// Options configures a single Expand call.
type Options struct {
	Culture string
	Filters *expr.Registry
	Limits  limits.ResourceLimits
}

type expandCtx struct {
	opts        Options
	diagnostics []flowerr.Diagnostic
}

func (c *expandCtx) diagnose(code flowerr.Code, severity flowerr.Severity, msg string) {
	c.diagnostics = append(c.diagnostics, flowerr.NewDiagnostic(code, severity, msg))
}

// Expand decodes doc (a YAML document already parsed into the generic
// value tree by yamlsrc) against data into a fully resolved
// template.Template, plus any accumulated soft-failure diagnostics.
func Expand(doc value.Value, data value.Value, opts Options) (*template.Template, []flowerr.Diagnostic, error) {
	if opts.Filters == nil {
		opts.Filters = expr.NewRegistry()
	}
	root, ok := doc.AsObject()
	if !ok {
		return nil, nil, &flowerr.Error{Code: flowerr.CodeTemplateParse, Message: "template document must be a mapping"}
	}

	culture := opts.Culture
	if cv, ok := root.Get("culture"); ok {
		if s, ok := cv.AsString(); ok && s != "" {
			culture = s
		}
	}
	ctx := &expandCtx{opts: Options{Culture: culture, Filters: opts.Filters, Limits: opts.Limits}}

	canvas, err := expandCanvas(root)
	if err != nil {
		return nil, ctx.diagnostics, err
	}
	fonts := expandFonts(root)

	scope := expr.NewRootScope(data)
	evalCtx := &expr.EvalContext{Scope: scope, Filters: ctx.opts.Filters, Culture: culture}

	layoutVal, _ := attrValue(root, "layout")
	items, ok := layoutVal.AsArray()
	var elements []template.Element
	if ok {
		for _, item := range items {
			expanded, err := ctx.expandElement(item, evalCtx, 0)
			if err != nil {
				return nil, ctx.diagnostics, err
			}
			elements = append(elements, expanded...)
		}
	}

	return &template.Template{
		Canvas:   canvas,
		Fonts:    fonts,
		Culture:  culture,
		Elements: elements,
	}, ctx.diagnostics, nil
}

func expandCanvas(root *value.Object) (template.Canvas, error) {
	canvas := template.Canvas{Fixed: template.FixedNone}
	cv, ok := root.Get("canvas")
	if !ok {
		return canvas, nil
	}
	obj, ok := cv.AsObject()
	if !ok {
		return canvas, nil
	}
	if w, ok := attrValue(obj, "width"); ok {
		if n, ok := w.AsNumber(); ok {
			u := uint32(n)
			canvas.Width = &u
		}
	}
	if h, ok := attrValue(obj, "height"); ok {
		if n, ok := h.AsNumber(); ok {
			u := uint32(n)
			canvas.Height = &u
		}
	}
	if f, ok := attrRawString(obj, "fixed"); ok {
		switch strings.ToLower(f) {
		case "widthonly", "width":
			canvas.Fixed = template.FixedWidthOnly
		case "heightonly", "height":
			canvas.Fixed = template.FixedHeightOnly
		case "both":
			canvas.Fixed = template.FixedBoth
		default:
			canvas.Fixed = template.FixedNone
		}
	}
	if bg, ok := attrRawString(obj, "background"); ok {
		canvas.Background = &bg
	}
	return canvas, nil
}

func expandFonts(root *value.Object) map[string]template.FontDefinition {
	fonts := make(map[string]template.FontDefinition)
	fv, ok := root.Get("fonts")
	if !ok {
		return fonts
	}
	obj, ok := fv.AsObject()
	if !ok {
		return fonts
	}
	for _, name := range obj.Keys() {
		entry, _ := obj.Get(name)
		def := template.FontDefinition{Name: name}
		if eo, ok := entry.AsObject(); ok {
			if path, ok := attrRawString(eo, "path"); ok {
				def.Src = path
			} else if src, ok := attrRawString(eo, "src"); ok {
				def.Src = src
			}
		} else if s, ok := entry.AsString(); ok {
			def.Src = s
		}
		fonts[name] = def
	}
	return fonts
}

func clampNestingDepth(c *expandCtx, depth int) error {
	max := 100
	if c.opts.Limits.MaxTemplateNestingDepth() > 0 {
		max = c.opts.Limits.MaxTemplateNestingDepth()
	}
	if depth > max {
		return flowerr.Limit("MaxTemplateNestingDepth", float64(depth), float64(max))
	}
	return nil
}

func parseUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
