// Package render ties the template, expand, layout, scene, and
// backend/raster packages into the single top-level entry point spec §2
// describes as the engine's public surface: parse/expand the template
// against a data model, lay it out, and walk the resulting tree into a
// painted canvas.
package render

import (
	"context"

	"github.com/flowglyph/flowglyph/backend/raster"
	"github.com/flowglyph/flowglyph/expand"
	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/layout"
	"github.com/flowglyph/flowglyph/scene"
	"github.com/flowglyph/flowglyph/template"
	"github.com/flowglyph/flowglyph/textmetrics"
	"github.com/flowglyph/flowglyph/value"
)

// Renderer holds the resolved collaborators a render needs. Build one
// with New and reuse it across many Render calls: the Registry and
// Loader it wires are safe for concurrent use (spec §5), matching the
// teacher's pattern of a long-lived builder reused per request.
type Renderer struct {
	cfg Config
}

// New builds a Renderer from cfg, filling in any collaborator cfg left
// zero-valued with a sensible default.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg.withDefaults()}
}

// Render expands doc against data under opts, lays out the result, and
// paints it with the reference backend/raster.Raster consumer. A non-nil
// error is always a *flowerr.Error (spec §6.5); partial/soft failures
// surface as Result.Diagnostics instead of failing the render.
func (r *Renderer) Render(doc, data value.Value, opts RenderOptions) (*Result, error) {
	registry := textmetrics.NewRegistry()
	registry.Hinting = opts.FontHinting.toFreetype()

	tpl, diags, err := expand.Expand(doc, data, expand.Options{
		Culture: opts.Culture,
		Filters: r.cfg.Filters,
		Limits:  r.cfg.Limits,
	})
	if err != nil {
		return nil, err
	}

	diags = append(diags, r.loadFonts(tpl.Fonts, registry)...)

	shaper := textmetrics.NewShaper(registry)
	measurer := compositeMeasurer{shaper: shaper, images: decoderSizer{r.cfg.Images}}

	box, err := layout.Layout(tpl, measurer, r.cfg.Limits)
	if err != nil {
		return nil, err
	}

	width := int(box.Rect.Width + 0.5)
	height := int(box.Rect.Height + 0.5)
	if width <= 0 || height <= 0 {
		return nil, &flowerr.Error{Code: flowerr.CodeLayoutDepth, Message: "resolved canvas has zero area"}
	}

	rs := raster.New(width, height, registry)
	rs.Images = r.cfg.Images
	rs.Qrs = r.cfg.Qrs
	rs.Barcodes = r.cfg.Barcodes

	scene.NewEmitter(rs, nil).WithTextShaper(shaper).Emit(box)

	return &Result{Image: rs.Image(), Width: width, Height: height, Diagnostics: diags}, nil
}

// loadFonts resolves every `fonts:` entry through the configured loader
// and registers it under its template-facing name. A font that fails to
// load is recorded as a warning diagnostic rather than failing the whole
// render — text referencing it falls back to textmetrics' unregistered-
// font metrics, matching the teacher's tolerance for partial failures
// elsewhere (Group.Draw skips nil shapes rather than aborting).
func (r *Renderer) loadFonts(fonts map[string]template.FontDefinition, registry *textmetrics.Registry) []flowerr.Diagnostic {
	var diags []flowerr.Diagnostic
	for name, def := range fonts {
		if def.Src == "" {
			continue
		}
		data, err := r.cfg.Loader.Load(context.Background(), def.Src, maxFontBytes)
		if err != nil {
			diags = append(diags, flowerr.NewDiagnostic(flowerr.CodeResourceNotFound, flowerr.SeverityWarning,
				"font "+name+": "+err.Error()))
			continue
		}
		if err := registry.Register(name, data); err != nil {
			diags = append(diags, flowerr.NewDiagnostic(flowerr.CodeUnsupportedFormat, flowerr.SeverityWarning,
				"font "+name+": "+err.Error()))
		}
	}
	return diags
}
