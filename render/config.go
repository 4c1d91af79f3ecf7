package render

import (
	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/providers"
	"github.com/flowglyph/flowglyph/resource"
)

// maxFontBytes caps a single `fonts:` entry load. limits.ResourceLimits
// has no dedicated font-size field (spec §4.7 only names template/data/
// image caps), so this stays a package constant rather than growing the
// shared limits surface for one consumer.
const maxFontBytes = 10 << 20

// Config wires the optional collaborators a Renderer needs beyond the
// pure template/layout/scene packages: a resource.Chain for `src`/`fonts`
// loading, provider implementations for Image/Svg/Qr/Barcode content, a
// filter registry for `{{ }}` expressions, and the resource limits spec
// §4.7 enforces. Every field is optional; a zero Config still renders
// templates that use none of these features.
//
// Font registration is deliberately absent here: each Render call builds
// its own textmetrics.Registry, since RenderOptions.FontHinting is baked
// into the Registry fonts are resolved through, and two concurrent
// renders with different hinting choices must not contend over one
// Registry's Hinting field.
type Config struct {
	Loader  *resource.Chain
	Filters *expr.Registry
	Limits  limits.ResourceLimits

	Images   providers.DefaultImageDecoder
	Qrs      providers.DefaultQrProvider
	Barcodes providers.DefaultBarcodeProvider
}

// withDefaults fills in zero-value collaborators so Renderer never nil-
// checks these at call time, mirroring expand.Expand's own "nil Filters
// becomes NewRegistry()" convention.
func (c Config) withDefaults() Config {
	if c.Limits == (limits.ResourceLimits{}) {
		c.Limits = limits.Default()
	}
	if c.Loader == nil {
		c.Loader = resource.Default(nil, c.Limits.HttpTimeout().Seconds())
	}
	if c.Filters == nil {
		c.Filters = expr.NewRegistry()
	}
	if c.Images.Loader == nil {
		c.Images.Loader = c.Loader
	}
	if c.Images.Limits == (limits.ResourceLimits{}) {
		c.Images.Limits = c.Limits
	}
	return c
}
