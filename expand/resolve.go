package expand

import (
	"strconv"
	"strings"

	"github.com/flowglyph/flowglyph/expr"
	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/units"
	"github.com/flowglyph/flowglyph/value"
)

// resolveString reads attribute name, evaluating any `{{ }}` templated
// segments against evalCtx and returning its plain string form. Missing
// attributes return ("", false).
func resolveString(obj *value.Object, name string, evalCtx *expr.EvalContext) (string, bool) {
	v, ok := attrValue(obj, name)
	if !ok || v.IsNull() {
		return "", false
	}
	raw, ok := v.AsString()
	if !ok {
		return v.String(), true
	}
	out, err := expr.Interpolate(raw, evalCtx)
	if err != nil {
		return raw, true
	}
	return out, true
}

// resolveUnit parses a Unit-valued attribute: an absent attribute yields
// def, and unparseable input collapses to Auto (spec §4.1's total parser),
// never an error.
func resolveUnit(obj *value.Object, name string, def units.Unit, evalCtx *expr.EvalContext) units.Unit {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return def
	}
	return units.Parse(s)
}

// resolveOptionalUnit is resolveUnit for Option<Unit>-typed attributes,
// returning nil when the attribute is absent.
func resolveOptionalUnit(obj *value.Object, name string, evalCtx *expr.EvalContext) *units.Unit {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return nil
	}
	u := units.Parse(s)
	return &u
}

// resolveFloat parses an f32-typed attribute. Parse failure is fatal
// (spec §4.3: "Materialization... parse failure produces a
// TemplateEngineError").
func resolveFloat(obj *value.Object, name string, def float64, evalCtx *expr.EvalContext) (float64, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, flowerr.Materialize(name, s, "f32")
	}
	return f, nil
}

func resolveOptionalFloat(obj *value.Object, name string, evalCtx *expr.EvalContext) (*float64, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, flowerr.Materialize(name, s, "f32")
	}
	return &f, nil
}

func resolveInt(obj *value.Object, name string, def int, evalCtx *expr.EvalContext) (int, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, flowerr.Materialize(name, s, "i32")
	}
	return n, nil
}

func resolveBool(obj *value.Object, name string, def bool, evalCtx *expr.EvalContext) (bool, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, flowerr.Materialize(name, s, "bool")
	}
	return b, nil
}

func resolveOptionalUint32(obj *value.Object, name string, evalCtx *expr.EvalContext) (*uint32, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return nil, nil
	}
	u, ok := parseUint32(s)
	if !ok {
		return nil, flowerr.Materialize(name, s, "u32")
	}
	return &u, nil
}

// resolveEnum looks up a lowercased attribute string in table; unrecognized
// values are a materialization error, matching the typed-attribute parse
// contract for enums (spec §4.3).
func resolveEnum[T any](obj *value.Object, name string, table map[string]T, def T, evalCtx *expr.EvalContext) (T, error) {
	s, ok := resolveString(obj, name, evalCtx)
	if !ok {
		return def, nil
	}
	v, found := table[strings.ToLower(strings.TrimSpace(s))]
	if !found {
		var zero T
		return zero, flowerr.Materialize(name, s, "enum")
	}
	return v, nil
}
