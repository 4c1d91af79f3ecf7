package expr

import (
	"strings"

	"github.com/flowglyph/flowglyph/value"
)

// Interpolate scans raw for `{{ ... }}` fragments, evaluates each as an
// expression against ctx, and substitutes its string form (spec §4.3).
// Text outside `{{ }}` passes through verbatim. A malformed fragment
// (missing closing `}}` or a parse error) is reported via err; the caller
// decides whether that's fatal (materialization) or degrades (free text).
func Interpolate(raw string, ctx *EvalContext) (string, error) {
	if !strings.Contains(raw, "{{") {
		return raw, nil
	}

	var sb strings.Builder
	rest := raw
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:start])
		tail := rest[start+2:]
		end := strings.Index(tail, "}}")
		if end < 0 {
			return "", newParseError("unterminated '{{' expression", start, raw)
		}
		fragment := tail[:end]
		expr, err := Parse(fragment)
		if err != nil {
			return "", err
		}
		val := Eval(expr, ctx)
		sb.WriteString(val.String())
		rest = tail[end+2:]
	}
	return sb.String(), nil
}

// IsPureExpression reports whether raw is exactly one `{{ ... }}` fragment
// with nothing else around it — used by the expander to preserve the
// original Value type (Number/Bool/Array/Object) instead of stringifying
// when an attribute binds a whole expression rather than interpolating it
// inside literal text.
func IsPureExpression(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{{") || !strings.HasSuffix(trimmed, "}}") {
		return "", false
	}
	inner := trimmed[2 : len(trimmed)-2]
	if strings.Contains(inner, "{{") {
		return "", false
	}
	return inner, true
}

// EvalPureOrInterpolate evaluates raw as a pure expression when it is
// exactly one `{{ }}` fragment (preserving the native Value kind), or
// otherwise interpolates it as templated text, returning a String Value.
func EvalPureOrInterpolate(raw string, ctx *EvalContext) (value.Value, error) {
	if inner, ok := IsPureExpression(raw); ok {
		e, err := Parse(inner)
		if err != nil {
			return value.Null, err
		}
		return Eval(e, ctx), nil
	}
	s, err := Interpolate(raw, ctx)
	if err != nil {
		return value.Null, err
	}
	return value.String(s), nil
}
