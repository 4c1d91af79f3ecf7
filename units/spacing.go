package units

import "strings"

// PaddingValues holds four resolved, non-negative pixel offsets (spec
// §3.2). Unlike margins, padding never carries Auto.
type PaddingValues struct {
	Top, Right, Bottom, Left float64
}

// MarginValue is `Fixed(Unit) | Auto`. Auto margins participate in the
// layout engine's free-space distribution (spec §3.2, §4.4.5). Fixed
// carries a full Unit (not a bare pixel float) so percent/em margins
// resolve against the real parent size once the layout engine knows it.
type MarginValue struct {
	Auto bool
	Unit Unit
}

func FixedMargin(u Unit) MarginValue { return MarginValue{Unit: u} }

var AutoMargin = MarginValue{Auto: true}

// Resolve returns (0, false) for an Auto margin, else the fixed Unit
// resolved against parentSize/fontSize, clamped non-negative.
func (m MarginValue) Resolve(parentSize, fontSize float64) (float64, bool) {
	if m.Auto {
		return 0, false
	}
	v := m.Unit.ResolveOr(parentSize, fontSize, 0)
	if v < 0 {
		v = 0
	}
	return v, true
}

// MarginValues holds the four sides of a box's margin.
type MarginValues struct {
	Top, Right, Bottom, Left MarginValue
}

// ParseSpacingTokens splits a shorthand string into 1–4 unit tokens,
// following the CSS shorthand rule: 1 value → all sides; 2 → vert/horiz;
// 3 → top/horiz/bottom; 4 → top/right/bottom/left (spec §4.1).
func ParseSpacingTokens(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return []string{"0"}
	}
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return fields
}

// expandSides maps 1–4 shorthand tokens onto (top, right, bottom, left)
// following the CSS 1/2/3/4-value rule.
func expandSides(tokens []string) (top, right, bottom, left string) {
	switch len(tokens) {
	case 1:
		return tokens[0], tokens[0], tokens[0], tokens[0]
	case 2:
		return tokens[0], tokens[1], tokens[0], tokens[1]
	case 3:
		return tokens[0], tokens[1], tokens[2], tokens[1]
	default:
		return tokens[0], tokens[1], tokens[2], tokens[3]
	}
}

// PaddingSpec holds four unresolved Units, parsed from a padding
// shorthand but not yet pinned to pixels — percent/em sides resolve
// against the real containing block once the layout engine knows it.
type PaddingSpec struct {
	Top, Right, Bottom, Left Unit
}

// ParsePaddingSpec parses a CSS-style 1/2/3/4-value shorthand into an
// unresolved PaddingSpec (spec §4.1's spacing grammar).
func ParsePaddingSpec(raw string) PaddingSpec {
	tokens := ParseSpacingTokens(raw)
	top, right, bottom, left := expandSides(tokens)
	return PaddingSpec{
		Top:    Parse(top),
		Right:  Parse(right),
		Bottom: Parse(bottom),
		Left:   Parse(left),
	}
}

// Resolve pins every side to a non-negative pixel offset (spec §3.2:
// "always resolved to pixels, non-negative after clamping").
func (p PaddingSpec) Resolve(parentSize, fontSize float64) PaddingValues {
	clamp := func(u Unit) float64 {
		v := u.ResolveOr(parentSize, fontSize, 0)
		if v < 0 {
			return 0
		}
		return v
	}
	return PaddingValues{
		Top:    clamp(p.Top),
		Right:  clamp(p.Right),
		Bottom: clamp(p.Bottom),
		Left:   clamp(p.Left),
	}
}

// ParsePadding parses and immediately resolves a padding shorthand against
// a known parentSize/fontSize — a convenience for call sites (the canvas
// box, tests) where that context is already at hand.
func ParsePadding(raw string, parentSize, fontSize float64) PaddingValues {
	return ParsePaddingSpec(raw).Resolve(parentSize, fontSize)
}

// ParseMargin parses a CSS-style 1/2/3/4-value shorthand into
// MarginValues. Each token is either a Unit or the literal "auto".
func ParseMargin(raw string) MarginValues {
	tokens := ParseSpacingTokens(raw)
	top, right, bottom, left := expandSides(tokens)
	parse := func(tok string) MarginValue {
		if strings.EqualFold(strings.TrimSpace(tok), "auto") {
			return AutoMargin
		}
		return FixedMargin(Parse(tok))
	}
	return MarginValues{
		Top:    parse(top),
		Right:  parse(right),
		Bottom: parse(bottom),
		Left:   parse(left),
	}
}
