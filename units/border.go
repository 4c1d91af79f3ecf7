package units

import "strings"

// BorderStyle is a side's stroke style; None forces width to zero
// regardless of the parsed width token (spec §3.2).
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDashed
	BorderDotted
)

func parseBorderStyle(tok string) (BorderStyle, bool) {
	switch strings.ToLower(tok) {
	case "none":
		return BorderNone, true
	case "solid":
		return BorderSolid, true
	case "dashed":
		return BorderDashed, true
	case "dotted":
		return BorderDotted, true
	default:
		return BorderSolid, false
	}
}

// BorderSide is one edge's width/style/color. ColorHex carries the raw,
// unparsed color token — the units package has no color grammar of its
// own (spec §3.3 colors are parsed by the style package).
type BorderSide struct {
	Width    float64
	Style    BorderStyle
	ColorHex string
}

// DefaultBorderSide is the shorthand's implicit default: style Solid,
// color #000000, zero width (spec §3.2).
var DefaultBorderSide = BorderSide{Width: 0, Style: BorderSolid, ColorHex: "#000000"}

// BorderValues is the four sides of a box border.
type BorderValues struct {
	Top, Right, Bottom, Left BorderSide
}

// ParseBorderShorthand parses a single side's `"width [style] [color]"`
// shorthand (spec §3.2). Tokens may appear in any order after the first;
// the first token that parses as a unit is taken as width, the first that
// matches a known style name is taken as style, anything else is treated
// as the color token. Missing fields fall back to DefaultBorderSide.
func ParseBorderShorthand(raw string) BorderSide {
	side := DefaultBorderSide
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return side
	}

	haveWidth := false
	haveStyle := false
	haveColor := false
	for _, tok := range fields {
		if !haveStyle {
			if style, ok := parseBorderStyle(tok); ok {
				side.Style = style
				haveStyle = true
				continue
			}
		}
		if !haveWidth {
			if u, ok := TryParse(tok); ok && u.Kind != KindAuto {
				side.Width = u.ParseAbsolute()
				haveWidth = true
				continue
			}
		}
		if !haveColor {
			side.ColorHex = tok
			haveColor = true
		}
	}

	if side.Style == BorderNone {
		side.Width = 0
	}
	return side
}
