// Package style implements the color grammar (spec §3.3) on top of the
// render backend's patterns.Color, and resolves `background` tokens that
// may name either a flat color or a gradient function.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flowglyph/flowglyph/internal/core/geom"
	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
)

// ParseColor accepts `#rgb`, `#argb`, `#rrggbb`, `#aarrggbb`, `rgb(r,g,b)`,
// and `rgba(r,g,b,a)` with a∈[0,1] (spec §3.3). Hex forms with an alpha
// nibble/byte carry it FIRST (ARGB ordering), matching the spec's
// shorthand names — distinct from the render backend's own RRGGBBAA
// serialization in patterns.Color.ToHex.
func ParseColor(raw string) (patterns.Color, error) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(strings.ToLower(s), "rgba("):
		return parseFunctional(s, true)
	case strings.HasPrefix(strings.ToLower(s), "rgb("):
		return parseFunctional(s, false)
	default:
		return patterns.Color{}, fmt.Errorf("unrecognized color syntax: %q", raw)
	}
}

func parseHexColor(s string) (patterns.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 3: // #rgb
		_, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return patterns.Color{}, err
		}
		r, g, b = r*17, g*17, b*17
	case 4: // #argb
		var av, rv, gv, bv uint8
		_, err := fmt.Sscanf(hex, "%1x%1x%1x%1x", &av, &rv, &gv, &bv)
		if err != nil {
			return patterns.Color{}, err
		}
		a, r, g, b = av*17, rv*17, gv*17, bv*17
	case 6: // #rrggbb
		_, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			return patterns.Color{}, err
		}
	case 8: // #aarrggbb
		var av uint8
		_, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &av, &r, &g, &b)
		if err != nil {
			return patterns.Color{}, err
		}
		a = av
	default:
		return patterns.Color{}, fmt.Errorf("invalid hex color format: %q", s)
	}
	return patterns.Color{R: r, G: g, B: b, A: a}, nil
}

func parseFunctional(s string, hasAlpha bool) (patterns.Color, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return patterns.Color{}, fmt.Errorf("malformed color function: %q", s)
	}
	parts := strings.Split(s[open+1:close], ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return patterns.Color{}, fmt.Errorf("expected %d components in %q", want, s)
	}

	channel := func(tok string) (uint8, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return 0, err
		}
		return uint8(geom.ClampF64(v, 0, 255)), nil
	}
	r, err := channel(parts[0])
	if err != nil {
		return patterns.Color{}, err
	}
	g, err := channel(parts[1])
	if err != nil {
		return patterns.Color{}, err
	}
	b, err := channel(parts[2])
	if err != nil {
		return patterns.Color{}, err
	}
	a := uint8(255)
	if hasAlpha {
		av, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return patterns.Color{}, err
		}
		a = uint8(geom.ClampF64(av, 0, 1) * 255)
	}
	return patterns.Color{R: r, G: g, B: b, A: a}, nil
}

// TryParseColor is the total form used by non-fatal attribute resolution:
// it returns patterns.Color{} (fully transparent black) on failure instead
// of an error.
func TryParseColor(raw string) (patterns.Color, bool) {
	c, err := ParseColor(raw)
	if err != nil {
		return patterns.Color{}, false
	}
	return c, true
}
