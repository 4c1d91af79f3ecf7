package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
)

// Background resolves the `background`/fill-pattern attribute (spec §3.4:
// "Option<string> (color or gradient)") to a concrete paintable Pattern
// sized against a box of width×height.
//
// Grammar (the spec leaves gradient syntax as an Open Question):
//
//	background := color | gradient
//	gradient   := ("linear-gradient" | "radial-gradient" | "conic-gradient")
//	              "(" angleDeg? "," stop ("," stop)* ")"
//	stop       := color (" " offset)?
//
// A stop without an explicit offset is evenly spaced across the gradient
// by its index (see assignOffsets); patterns.GradientPattern itself always
// takes an explicit offset per stop.
func Background(raw string, width, height float64) (patterns.Pattern, error) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "linear-gradient("):
		return parseLinearGradient(s, width, height)
	case strings.HasPrefix(lower, "radial-gradient("):
		return parseRadialGradient(s, width, height)
	case strings.HasPrefix(lower, "conic-gradient("):
		return parseConicGradient(s, width, height)
	default:
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		return patterns.NewSolid(c), nil
	}
}

func gradientBody(s string) (string, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return "", fmt.Errorf("malformed gradient function: %q", s)
	}
	return s[open+1 : close], nil
}

type gradientStop struct {
	color  patterns.Color
	offset float64
	hasPos bool
}

func parseStops(tokens []string) ([]gradientStop, error) {
	stops := make([]gradientStop, 0, len(tokens))
	for _, tok := range tokens {
		fields := strings.Fields(strings.TrimSpace(tok))
		if len(fields) == 0 {
			continue
		}
		c, err := ParseColor(fields[0])
		if err != nil {
			return nil, err
		}
		stop := gradientStop{color: c}
		if len(fields) > 1 {
			off, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64)
			if err != nil {
				return nil, err
			}
			if strings.HasSuffix(fields[1], "%") {
				off /= 100
			}
			stop.offset = off
			stop.hasPos = true
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// assignOffsets gives each stop lacking an offset the value i/(n-1) for
// its index i among all n stops; explicit offsets of other stops are not
// taken into account.
func assignOffsets(stops []gradientStop) {
	n := len(stops)
	if n == 0 {
		return
	}
	for i := range stops {
		if !stops[i].hasPos {
			if n == 1 {
				stops[i].offset = 0
			} else {
				stops[i].offset = float64(i) / float64(n-1)
			}
		}
	}
}

func splitArgs(body string) []string {
	return strings.Split(body, ",")
}

func parseLinearGradient(s string, width, height float64) (patterns.Pattern, error) {
	body, err := gradientBody(s)
	if err != nil {
		return nil, err
	}
	parts := splitArgs(body)
	if len(parts) < 2 {
		return nil, fmt.Errorf("linear-gradient needs an angle and at least one stop: %q", s)
	}
	angle, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(parts[0], "deg")), 64)
	if err != nil {
		return nil, err
	}
	stops, err := parseStops(parts[1:])
	if err != nil {
		return nil, err
	}
	assignOffsets(stops)

	rad := angle * math.Pi / 180
	cx, cy := width/2, height/2
	dx, dy := math.Cos(rad)*width/2, math.Sin(rad)*height/2
	g := patterns.NewLinearGradient(cx-dx, cy-dy, cx+dx, cy+dy)
	for _, st := range stops {
		g.AddColorStop(st.offset, st.color)
	}
	return g, nil
}

func parseRadialGradient(s string, width, height float64) (patterns.Pattern, error) {
	body, err := gradientBody(s)
	if err != nil {
		return nil, err
	}
	stops, err := parseStops(splitArgs(body))
	if err != nil {
		return nil, err
	}
	assignOffsets(stops)

	cx, cy := width/2, height/2
	r := math.Max(width, height) / 2
	g := patterns.NewRadialGradient(cx, cy, 0, cx, cy, r)
	for _, st := range stops {
		g.AddColorStop(st.offset, st.color)
	}
	return g, nil
}

func parseConicGradient(s string, width, height float64) (patterns.Pattern, error) {
	body, err := gradientBody(s)
	if err != nil {
		return nil, err
	}
	parts := splitArgs(body)
	if len(parts) < 2 {
		return nil, fmt.Errorf("conic-gradient needs an angle and at least one stop: %q", s)
	}
	angle, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(parts[0], "deg")), 64)
	if err != nil {
		return nil, err
	}
	stops, err := parseStops(parts[1:])
	if err != nil {
		return nil, err
	}
	assignOffsets(stops)

	cx, cy := width/2, height/2
	g := patterns.NewConicGradient(cx, cy, angle)
	for _, st := range stops {
		g.AddColorStop(st.offset, st.color)
	}
	return g, nil
}
