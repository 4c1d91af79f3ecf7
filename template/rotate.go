package template

import (
	"strconv"
	"strings"
)

// ParseRotate parses the base `rotate` attribute: `"none"|"right"|"left"|
// "flip"|<deg>"` (spec §3.4). Unparseable input degrades to RotateNone,
// matching the total-parser policy used throughout the unit/spacing
// grammar.
func ParseRotate(raw string) Rotate {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "none":
		return Rotate{Kind: RotateNone}
	case "right":
		return Rotate{Kind: RotateRight}
	case "left":
		return Rotate{Kind: RotateLeft}
	case "flip":
		return Rotate{Kind: RotateFlip}
	}
	trimmed := strings.TrimSuffix(s, "deg")
	deg, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return Rotate{Kind: RotateNone}
	}
	return Rotate{Kind: RotateDegrees, Degrees: deg}
}

// DegreesNormalized maps r to a signed rotation in degrees for the layout
// engine's rotation-aware bounding box computation (spec §4.4.11): right
// is 90, left -90, flip 180, and an explicit degree value is returned
// unchanged.
func (r Rotate) DegreesNormalized() float64 {
	switch r.Kind {
	case RotateRight:
		return 90
	case RotateLeft:
		return -90
	case RotateFlip:
		return 180
	case RotateDegrees:
		return r.Degrees
	default:
		return 0
	}
}
