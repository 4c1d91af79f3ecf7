package style

import (
	"fmt"
	"strings"

	"github.com/flowglyph/flowglyph/internal/core/image/patterns"
	"github.com/flowglyph/flowglyph/units"
)

// Shadow is a parsed `box_shadow` attribute: "ox oy blur color" (spec
// §3.4's BaseAttributes.box_shadow, scene §4.5's "shadow(ox, oy, blur,
// color) drawn under the fill"). Offsets and blur use the same absolute
// unit grammar as border widths — ParseAbsolute, since a shadow has no
// containing-block percent basis.
type Shadow struct {
	OffsetX, OffsetY, Blur float64
	Color                  patterns.Color
}

// ParseShadow parses the box_shadow shorthand. Color defaults to opaque
// black when omitted, mirroring DefaultBorderSide's color default.
func ParseShadow(raw string) (Shadow, error) {
	fields := strings.Fields(raw)
	if len(fields) < 3 {
		return Shadow{}, fmt.Errorf("box_shadow requires at least offset-x offset-y blur: %q", raw)
	}
	ox := units.Parse(fields[0]).ParseAbsolute()
	oy := units.Parse(fields[1]).ParseAbsolute()
	blur := units.Parse(fields[2]).ParseAbsolute()

	color := patterns.Color{A: 255}
	if len(fields) > 3 {
		c, err := ParseColor(fields[3])
		if err != nil {
			return Shadow{}, err
		}
		color = c
	}
	return Shadow{OffsetX: ox, OffsetY: oy, Blur: blur, Color: color}, nil
}
