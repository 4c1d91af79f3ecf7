package expand

import (
	"strings"

	"github.com/flowglyph/flowglyph/value"
)

// spellings generates the snake_case, camelCase, and kebab-case forms of a
// canonical snake_case attribute name, since spec §6.1 requires "CamelCase
// and kebab-case both accepted for attribute names" in the YAML schema.
// Object.Get is already case-insensitive, so we only need to vary
// word-separator style here.
func spellings(snake string) []string {
	if !strings.Contains(snake, "_") {
		return []string{snake}
	}
	parts := strings.Split(snake, "_")

	var camel strings.Builder
	camel.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		camel.WriteString(strings.ToUpper(p[:1]))
		camel.WriteString(p[1:])
	}

	kebab := strings.Join(parts, "-")
	return []string{snake, camel.String(), kebab}
}

// attrValue looks up a canonical snake_case attribute name in obj trying
// every accepted spelling, returning value.Null (found=false) when absent.
func attrValue(obj *value.Object, name string) (value.Value, bool) {
	for _, spelling := range spellings(name) {
		if v, ok := obj.Get(spelling); ok {
			return v, true
		}
	}
	return value.Null, false
}

// attrRawString returns an attribute's raw, un-interpolated string form.
// Non-string scalar attributes (numbers, bools) are stringified; Null and
// missing attributes return ("", false).
func attrRawString(obj *value.Object, name string) (string, bool) {
	v, ok := attrValue(obj, name)
	if !ok || v.IsNull() {
		return "", false
	}
	return v.String(), true
}
