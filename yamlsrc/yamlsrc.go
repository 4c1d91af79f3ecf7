// Package yamlsrc decodes a YAML document into the generic value.Value
// tree expand.Expand consumes (spec §3.6), using gopkg.in/yaml.v3's
// yaml.Node API rather than Unmarshal-into-interface{} so mapping key
// order survives the round trip — the same "hash on lowercase, retain
// original casing/order for iteration" contract value.Object enforces.
package yamlsrc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/flowglyph/flowglyph/value"
)

// Decode parses data as a single YAML document and converts it into a
// value.Value. Empty input decodes to an empty mapping, matching a
// template/data file with no content being treated as "nothing set"
// rather than an error.
func Decode(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Null, fmt.Errorf("yamlsrc: parse: %w", err)
	}
	if len(doc.Content) == 0 {
		return value.FromObject(value.NewObject()), nil
	}
	return convert(doc.Content[0])
}

func convert(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.FromObject(value.NewObject()), nil
		}
		return convert(n.Content[0])
	case yaml.MappingNode:
		return convertMapping(n)
	case yaml.SequenceNode:
		return convertSequence(n)
	case yaml.ScalarNode:
		return convertScalar(n)
	case yaml.AliasNode:
		return convert(n.Alias)
	default:
		return value.Null, fmt.Errorf("yamlsrc: unsupported node kind %v at line %d", n.Kind, n.Line)
	}
}

func convertMapping(n *yaml.Node) (value.Value, error) {
	obj := value.NewObject()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val, err := convert(n.Content[i+1])
		if err != nil {
			return value.Null, err
		}
		obj.Set(key, val)
	}
	return value.FromObject(obj), nil
}

func convertSequence(n *yaml.Node) (value.Value, error) {
	items := make([]value.Value, 0, len(n.Content))
	for _, c := range n.Content {
		v, err := convert(c)
		if err != nil {
			return value.Null, err
		}
		items = append(items, v)
	}
	return value.Array(items), nil
}

func convertScalar(n *yaml.Node) (value.Value, error) {
	switch n.Tag {
	case "!!null":
		return value.Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Null, fmt.Errorf("yamlsrc: decode bool at line %d: %w", n.Line, err)
		}
		return value.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Null, fmt.Errorf("yamlsrc: decode number at line %d: %w", n.Line, err)
		}
		return value.Number(f), nil
	default:
		return value.String(n.Value), nil
	}
}
