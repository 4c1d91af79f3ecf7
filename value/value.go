// Package value implements the dynamic value model used by the expression
// engine and the template expander: Null, Bool, Number, String, Array, and
// Object, with total (panic-free) accessors.
package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the dynamic value type flowing through expression evaluation and
// template data binding. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null is the absorbing element for soft failures (missing paths, bad
// divisions, out-of-range indices).
var Null = Value{kind: KindNull}

func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Array(items []Value) Value {
	return Value{kind: KindArray, arr: items}
}
func FromObject(o *Object) Value { return Value{kind: KindObject, obj: o} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the bool payload; false for any other kind.
func (v Value) AsBool() bool { return v.kind == KindBool && v.b }

// AsNumber returns the number payload and whether v actually held a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind == KindNumber {
		return v.n, true
	}
	return 0, false
}

// AsString returns the string payload and whether v actually held a string.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// AsArray returns the array payload, or nil if v is not an Array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind == KindArray {
		return v.arr, true
	}
	return nil, false
}

// AsObject returns the object payload, or nil if v is not an Object.
func (v Value) AsObject() (*Object, bool) {
	if v.kind == KindObject {
		return v.obj, true
	}
	return nil, false
}

// Truthy implements spec §4.2's truthiness rule: Null, false, 0, "", empty
// array, empty object are falsy; everything else truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.arr) > 0
	case KindObject:
		return v.obj != nil && v.obj.Len() > 0
	default:
		return false
	}
}

// NumberCoerce attempts to read v as a number, parsing strings. Used by
// arithmetic evaluation (spec §4.2: "mixed operands numerify").
func (v Value) NumberCoerce() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String form used for interpolation: Number → shortest round-trip decimal;
// Null → ""; Bool → "true"/"false"; Array/Object → a JSON-like form.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.jsonLike()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindObject:
		return v.jsonLike()
	default:
		return ""
	}
}

func (v Value) jsonLike() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindObject:
		if v.obj == nil {
			return "{}"
		}
		keys := v.obj.Keys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			val, _ := v.obj.Get(k)
			parts = append(parts, strconv.Quote(k)+":"+val.jsonLike())
		}
		return "{" + strings.Join(parts, ",") + "}"
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.jsonLike()
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return v.String()
	}
}

// Equal implements spec §4.2 comparison equality: Null equals only Null;
// numbers compare numerically; everything else compares by string form.
func Equal(a, b Value) bool {
	if a.kind == KindNull || b.kind == KindNull {
		return a.kind == KindNull && b.kind == KindNull
	}
	if a.kind == KindNumber && b.kind == KindNumber {
		return a.n == b.n
	}
	if a.kind == KindBool && b.kind == KindBool {
		return a.b == b.b
	}
	return a.String() == b.String()
}

// Compare implements ordering: numeric if both sides are numbers, otherwise
// lexicographic over the string form. Returns -1, 0, 1.
func Compare(a, b Value) int {
	if a.kind == KindNumber && b.kind == KindNumber {
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.String(), b.String())
}

// Path walks an Object by dot-separated, case-insensitive keys. Walking
// Null (or any non-object) at any step yields Null, never an error.
func Path(root Value, parts ...string) Value {
	cur := root
	for _, p := range parts {
		obj, ok := cur.AsObject()
		if !ok {
			return Null
		}
		v, found := obj.Get(p)
		if !found {
			return Null
		}
		cur = v
	}
	return cur
}

// Index implements arr[i] / obj["key"] indexing. Out-of-range numeric
// indices and missing object keys yield Null.
func Index(container, idx Value) Value {
	if arr, ok := container.AsArray(); ok {
		if n, ok := idx.NumberCoerce(); ok {
			i := int(n)
			if i < 0 || i >= len(arr) {
				return Null
			}
			return arr[i]
		}
		return Null
	}
	if obj, ok := container.AsObject(); ok {
		key, ok := idx.AsString()
		if !ok {
			key = idx.String()
		}
		v, found := obj.Get(key)
		if !found {
			return Null
		}
		return v
	}
	return Null
}

// SortObjectKeys is a helper used by callers that want a stable diagnostic
// or test rendering of an Object independent of insertion order.
func SortObjectKeys(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}
