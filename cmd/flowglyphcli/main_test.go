package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsJSONPath(t *testing.T) {
	require.True(t, isJSONPath("data.json"))
	require.False(t, isJSONPath("data.yaml"))
	require.False(t, isJSONPath("data"))
}

func TestJSONToValueConvertsPrimitivesAndContainers(t *testing.T) {
	v := jsonToValue(map[string]interface{}{
		"name":  "ok",
		"count": float64(3),
		"tags":  []interface{}{"a", "b"},
		"flag":  true,
		"empty": nil,
	})
	obj, ok := v.AsObject()
	require.True(t, ok)

	name, _ := obj.Get("name")
	s, _ := name.AsString()
	require.Equal(t, "ok", s)

	flag, _ := obj.Get("flag")
	require.True(t, flag.AsBool())

	count, _ := obj.Get("count")
	n, ok := count.AsNumber()
	require.True(t, ok)
	require.Equal(t, 3.0, n)

	empty, ok := obj.Get("empty")
	require.True(t, ok)
	require.True(t, empty.IsNull())

	tags, _ := obj.Get("tags")
	items, ok := tags.AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)
}
