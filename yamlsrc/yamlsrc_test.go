package yamlsrc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/yamlsrc"
)

func TestDecodeScalarsAndNesting(t *testing.T) {
	doc := []byte(`
canvas:
  width: 400
  height: 300.5
  fixed: both
enabled: true
tags:
  - a
  - b
note: null
`)
	v, err := yamlsrc.Decode(doc)
	require.NoError(t, err)

	root, ok := v.AsObject()
	require.True(t, ok)

	canvas, ok := root.Get("canvas")
	require.True(t, ok)
	canvasObj, ok := canvas.AsObject()
	require.True(t, ok)

	w, ok := canvasObj.Get("width")
	require.True(t, ok)
	n, ok := w.AsNumber()
	require.True(t, ok)
	require.Equal(t, 400.0, n)

	h, _ := canvasObj.Get("height")
	hn, _ := h.AsNumber()
	require.Equal(t, 300.5, hn)

	enabled, ok := root.Get("enabled")
	require.True(t, ok)
	require.True(t, enabled.AsBool())

	tags, ok := root.Get("tags")
	require.True(t, ok)
	items, ok := tags.AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)
	s0, _ := items[0].AsString()
	require.Equal(t, "a", s0)

	note, ok := root.Get("note")
	require.True(t, ok)
	require.True(t, note.IsNull())
}

func TestDecodePreservesKeyOrder(t *testing.T) {
	doc := []byte("zeta: 1\nalpha: 2\nmid: 3\n")
	v, err := yamlsrc.Decode(doc)
	require.NoError(t, err)
	root, _ := v.AsObject()
	require.Equal(t, []string{"zeta", "alpha", "mid"}, root.Keys())
}

func TestDecodeEmptyInputYieldsEmptyMapping(t *testing.T) {
	v, err := yamlsrc.Decode(nil)
	require.NoError(t, err)
	root, ok := v.AsObject()
	require.True(t, ok)
	require.Equal(t, 0, root.Len())
}

func TestDecodeInvalidYamlReturnsError(t *testing.T) {
	_, err := yamlsrc.Decode([]byte("canvas: [unterminated"))
	require.Error(t, err)
}
