package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/render"
	"github.com/flowglyph/flowglyph/value"
)

func obj(pairs ...interface{}) value.Value {
	o := value.NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return value.FromObject(o)
}

func arr(items ...value.Value) value.Value { return value.Array(items) }

func TestRenderFixedCanvasWithSolidBackground(t *testing.T) {
	doc := obj(
		"canvas", obj("width", value.Number(40), "height", value.Number(20), "fixed", value.String("both"), "background", value.String("#ff0000")),
		"layout", arr(),
	)

	r := render.New(render.Config{})
	result, err := r.Render(doc, value.FromObject(value.NewObject()), render.Default())
	require.NoError(t, err)
	require.Equal(t, 40, result.Width)
	require.Equal(t, 20, result.Height)

	c := color.RGBA64Model.Convert(result.Image.At(5, 5)).(color.RGBA64)
	require.Greater(t, c.R, c.B)
}

func TestRenderAutoCanvasSizesToContent(t *testing.T) {
	textEl := obj(
		"type", value.String("text"),
		"content", value.String("hello"),
		"size", value.Number(16),
	)
	doc := obj(
		"canvas", obj(),
		"layout", arr(textEl),
	)

	r := render.New(render.Config{})
	result, err := r.Render(doc, value.FromObject(value.NewObject()), render.Default())
	require.NoError(t, err)
	require.Greater(t, result.Width, 0)
	require.Greater(t, result.Height, 0)
}

func TestRenderDeterministicPresetDisablesSubpixelText(t *testing.T) {
	opts := render.Deterministic()
	require.True(t, opts.Antialiasing)
	require.False(t, opts.SubpixelText)
	require.Equal(t, render.FontHintingNone, opts.FontHinting)
	require.Equal(t, render.TextRenderingGrayscaleAA, opts.TextRendering)
}

func TestRenderRejectsNonMappingDocument(t *testing.T) {
	r := render.New(render.Config{})
	_, err := r.Render(value.String("not a mapping"), value.FromObject(value.NewObject()), render.Default())
	require.Error(t, err)
}
