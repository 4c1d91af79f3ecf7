package providers_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/providers"
	"github.com/flowglyph/flowglyph/resource"
)

func TestDefaultImageDecoderDecodesPNGFromFile(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	d := providers.DefaultImageDecoder{
		Loader: resource.NewChain(resource.FileLoader{}),
		Limits: limits.Default(),
	}
	got, err := d.Decode(path)
	require.NoError(t, err)
	require.Equal(t, 4, got.Bounds().Dx())
}

func TestDefaultImageDecoderPropagatesLoaderError(t *testing.T) {
	d := providers.DefaultImageDecoder{
		Loader: resource.NewChain(resource.FileLoader{}),
		Limits: limits.Default(),
	}
	_, err := d.Decode("/nonexistent/x.png")
	require.Error(t, err)
}
