package providers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/flowglyph/flowglyph/limits"
	"github.com/flowglyph/flowglyph/resource"
)

// DefaultImageDecoder implements backend/raster's ImageDecoder: it
// resolves a draw_bitmap handle through a resource.Chain (capped at
// Limits.MaxImageSize, spec §4.7) and decodes the bytes with the
// standard library's registered image.Decode — the same call the
// teacher's LoadImage makes, generalized from a direct os.Open to
// whatever URI scheme the Chain supports. The blank-imported codecs
// register PNG/JPEG/GIF; x/image/webp adds WebP, not handled by the
// teacher (which only ever loaded PNG/JPEG off disk).
type DefaultImageDecoder struct {
	Loader *resource.Chain
	Limits limits.ResourceLimits
}

func (d DefaultImageDecoder) Decode(handle string) (image.Image, error) {
	data, err := d.Loader.Load(context.Background(), handle, d.Limits.MaxImageSize())
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("providers: decode %q: %w", handle, err)
	}
	return img, nil
}
