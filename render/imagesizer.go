package render

import "github.com/flowglyph/flowglyph/providers"

// decoderSizer adapts a providers.DefaultImageDecoder into an ImageSizer
// for layout-time measurement (spec §4.4.1: an Image element with no
// explicit size uses the decoded bitmap's natural dimensions). Layout
// and scene emission each resolve the handle independently — the decoder
// has no cross-call cache, so a template with many repeated image
// references pays the decode cost twice; resource.Chain's own loaders do
// not cache either, matching the teacher's LoadImage which re-reads from
// disk on every call.
type decoderSizer struct {
	decoder providers.DefaultImageDecoder
}

func (d decoderSizer) Size(handle string) (float64, float64) {
	img, err := d.decoder.Decode(handle)
	if err != nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
