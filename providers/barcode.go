package providers

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/flowglyph/flowglyph/template"
)

// DefaultBarcodeProvider implements backend/raster's BarcodeProvider
// using github.com/boombuler/barcode's code128 encoder and Scale helper
// — the same encode-then-scale sequence
// other_examples/normiridium-docxgen's Barcode modifier uses.
type DefaultBarcodeProvider struct{}

// Generate renders data as a Code128 barcode scaled to width x height.
// BarcodeFormat is accepted for forward compatibility with additional
// symbologies; spec §3.4 only names Code128.
func (DefaultBarcodeProvider) Generate(data string, format template.BarcodeFormat, width, height int) (image.Image, error) {
	if format != template.BarcodeCode128 {
		return nil, fmt.Errorf("providers: unsupported barcode format %v", format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("providers: barcode dimensions must be positive, got %dx%d", width, height)
	}
	bc, err := code128.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("providers: barcode encode: %w", err)
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("providers: barcode scale: %w", err)
	}
	return scaled, nil
}
