// Package providers implements the default QR/barcode/image-decode
// backends the Qr, Barcode, and Image element variants need, wrapping
// the examples pack's github.com/skip2/go-qrcode and
// github.com/boombuler/barcode behind backend/raster's locally declared
// consumption-site interfaces.
package providers

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"

	"github.com/flowglyph/flowglyph/template"
)

// DefaultQrProvider implements backend/raster's QrProvider using
// github.com/skip2/go-qrcode, the only QR encoder in the examples pack.
type DefaultQrProvider struct{}

var errorCorrectionLevel = map[template.ErrorCorrection]qrcode.RecoveryLevel{
	template.ErrorCorrectionL: qrcode.Low,
	template.ErrorCorrectionM: qrcode.Medium,
	template.ErrorCorrectionQ: qrcode.High,
	template.ErrorCorrectionH: qrcode.Highest,
}

// Generate renders data as a square QR code of size x size pixels at the
// requested error correction level.
func (DefaultQrProvider) Generate(data string, ec template.ErrorCorrection, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("providers: qr size must be positive, got %d", size)
	}
	q, err := qrcode.New(data, errorCorrectionLevel[ec])
	if err != nil {
		return nil, fmt.Errorf("providers: qr encode: %w", err)
	}
	return q.Image(size), nil
}
