package providers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/providers"
	"github.com/flowglyph/flowglyph/template"
)

func TestDefaultQrProviderGeneratesSquareImage(t *testing.T) {
	p := providers.DefaultQrProvider{}
	img, err := p.Generate("https://example.com", template.ErrorCorrectionM, 128)
	require.NoError(t, err)
	require.NotNil(t, img)
	b := img.Bounds()
	require.Equal(t, 128, b.Dx())
	require.Equal(t, 128, b.Dy())
}

func TestDefaultQrProviderRejectsNonPositiveSize(t *testing.T) {
	p := providers.DefaultQrProvider{}
	_, err := p.Generate("data", template.ErrorCorrectionL, 0)
	require.Error(t, err)
}

func TestDefaultBarcodeProviderGeneratesScaledImage(t *testing.T) {
	p := providers.DefaultBarcodeProvider{}
	img, err := p.Generate("123456789012", template.BarcodeCode128, 200, 60)
	require.NoError(t, err)
	require.NotNil(t, img)
	b := img.Bounds()
	require.Equal(t, 200, b.Dx())
	require.Equal(t, 60, b.Dy())
}

func TestDefaultBarcodeProviderRejectsUnsupportedFormat(t *testing.T) {
	p := providers.DefaultBarcodeProvider{}
	_, err := p.Generate("123", template.BarcodeFormat(99), 100, 40)
	require.Error(t, err)
}
