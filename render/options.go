package render

import "golang.org/x/image/font"

// FontHinting mirrors the rasterizer grid-fitting modes spec §6.4 names.
// The teacher hardcodes font.HintingNone everywhere; RenderOptions makes
// that a configurable choice instead of a fixed constant.
type FontHinting int

const (
	FontHintingNormal FontHinting = iota
	FontHintingNone
	FontHintingFull
)

func (h FontHinting) toFreetype() font.Hinting {
	if h == FontHintingNone {
		return font.HintingNone
	}
	return font.HintingFull
}

// TextRendering selects the antialiasing strategy applied to glyph
// rasterization. GrayscaleAA matches the teacher's own text rendering
// (font.Drawer has no subpixel/ClearType mode to select between), so
// Default and GrayscaleAA behave identically today; the distinction is
// kept because spec §6.4 names it as a configuration axis a backend may
// act on.
type TextRendering int

const (
	TextRenderingDefault TextRendering = iota
	TextRenderingGrayscaleAA
)

// RenderOptions configures a single Render call (spec §6.4). The zero
// value is not a valid RenderOptions; use Default() or Deterministic().
type RenderOptions struct {
	Antialiasing bool
	SubpixelText bool
	FontHinting  FontHinting
	TextRendering TextRendering
	Culture      string
}

// Default returns the spec's documented defaults: antialiasing and
// subpixel text on, Normal hinting, Default text rendering, no culture
// override (falls back to whatever the template declares).
func Default() RenderOptions {
	return RenderOptions{
		Antialiasing: true,
		SubpixelText: true,
		FontHinting:  FontHintingNormal,
		TextRendering: TextRenderingDefault,
	}
}

// Deterministic returns the preset spec §6.4 names for bytewise-
// reproducible output across machines: hinting and subpixel positioning
// are the two sources of platform-dependent rasterization drift, so both
// are disabled in favor of plain grayscale antialiasing.
func Deterministic() RenderOptions {
	return RenderOptions{
		Antialiasing:  true,
		SubpixelText:  false,
		FontHinting:   FontHintingNone,
		TextRendering: TextRenderingGrayscaleAA,
	}
}
