package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/template"
)

func TestRegistryRejectsInvalidFontData(t *testing.T) {
	r := NewRegistry()
	err := r.Register("body", []byte("not a font"))
	require.Error(t, err)
	require.False(t, r.Has("body"))
}

func TestRegistryFontUnknownNameErrors(t *testing.T) {
	r := NewRegistry()
	_, err := r.Font("missing", 16)
	require.Error(t, err)
}

func TestShapeWithoutRegisteredFontDegradesGracefully(t *testing.T) {
	s := NewShaper(NewRegistry())
	lines, w, h := s.Shape("hello world", "body", 16, 60)
	require.NotEmpty(t, lines)
	require.Greater(t, w, 0.0)
	require.Greater(t, h, 0.0)
}

func TestShapeUnconstrainedWidthKeepsSingleLinePerParagraph(t *testing.T) {
	s := NewShaper(NewRegistry())
	lines, _, _ := s.Shape("line one\nline two", "body", 16, 0)
	require.Equal(t, []string{"line one", "line two"}, lines)
}

func TestMeasureTextIgnoresMaxWidthWhenWrapDisabled(t *testing.T) {
	s := NewShaper(NewRegistry())
	ta := &template.TextAttributes{Content: "a long run of words here", Wrap: false}
	_, h1 := s.MeasureText(ta, 10, 16)
	_, h2 := s.MeasureText(ta, 10000, 16)
	require.Equal(t, h1, h2)
}

func TestMeasureTextWrapsWhenEnabled(t *testing.T) {
	s := NewShaper(NewRegistry())
	ta := &template.TextAttributes{Content: "a long run of words that should wrap", Wrap: true}
	_, narrowH := s.MeasureText(ta, 30, 16)
	_, wideH := s.MeasureText(ta, 1000, 16)
	require.Greater(t, narrowH, wideH)
}
